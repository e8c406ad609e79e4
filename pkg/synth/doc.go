// Package synth turns a room program into rectangular floor plans.
//
// # Overview
//
// Every variant partitions the plot with a fixed-width corridor band into a
// service wing (living room, kitchens, office) and a private wing (bedrooms and
// bathrooms). Rooms in a wing are stacked along the partition axis by a running
// cursor; each room gets one door on the edge facing the corridor and one
// window on the opposite, exterior edge.
//
// # Variants
//
// Four strategies implement [LayoutStrategy]:
//
//   - [VariantBase]: vertical corridor, private wing on the right
//   - [VariantHorizontal]: horizontal corridor, service wing on top
//   - [VariantLeftCorridor]: vertical corridor on the left edge with both
//     wings stacked along it
//   - [VariantLuxury]: single floor with twin suite wings flanking a central
//     living/dining/utility core, each behind its own corridor and stair
//
// [Synthesize] returns all four for the same program; [Generate] returns one
// and reports an unknown variant as an error rather than falling back.
//
// # Determinism
//
// Synthesis is a pure function. Room ids are name-based UUIDs derived from the
// variant, floor and room slot, so identical input produces identical output,
// ids included.
//
// # Overflow
//
// The private-wing cursor does not stop at the far edge of the plot. A large
// program on a short plot yields rooms outside the plot; use [plan.Validate]
// to detect them.
package synth
