// Package floor renders floor plan documents.
//
// [RenderSVG] draws a single floor: the dashed plot boundary, tinted room
// rectangles with name and size labels, door swings, windows, stairs with
// treads, structural columns and any extras on that floor. Drawing is
// configured with functional options:
//
//	svg := floor.RenderSVG(doc,
//	    floor.WithFloor(1),
//	    floor.WithColumns(cols),
//	    floor.WithTheme(floor.Blueprint),
//	)
//
// [RenderJSON] serializes the document together with optional columns,
// validation warnings and the environmental score.
package floor
