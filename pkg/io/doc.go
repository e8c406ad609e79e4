// Package io reads and writes room programs and floor plan documents.
//
// # Program Files
//
// A room program can be written in TOML, YAML or JSON; the extension picks
// the decoder. TOML keys are snake_case, YAML and JSON keys camelCase:
//
//	width = 40
//	depth = 60
//	floors = 2
//	master_bedrooms = 1
//	kids_bedrooms = 2
//	guest_rooms = 1
//	kitchens = 1
//	bathrooms = 2
//	master_bedroom_size = "Big"
//	facing = "South"
//
//	[features]
//	garden = true
//	parking = true
//	balcony = true
//
// Use [ImportProgram] for a file path or [ReadProgram] for any io.Reader.
// Unknown keys, unknown facings and unknown size tiers are errors with code
// INVALID_PROGRAM, INVALID_FACING or INVALID_SIZE.
//
// # Documents
//
// [WriteDocument] and [ReadDocument] round-trip a [plan.Document] as JSON,
// room ids included, so an edited plan can be saved and reopened.
package io
