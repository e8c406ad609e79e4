package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/geom"
	"github.com/matzehuels/floorsmith/pkg/plan"
	"github.com/matzehuels/floorsmith/pkg/synth"
)

func exampleProgram() plan.Program {
	return plan.Program{
		Width:             40,
		Depth:             60,
		Floors:            2,
		MasterBedrooms:    1,
		KidsBedrooms:      2,
		GuestRooms:        1,
		Kitchens:          1,
		Bathrooms:         2,
		MasterBedroomSize: plan.SizeStandard,
		BathroomSize:      plan.SizeStandard,
		Facing:            plan.South,
		Features:          plan.Features{Garden: true, Parking: true, Balcony: true},
	}
}

const tomlProgram = `
width = 40
depth = 60
floors = 2
master_bedrooms = 1
kids_bedrooms = 2
guest_rooms = 1
kitchens = 1
bathrooms = 2
facing = "south"

[features]
garden = true
parking = true
balcony = true
`

const yamlProgram = `
width: 40
depth: 60
floors: 2
masterBedrooms: 1
kidsBedrooms: 2
guestRooms: 1
kitchens: 1
bathrooms: 2
facing: SOUTH
features:
  garden: true
  parking: true
  balcony: true
`

const jsonProgram = `{
  "width": 40, "depth": 60, "floors": 2,
  "masterBedrooms": 1, "kidsBedrooms": 2, "guestRooms": 1,
  "kitchens": 1, "bathrooms": 2, "facing": "S",
  "features": {"garden": true, "parking": true, "balcony": true}
}`

func TestReadProgram(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml", FormatTOML, tomlProgram},
		{"yaml", FormatYAML, yamlProgram},
		{"json", FormatJSON, jsonProgram},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadProgram(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadProgram: %v", err)
			}
			if want := exampleProgram(); !reflect.DeepEqual(got, want) {
				t.Errorf("got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestReadProgramErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.Code
	}{
		{"toml unknown key", FormatTOML, "width = 40\nbedrooms = 3\nfacing = \"North\"\n", errors.ErrCodeInvalidProgram},
		{"yaml unknown key", FormatYAML, "width: 40\nbedrooms: 3\nfacing: North\n", errors.ErrCodeInvalidProgram},
		{"json unknown key", FormatJSON, `{"width": 40, "bedrooms": 3, "facing": "North"}`, errors.ErrCodeInvalidProgram},
		{"toml syntax", FormatTOML, "width = = 40", errors.ErrCodeInvalidProgram},
		{"bad facing", FormatTOML, "facing = \"Up\"\n", errors.ErrCodeInvalidFacing},
		{"missing facing", FormatJSON, `{"width": 40}`, errors.ErrCodeInvalidFacing},
		{"bad size", FormatYAML, "facing: North\nmasterBedroomSize: Huge\n", errors.ErrCodeInvalidSize},
		{"bad format", Format("xml"), "<program/>", errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadProgram(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"house.toml", FormatTOML, true},
		{"house.YAML", FormatYAML, true},
		{"dir/house.yml", FormatYAML, true},
		{"house.json", FormatJSON, true},
		{"house.txt", "", false},
		{"house", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok {
			t.Errorf("FormatFromPath(%q) err = %v, want ok=%v", tt.path, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestProgramFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"p.toml", "p.yaml", "p.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := ExportProgram(exampleProgram(), path); err != nil {
				t.Fatalf("ExportProgram: %v", err)
			}
			got, err := ImportProgram(path)
			if err != nil {
				t.Fatalf("ImportProgram: %v", err)
			}
			if want := exampleProgram(); !reflect.DeepEqual(got, want) {
				t.Errorf("got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestImportProgramMissing(t *testing.T) {
	_, err := ImportProgram(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc, err := synth.Generate(exampleProgram(), synth.VariantBase)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteDocument(doc, &buf); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	got, err := ReadDocument(&buf)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}

	if got.Variant != doc.Variant || got.Floors != doc.Floors || got.Plot != doc.Plot {
		t.Errorf("header = %s/%d/%+v, want %s/%d/%+v",
			got.Variant, got.Floors, got.Plot, doc.Variant, doc.Floors, doc.Plot)
	}
	if len(got.Rooms) != len(doc.Rooms) {
		t.Fatalf("rooms = %d, want %d", len(got.Rooms), len(doc.Rooms))
	}
	for _, r := range doc.Rooms {
		gr, ok := got.Room(r.ID)
		if !ok {
			t.Errorf("room %s (%s) lost in round trip", r.ID, r.Type)
			continue
		}
		if gr.Rect() != r.Rect() || gr.Type != r.Type || gr.Floor != r.Floor {
			t.Errorf("room %s = %+v, want %+v", r.ID, gr, r)
		}
	}
	if !reflect.DeepEqual(got.Stairs, doc.Stairs) {
		t.Errorf("stairs = %+v, want %+v", got.Stairs, doc.Stairs)
	}
	if !reflect.DeepEqual(got.Extras, doc.Extras) {
		t.Errorf("extras = %+v, want %+v", got.Extras, doc.Extras)
	}
}

func TestDocumentFile(t *testing.T) {
	doc := plan.NewDocument("base", plan.Plot{Width: 10, Depth: 10}, 1)
	id := doc.AddRoom(plan.Room{Type: plan.TypeLiving, W: 5, H: 5})

	path := filepath.Join(t.TempDir(), "plan.json")
	if err := ExportDocument(doc, path); err != nil {
		t.Fatalf("ExportDocument: %v", err)
	}
	got, err := ImportDocument(path)
	if err != nil {
		t.Fatalf("ImportDocument: %v", err)
	}
	if _, ok := got.Room(id); !ok {
		t.Errorf("room %s missing after reload", id)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportDocument(path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("corrupt file err = %v, want INVALID_INPUT", err)
	}
}

func TestReadDocumentAssignsMissingIDs(t *testing.T) {
	in := `{"variant":"base","plot":{"width":40,"depth":60},"floors":1,"rooms":[
		{"type":"living","x":0,"y":0,"w":10,"h":10,"floor":0},
		{"type":"kitchen","x":20,"y":0,"w":10,"h":10,"floor":0}]}`
	doc, err := ReadDocument(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	living, kitchen := doc.Rooms[0], doc.Rooms[1]
	if living.ID == "" || living.ID == kitchen.ID {
		t.Fatalf("ids = %q, %q; want distinct non-empty", living.ID, kitchen.ID)
	}

	if err := doc.UpdateRoom(living.ID, geom.Rect{X: 5, Y: 0, W: 10, H: 10}); err != nil {
		t.Fatal(err)
	}
	if got, _ := doc.Room(living.ID); got.X != 5 {
		t.Errorf("living X = %g, want 5", got.X)
	}
	if got, _ := doc.Room(kitchen.ID); got.X != 20 {
		t.Errorf("kitchen X = %g, want 20 (untouched)", got.X)
	}
}
