package plan

import (
	"fmt"
	"strings"

	"github.com/matzehuels/floorsmith/pkg/errors"
)

// SizeTier scales the base dimensions of a room along the wing axis.
type SizeTier string

const (
	SizeSmall    SizeTier = "Small"
	SizeStandard SizeTier = "Standard"
	SizeBig      SizeTier = "Big"
)

// Multiplier returns 0.8, 1.0 or 1.3 for Small, Standard and Big.
// Unset and unknown tiers use 1.0.
func (s SizeTier) Multiplier() float64 {
	switch s {
	case SizeSmall:
		return 0.8
	case SizeBig:
		return 1.3
	default:
		return 1.0
	}
}

// ParseSizeTier parses a size tier case-insensitively. The empty string maps
// to Standard.
func ParseSizeTier(s string) (SizeTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return SizeStandard, nil
	case "small":
		return SizeSmall, nil
	case "big":
		return SizeBig, nil
	}
	return "", errors.New(errors.ErrCodeInvalidSize, "invalid size tier: %q (must be one of: Small, Standard, Big)", s)
}

// Facing is the cardinal direction the entrance faces.
type Facing string

const (
	North Facing = "North"
	South Facing = "South"
	East  Facing = "East"
	West  Facing = "West"
)

// Valid reports whether f is one of the four cardinal directions.
func (f Facing) Valid() bool {
	switch f {
	case North, South, East, West:
		return true
	}
	return false
}

// ParseFacing parses a facing case-insensitively.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFacing, "invalid facing: %q (must be one of: North, South, East, West)", s)
}

// Features toggles optional parts of the layout.
type Features struct {
	Office  bool `json:"office,omitempty" toml:"office" yaml:"office" bson:"office"`
	Parking bool `json:"parking,omitempty" toml:"parking" yaml:"parking" bson:"parking"`
	Garden  bool `json:"garden,omitempty" toml:"garden" yaml:"garden" bson:"garden"`
	Balcony bool `json:"balcony,omitempty" toml:"balcony" yaml:"balcony" bson:"balcony"`
	Garage  bool `json:"garage,omitempty" toml:"garage" yaml:"garage" bson:"garage"`
}

// Program is the room program a layout is synthesized from. It is treated as
// immutable input: nothing in floorsmith mutates a Program after it is read.
type Program struct {
	Width  float64 `json:"width" toml:"width" yaml:"width" bson:"width"`
	Depth  float64 `json:"depth" toml:"depth" yaml:"depth" bson:"depth"`
	Floors int     `json:"floors" toml:"floors" yaml:"floors" bson:"floors"`

	MasterBedrooms int `json:"masterBedrooms" toml:"master_bedrooms" yaml:"masterBedrooms" bson:"master_bedrooms"`
	KidsBedrooms   int `json:"kidsBedrooms" toml:"kids_bedrooms" yaml:"kidsBedrooms" bson:"kids_bedrooms"`
	GuestRooms     int `json:"guestRooms" toml:"guest_rooms" yaml:"guestRooms" bson:"guest_rooms"`
	Kitchens       int `json:"kitchens" toml:"kitchens" yaml:"kitchens" bson:"kitchens"`
	Bathrooms      int `json:"bathrooms" toml:"bathrooms" yaml:"bathrooms" bson:"bathrooms"`

	MasterBedroomSize SizeTier `json:"masterBedroomSize,omitempty" toml:"master_bedroom_size" yaml:"masterBedroomSize" bson:"master_bedroom_size,omitempty"`
	BathroomSize      SizeTier `json:"bathroomSize,omitempty" toml:"bathroom_size" yaml:"bathroomSize" bson:"bathroom_size,omitempty"`

	Facing   Facing   `json:"facing" toml:"facing" yaml:"facing" bson:"facing"`
	Features Features `json:"features" toml:"features" yaml:"features" bson:"features"`
}

// Plot returns the plot dimensions.
func (p Program) Plot() Plot { return Plot{Width: p.Width, Depth: p.Depth} }

// Normalize canonicalizes the enum fields of a freshly decoded program.
// Facing and size tiers are matched case-insensitively; an unknown value is an
// error so a typo never silently selects a default.
func (p Program) Normalize() (Program, error) {
	var err error
	if p.MasterBedroomSize, err = ParseSizeTier(string(p.MasterBedroomSize)); err != nil {
		return p, fmt.Errorf("master bedroom size: %w", err)
	}
	if p.BathroomSize, err = ParseSizeTier(string(p.BathroomSize)); err != nil {
		return p, fmt.Errorf("bathroom size: %w", err)
	}
	if p.Facing, err = ParseFacing(string(p.Facing)); err != nil {
		return p, err
	}
	return p, nil
}

// Warnings reports conditions the synthesizer does not reject but which
// produce degenerate geometry: non-positive plot dimensions, no floors,
// negative room counts and an undefined facing.
func (p Program) Warnings() []Warning {
	var out []Warning
	add := func(code WarningCode, format string, args ...any) {
		out = append(out, Warning{Code: code, Floor: -1, Message: fmt.Sprintf(format, args...)})
	}

	if p.Width <= 0 {
		add(WarnProgramPlot, "plot width %g is not positive", p.Width)
	}
	if p.Depth <= 0 {
		add(WarnProgramPlot, "plot depth %g is not positive", p.Depth)
	}
	if p.Floors <= 0 {
		add(WarnProgramFloors, "floor count %d produces an empty layout", p.Floors)
	}
	counts := []struct {
		name string
		n    int
	}{
		{"master bedrooms", p.MasterBedrooms},
		{"kids bedrooms", p.KidsBedrooms},
		{"guest rooms", p.GuestRooms},
		{"kitchens", p.Kitchens},
		{"bathrooms", p.Bathrooms},
	}
	for _, c := range counts {
		if c.n < 0 {
			add(WarnProgramCount, "%s count %d is negative", c.name, c.n)
		}
	}
	if !p.Facing.Valid() {
		add(WarnProgramFacing, "facing %q is not a cardinal direction; site extras are skipped", p.Facing)
	}
	return out
}
