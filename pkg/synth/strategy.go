package synth

import (
	"strings"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// Variant names a layout strategy.
type Variant string

const (
	VariantBase         Variant = "base"
	VariantHorizontal   Variant = "horizontal"
	VariantLeftCorridor Variant = "left-corridor"
	VariantLuxury       Variant = "luxury"
)

// Variants lists every registered variant in presentation order.
var Variants = []Variant{VariantBase, VariantHorizontal, VariantLeftCorridor, VariantLuxury}

// ParseVariant parses a variant name case-insensitively.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[v]; ok {
		return v, nil
	}
	names := make([]string, len(Variants))
	for i, v := range Variants {
		names[i] = string(v)
	}
	return "", errors.New(errors.ErrCodeInvalidVariant,
		"unknown variant: %q (must be one of: %s)", s, strings.Join(names, ", "))
}

// LayoutStrategy lays out a program as one variant.
type LayoutStrategy interface {
	Variant() Variant
	Describe() string
	Layout(p plan.Program) *plan.Document
}

var registry = map[Variant]LayoutStrategy{
	VariantBase:         baseStrategy{},
	VariantHorizontal:   horizontalStrategy{},
	VariantLeftCorridor: leftCorridorStrategy{},
	VariantLuxury:       luxuryStrategy{},
}

// Strategy returns the strategy registered for v.
func Strategy(v Variant) (LayoutStrategy, error) {
	s, ok := registry[v]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidVariant, "unknown variant: %q", v)
	}
	return s, nil
}

// Generate lays out p as variant v. An unknown variant is an error; there is
// no fallback layout.
func Generate(p plan.Program, v Variant) (*plan.Document, error) {
	s, err := Strategy(v)
	if err != nil {
		return nil, err
	}
	return s.Layout(p), nil
}

// Synthesize lays out p as every variant, in the order of [Variants].
func Synthesize(p plan.Program) []*plan.Document {
	out := make([]*plan.Document, 0, len(Variants))
	for _, v := range Variants {
		out = append(out, registry[v].Layout(p))
	}
	return out
}
