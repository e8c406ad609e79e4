package pipeline

import (
	"fmt"

	fio "github.com/matzehuels/floorsmith/pkg/io"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// LoadProgram reads and normalizes a room program file. Warnings about
// degenerate input are not errors; they surface later through plan.Validate.
func LoadProgram(path string) (plan.Program, error) {
	p, err := fio.ImportProgram(path)
	if err != nil {
		return plan.Program{}, fmt.Errorf("load program: %w", err)
	}
	return p, nil
}
