package machine

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/farmhand/go-automate/internal/item"
)

// Recipe binds a machine kind to one input it accepts and the output it
// produces after a number of ticks.
type Recipe struct {
	Machine   string  `json:"machine"`
	Input     item.ID `json:"input"`
	InputQty  int     `json:"input_qty"`
	Output    item.ID `json:"output"`
	OutputQty int     `json:"output_qty"`
	Ticks     int     `json:"ticks"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Recipe) Validate() error {
	el := errors.NewErrorList()

	if r.Machine == "" {
		el.Add(fmt.Errorf("machine is required"))
	}
	if r.Input == "" {
		el.Add(fmt.Errorf("input is required"))
	}
	if r.InputQty < 1 {
		el.Add(fmt.Errorf("input_qty must be positive"))
	}
	if r.Output == "" {
		el.Add(fmt.Errorf("output is required"))
	}
	if r.OutputQty < 1 {
		el.Add(fmt.Errorf("output_qty must be positive"))
	}
	if r.Ticks < 1 {
		el.Add(fmt.Errorf("ticks must be positive"))
	}

	return el.Err()
}
