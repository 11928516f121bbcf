package item

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// DefaultMaxStack is used for items with no definition on file.
const DefaultMaxStack = 99

// ID names an item definition (e.g. "grape", "wine").
type ID string

func (id ID) String() string {
	return string(id)
}

// Stack is a quantity of a single item. The automation engine moves stacks
// between machines and containers; it never inspects what an item means.
type Stack struct {
	Item ID  `json:"item"`
	Qty  int `json:"qty"`
}

func NewStack(id ID, qty int) *Stack {
	return &Stack{Item: id, Qty: qty}
}

func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s *Stack) String() string {
	return fmt.Sprintf("%dx %s", s.Qty, s.Item)
}

// Validate satisfies storage.ValidatingSpec for stacks embedded in assets
// (e.g. starting chest contents in a location layout).
func (s *Stack) Validate() error {
	el := errors.NewErrorList()

	if s.Item == "" {
		el.Add(fmt.Errorf("item is required"))
	}
	if s.Qty < 1 {
		el.Add(fmt.Errorf("qty must be positive"))
	}

	return el.Err()
}

// Definition is the per-item asset. The engine only needs the stacking limit;
// everything else about an item lives with whatever consumes it.
type Definition struct {
	Name     string `json:"name"`
	MaxStack int    `json:"max_stack"`
}

// Validate satisfies storage.ValidatingSpec.
func (d *Definition) Validate() error {
	el := errors.NewErrorList()

	if d.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if d.MaxStack < 1 {
		el.Add(fmt.Errorf("max_stack must be positive"))
	}

	return el.Err()
}
