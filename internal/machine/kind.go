package machine

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Kind is the per-machine-type asset. An entity is automatable exactly when
// its type tag has a Kind on file; everything else is skipped during
// topology builds.
type Kind struct {
	// DisplayName is used in notices and the status console (e.g. "Keg").
	DisplayName string `json:"display_name"`

	// Replicates marks machines that keep their input and restart on it after
	// each harvest (crystalarium behavior) instead of consuming a new input.
	Replicates bool `json:"replicates,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (k *Kind) Validate() error {
	el := errors.NewErrorList()

	if k.DisplayName == "" {
		el.Add(fmt.Errorf("display_name is required"))
	}

	return el.Err()
}
