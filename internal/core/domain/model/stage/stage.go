package stage

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Stage identifies a discrete production step. Each stage owns exactly one
// work slot, so at most one order can be actively worked per stage.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	Unknown Stage = iota

	// Flexo is the flexographic printing stage, the entry point of the line.
	Flexo

	// BagMaking is the bag forming stage downstream of printing.
	BagMaking

	// Packaging is the final stage before dispatch; it has no downstream stage.
	Packaging
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:   "Unknown",
		Flexo:     "Flexo",
		BagMaking: "BagMaking",
		Packaging: "Packaging",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Flexo:     "Flexo",
		BagMaking: "BagMaking",
		Packaging: "Packaging",
	}
}

// Validate checks the Stage holds one of the defined production steps.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// FromString parses a stage name as produced by String. It is used by the
// HTTP layer and persistence adapters.
func FromString(name string) (Stage, error) {
	for st, str := range getValidStageStrings() {
		if str == name {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stage is invalid",
		fmt.Errorf("%q is not a valid stage name", name))
}

// All returns the valid stages in line order.
func All() []Stage {
	return []Stage{Flexo, BagMaking, Packaging}
}
