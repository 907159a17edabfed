package produce

import (
	"errors"

	"production/internal/pkg/errs"
)

// Label carries everything the document generator needs to render a package
// label: the finalized package plus roll metadata collected on the floor.
// Validate catches missing fields before rendering, so the generator reports
// incomplete data instead of producing a malformed document.
type Label struct {
	RollNo     string
	Color      string
	GSM        string
	Pattern    string
	FabricType string
	Treatment  string
	Technology string

	Package *Package
}

// Validate reports every missing or invalid field at once.
func (l Label) Validate() error {
	var joined error

	for _, f := range []struct {
		name  string
		value string
	}{
		{"rollNo", l.RollNo},
		{"color", l.Color},
		{"gsm", l.GSM},
		{"pattern", l.Pattern},
		{"fabricType", l.FabricType},
		{"treatment", l.Treatment},
		{"technology", l.Technology},
	} {
		if f.value == "" {
			joined = errors.Join(joined, errs.NewValueIsRequiredError(f.name))
		}
	}

	if l.Package == nil {
		joined = errors.Join(joined, errs.NewValueIsRequiredError("package"))
	} else if err := l.Package.Validate(); err != nil {
		joined = errors.Join(joined, err)
	}

	return joined
}
