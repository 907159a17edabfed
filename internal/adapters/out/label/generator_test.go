package label_test

import (
	"testing"

	"production/internal/adapters/out/label"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/produce"
	"production/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeLabel(t *testing.T) produce.Label {
	t.Helper()

	pkg, err := produce.NewPackage(kernel.NewUUID(), kernel.NewUUID(), 40, 30, 20, 12.5)
	require.NoError(t, err)

	return produce.Label{
		RollNo:     "R-1042",
		Color:      "white",
		GSM:        "80",
		Pattern:    "plain",
		FabricType: "non-woven",
		Treatment:  "laminated",
		Technology: "spunbond",
		Package:    pkg,
	}
}

func TestGenerate_ProducesPDF(t *testing.T) {
	generator := label.NewPDFGenerator()

	document, err := generator.Generate(completeLabel(t))
	require.NoError(t, err)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestGenerate_MissingFieldsAreReportedNotRendered(t *testing.T) {
	generator := label.NewPDFGenerator()

	l := completeLabel(t)
	l.RollNo = ""
	l.Treatment = ""

	document, err := generator.Generate(l)
	require.Error(t, err)
	assert.Nil(t, document)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGenerate_MissingPackage(t *testing.T) {
	generator := label.NewPDFGenerator()

	l := completeLabel(t)
	l.Package = nil

	_, err := generator.Generate(l)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
