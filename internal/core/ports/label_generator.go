package ports

import (
	"production/internal/core/domain/model/produce"
)

// LabelGenerator is the contract of the document-generating collaborator: it
// consumes a finalized package label and produces a downloadable artifact.
// Incomplete label data must be reported as an error, never rendered into a
// malformed document.
type LabelGenerator interface {
	Generate(label produce.Label) ([]byte, error)
}
