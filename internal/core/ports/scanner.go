package ports

import (
	"context"
	"errors"

	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
)

// ErrScanFailed is the scan-failure signal of the scanning collaborator: the
// device reported an unreadable or invalid code instead of a parameter set.
var ErrScanFailed = errors.New("scan failed")

// Scanner is the contract of the QR/barcode scanning collaborator. Scan
// blocks for a bounded device delay and returns the measured parameters for
// the stage being verified. Cancelling the context (the operator dismissed
// the dialog) aborts the scan with ctx.Err().
type Scanner interface {
	Scan(ctx context.Context, st stage.Stage) (order.ParameterSet, error)
}
