// Package scanner provides a simulated QR scanning device. Real deployments
// replace it with a driver for the shop-floor hardware; the simulator keeps
// the verification flow runnable end to end.
package scanner

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/stage"
	"production/internal/core/ports"
)

// sampleValues are the canned readings the simulator reports per parameter
// key. Unknown keys fall back by kind so new stage schemas keep working.
var sampleValues = map[string]string{
	"rollSize":     "24in",
	"gsm":          "80",
	"fabricColor":  "white",
	"bagType":      "D-Cut",
	"printColor":   "blue",
	"cylinderSize": "32",
	"bagSize":      "12x16",
	"bagColor":     "green",
	"weight":       "25.5",
}

// SimulatedScanner implements ports.Scanner with a fixed device delay and an
// optional deterministic failure schedule.
type SimulatedScanner struct {
	delay     time.Duration
	failEvery int64
	scans     atomic.Int64
}

// NewSimulatedScanner creates a simulated scanner. delay is how long each
// scan blocks before reporting; failEvery makes every Nth scan report
// ports.ErrScanFailed, zero disables failures.
func NewSimulatedScanner(delay time.Duration, failEvery int) (*SimulatedScanner, error) {
	if delay < 0 {
		return nil, fmt.Errorf("scanner delay must not be negative, got %s", delay)
	}
	if failEvery < 0 {
		return nil, fmt.Errorf("scanner failEvery must not be negative, got %d", failEvery)
	}
	return &SimulatedScanner{delay: delay, failEvery: int64(failEvery)}, nil
}

// Scan blocks for the device delay, then reports the measured parameters of
// the given stage. Cancelling the context aborts the scan with ctx.Err().
func (s *SimulatedScanner) Scan(ctx context.Context, st stage.Stage) (order.ParameterSet, error) {
	cfg, err := stage.ConfigFor(st)
	if err != nil {
		return nil, err
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if n := s.scans.Add(1); s.failEvery > 0 && n%s.failEvery == 0 {
		return nil, ports.ErrScanFailed
	}

	params := order.ParameterSet{}
	for _, spec := range cfg.RequiredParameters() {
		value, ok := sampleValues[spec.Key]
		if !ok {
			if spec.Kind == stage.Dimensional {
				value = "1"
			} else {
				value = "sample"
			}
		}
		params[spec.Key] = value
	}
	return params, nil
}
