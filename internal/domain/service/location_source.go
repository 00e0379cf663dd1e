package service

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
)

// ErrPermissionDenied is the terminal location error: the platform revoked the
// location capability. It ends the presence session; the member must opt in
// again. All other sample errors are transient and must not stop tracking.
var ErrPermissionDenied = errors.New("location permission denied")

// Sample is one reading from the device location stream. Err carries a failed
// fix; Position is only meaningful when Err is nil.
type Sample struct {
	Position orb.Point
	Err      error
}

// LocationSource abstracts the platform location API: a lazy, unbounded
// sequence of position samples, restartable per call and cancellable at any
// time through ctx. The returned channel is closed when the stream ends.
type LocationSource interface {
	Updates(ctx context.Context) (<-chan Sample, error)
}
