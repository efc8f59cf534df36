package ring

import "errors"

var (
	// ErrFrameTooLarge reports a payload that can never fit the ring,
	// regardless of consumer progress. Permanent; do not retry at the
	// same size.
	ErrFrameTooLarge = errors.New("ring: frame exceeds ring capacity")

	// ErrInsufficientSpace reports that the ring lacks free space for the
	// frame right now. Transient; retry after the consumer drains.
	ErrInsufficientSpace = errors.New("ring: insufficient space for frame")

	// ErrWouldBlock reports that no complete frame is visible yet: fewer
	// than two header bytes, or a header whose payload has not fully
	// arrived. Transient; retry after the producer publishes more.
	ErrWouldBlock = errors.New("ring: no complete frame available")
)
