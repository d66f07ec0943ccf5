package progdesc

import "errors"

// Package errors.
var (
	// ErrMetaKeyOverflow is returned by Build when a processor's
	// meta-key field exceeds its 16-bit budget: too many texture slots
	// or transforms, an oversized class ID, or a private key of 64 KiB
	// or more. The condition is data-dependent but deterministic, so
	// callers must treat the draw as uncacheable rather than retry.
	ErrMetaKeyOverflow = errors.New("progdesc: meta-key field exceeds 16-bit budget")
)
