// SPDX-License-Identifier: MIT

// Package selection - methods, tie policies, options and sentinel errors.

package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for selection.
var (
	// ErrNilMatrix is returned when a nil matrix or mask is passed.
	ErrNilMatrix = errors.New("selection: matrix is nil")

	// ErrInvalidK is returned for a non-finite k, or a TopK k that is not an
	// integer ≥ 1.
	ErrInvalidK = errors.New("selection: invalid k")

	// ErrUnknownMethod is returned for a Method outside TopK/Threshold/Cumulative.
	ErrUnknownMethod = errors.New("selection: unknown method")

	// ErrUnknownTieBreak is returned for a TieBreak outside TieStable/TieRandom.
	ErrUnknownTieBreak = errors.New("selection: unknown tie-break policy")

	// ErrInvalidWeight is returned when a unit weight is negative, NaN or ±Inf.
	ErrInvalidWeight = errors.New("selection: invalid unit weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("selection: invalid option supplied")
)

// Method picks the selection rule applied to a candidate pool.
type Method int

const (
	// TopK keeps the k largest candidates.
	TopK Method = iota
	// Threshold keeps candidates strictly greater than k.
	Threshold
	// Cumulative keeps the shortest descending prefix whose sum reaches k.
	Cumulative
)

// String returns the canonical lower-case method name.
func (m Method) String() string {
	switch m {
	case TopK:
		return "topk"
	case Threshold:
		return "threshold"
	case Cumulative:
		return "cumulative"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a method name to a Method. It accepts the canonical names
// and the classic flow-mapping aliases nfirst, xfirst and xsumfirst.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "topk", "nfirst":
		return TopK, nil
	case "threshold", "xfirst":
		return Threshold, nil
	case "cumulative", "xsumfirst":
		return Cumulative, nil
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// TieBreak decides the order of equal values when ranking.
type TieBreak int

const (
	// TieStable ranks equal values by position: the earlier cell in
	// row-major order wins.
	TieStable TieBreak = iota
	// TieRandom shuffles equal values with a seeded RNG.
	TieRandom
)

// String returns the canonical policy name.
func (t TieBreak) String() string {
	switch t {
	case TieStable:
		return "stable"
	case TieRandom:
		return "random"
	default:
		return fmt.Sprintf("tiebreak(%d)", int(t))
	}
}

// ParseTieBreak maps "stable"/"first" and "random" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stable", "first":
		return TieStable, nil
	case "random":
		return TieRandom, nil
	}

	return 0, fmt.Errorf("ParseTieBreak(%q): %w", s, ErrUnknownTieBreak)
}

// Option configures a selection via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// selector runs.
type Option func(*Options)

// Options holds the resolved selection parameters.
type Options struct {
	// Ctx allows cancelling a long per-row run.
	Ctx context.Context

	// Tie is the ranking policy for equal values.
	Tie TieBreak

	// Seed feeds the RNG used by TieRandom. 0 selects a fixed default seed.
	Seed int64

	// Workers bounds the number of rows ranked concurrently by Rows.
	// 1 runs sequentially.
	Workers int

	err error
}

// DefaultOptions returns background context, stable ties, seed 0 and one worker.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Tie:     TieStable,
		Seed:    0,
		Workers: 1,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTieBreak sets the tie policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t != TieStable && t != TieRandom {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, t)
			return
		}
		o.Tie = t
	}
}

// WithSeed sets the seed used by TieRandom.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers fans per-row ranking out over n goroutines (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
