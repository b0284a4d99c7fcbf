// Package errs defines the sentinel errors returned by the mmv packages.
//
// Callers should match these with errors.Is; call sites wrap them with
// fmt.Errorf("%w: ...") to add context.
package errs

import "errors"

var (
	// ErrNameTooLong is returned when a metric name is not strictly shorter
	// than format.NameMaxLen.
	ErrNameTooLong = errors.New("metric name too long")

	// ErrHelpTooLong is returned when a help text is not strictly shorter
	// than format.StringBlockLen.
	ErrHelpTooLong = errors.New("help text too long")

	// ErrEmbeddedNul is returned when a string value contains a zero byte,
	// which cannot be represented in a null-terminated slot.
	ErrEmbeddedNul = errors.New("string value contains embedded nul byte")

	// ErrRegionOverflow is returned when an encoded value does not fit the
	// remaining space of its backing region. Nothing is written.
	ErrRegionOverflow = errors.New("encoded value exceeds backing region")
)
