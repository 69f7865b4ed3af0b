package elements

import "errors"

var (
	// ErrInvalidIdentifier is returned in strict mode when a control name or id
	// sanitises to an empty identifier.
	ErrInvalidIdentifier = errors.New("elements: identifier sanitises to empty")
	// ErrNoStatusSource is returned by the status dropdown without a StatusSource.
	ErrNoStatusSource = errors.New("elements: status source not configured")
	// ErrNoTermSource is returned by category dropdowns without a TermSource.
	ErrNoTermSource = errors.New("elements: term source not configured")
	// ErrYearSpan is returned in strict mode when a year span exceeds
	// MaxYearSpan.
	ErrYearSpan = errors.New("elements: year span out of range")
)
