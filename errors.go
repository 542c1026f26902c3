package binspec

import (
	"fmt"
)

// Kind tells apart the ways a bin specification can be rejected.
type Kind uint8

const (
	KindSyntax Kind = iota
	KindResolution
	KindMalformedBin
	KindOverlap
)

var kindNames = map[Kind]string{
	KindSyntax:       "syntax",
	KindResolution:   "resolution",
	KindMalformedBin: "malformed-bin",
	KindOverlap:      "overlap",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is the invalid-specification error returned by Parse and
// CheckOverlap. Group and Bin are zero-based ordinals within the input,
// -1 when they do not apply.
type Error struct {
	Kind    Kind
	Group   int
	Bin     int
	Message string

	err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

func errSyntax(err error) *Error {
	return &Error{
		Kind:    KindSyntax,
		Group:   -1,
		Bin:     -1,
		Message: fmt.Sprintf("Bin specification is not valid: %v.", err),
		err:     err,
	}
}

func errNotAGroup(group int) *Error {
	return &Error{
		Kind:    KindSyntax,
		Group:   group,
		Bin:     -1,
		Message: fmt.Sprintf("Bin group %d is not a parenthesized group.", group),
	}
}

func errResolution(group int) *Error {
	return &Error{
		Kind:    KindResolution,
		Group:   group,
		Bin:     -1,
		Message: fmt.Sprintf("Resolution in bin group %d is not a positive integer.", group),
	}
}

func errMalformedBin(bin, group int) *Error {
	return &Error{
		Kind:    KindMalformedBin,
		Group:   group,
		Bin:     bin,
		Message: fmt.Sprintf("Bin %d in group %d is malformed.", bin, group),
	}
}

func errOverlap(start, end, lastStart, lastEnd int) *Error {
	return &Error{
		Kind:    KindOverlap,
		Group:   -1,
		Bin:     -1,
		Message: fmt.Sprintf("Bin %d-%d overlaps %d-%d.", start, end, lastStart, lastEnd),
	}
}
