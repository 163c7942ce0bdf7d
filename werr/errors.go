// Package werr defines the errors reported when reading sentences and worlds
package werr

import (
	"errors"
	"fmt"
)

type ErrCode int

const (
	None ErrCode = iota
	Syntax
	UnknownPartitioning
	UnknownPart
	BadWorld
)

type WorldsError interface {
	Error() string
	Code() ErrCode
}

var (
	_ WorldsError = (*NewSyntax)(nil)
	_ WorldsError = (*NewUnknownPartitioning)(nil)
	_ WorldsError = (*NewUnknownPart)(nil)
	_ WorldsError = (*NewBadWorld)(nil)
)

func FormatWithCode(e WorldsError) string {
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// Is reports whether err, or any error it wraps, is a WorldsError with code
func Is(err error, code ErrCode) bool {
	var worldsErr WorldsError
	if !errors.As(err, &worldsErr) {
		return false
	}
	return worldsErr.Code() == code
}

// NewSyntax is a malformed sentence. Line and Column are 1-based
type NewSyntax struct {
	Line, Column  int
	ParserMessage string
}

func (e *NewSyntax) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.ParserMessage)
}
func (e *NewSyntax) Code() ErrCode { return Syntax }

// NewUnknownPartitioning is returned by worlds asked about a partitioning they do not choose for
type NewUnknownPartitioning struct {
	Partitioning string
}

func (e *NewUnknownPartitioning) Error() string {
	return fmt.Sprintf("partitioning '%s' is not part of the world", e.Partitioning)
}
func (e *NewUnknownPartitioning) Code() ErrCode { return UnknownPartitioning }

// NewUnknownPart is a part that is not an alternative of its partitioning
type NewUnknownPart struct {
	Partitioning string
	Part         string
}

func (e *NewUnknownPart) Error() string {
	return fmt.Sprintf("part '%s' is not an alternative of partitioning '%s'", e.Part, e.Partitioning)
}
func (e *NewUnknownPart) Code() ErrCode { return UnknownPart }

// NewBadWorld is a world description that could not be understood
type NewBadWorld struct {
	Reason string
}

func (e *NewBadWorld) Error() string {
	return fmt.Sprintf("bad world: %s", e.Reason)
}
func (e *NewBadWorld) Code() ErrCode { return BadWorld }
