// Package txerr defines the error kinds shared by the transaction codec, builder and command parser.
package txerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind uint8

const (
	// KindInvalidTransaction marks a structural decode or encode failure.
	KindInvalidTransaction Kind = iota + 1
	// KindInsufficientFunds marks a spend exceeding the available value.
	KindInsufficientFunds
	// KindInvalidAddress marks an address that failed format or network validation.
	KindInvalidAddress
	// KindParse marks a command-token parsing failure.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindInvalidTransaction:
		return "Invalid Transaction"
	case KindInsufficientFunds:
		return "Insufficient Funds"
	case KindInvalidAddress:
		return "Invalid Address"
	case KindParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is a failure of a known Kind with an optional message and cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

var (
	ErrInvalidTransaction = &Error{Kind: KindInvalidTransaction}
	ErrInsufficientFunds  = &Error{Kind: KindInsufficientFunds}
	ErrInvalidAddress     = &Error{Kind: KindInvalidAddress}
	ErrParse              = &Error{Kind: KindParse}
)

// InvalidTransaction wraps cause as a structural transaction failure.
func InvalidTransaction(cause error) *Error {
	return &Error{Kind: KindInvalidTransaction, Err: cause}
}

// InsufficientFunds reports a spend of want against have available units.
func InsufficientFunds(want, have uint64) *Error {
	return &Error{Kind: KindInsufficientFunds, Message: fmt.Sprintf("need %d, have %d", want, have)}
}

// InvalidAddress wraps cause as an address validation failure.
func InvalidAddress(cause error) *Error {
	return &Error{Kind: KindInvalidAddress, Err: cause}
}

// Parse returns a parse failure carrying msg.
func Parse(msg string) *Error {
	return &Error{Kind: KindParse, Message: msg}
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the package sentinels work with errors.Is.
// A target carrying a message also requires the message to match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
