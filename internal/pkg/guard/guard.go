// Package guard provides the constructor guard embedded by value objects,
// commands and queries so that zero values are rejected at use sites.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not built by its constructor and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as built through its constructor.
// The zero value reports the object as not constructed.
//
// Example:
//
//	type Quote struct {
//	    fee   decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuote(fee decimal.Decimal) Quote {
//	    return Quote{fee: fee, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
