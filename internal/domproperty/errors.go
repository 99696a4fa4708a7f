package domproperty

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRegistration matches a *DuplicateRegistrationError.
	ErrDuplicateRegistration = errors.New("domproperty: duplicate registration")
	// ErrConflictingValueKind matches a *ConflictingValueKindError.
	ErrConflictingValueKind = errors.New("domproperty: conflicting value kinds")
	// ErrSealed indicates an injection into a sealed registry.
	ErrSealed = errors.New("domproperty: sealed registry")
)

// minifiedMessage replaces descriptive messages in production mode.
const minifiedMessage = "Minified exception occurred; use the non-minified dev environment " +
	"for the full error message and additional helpful warnings."

// DuplicateRegistrationError reports a property name injected more than once.
type DuplicateRegistrationError struct {
	Property string
	verbose  bool
}

func (e *DuplicateRegistrationError) Error() string {
	if !e.verbose {
		return minifiedMessage
	}
	return fmt.Sprintf("injectDOMPropertyConfig(...): You're trying to inject DOM property '%s' "+
		"which has already been injected. You may be accidentally injecting the same DOM "+
		"property config twice, or you may be injecting two configs that have conflicting "+
		"property names.", e.Property)
}

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}

// ConflictingValueKindError reports a bitmask that sets more than one of the
// boolean, numeric and overloaded-boolean value kinds.
type ConflictingValueKindError struct {
	Property string
	Flags    Flags
	verbose  bool
}

func (e *ConflictingValueKindError) Error() string {
	if !e.verbose {
		return minifiedMessage
	}
	return fmt.Sprintf("DOMProperty: Value can be one of boolean, overloaded boolean, or "+
		"numeric value, but not a combination: %s", e.Property)
}

func (e *ConflictingValueKindError) Is(target error) bool {
	return target == ErrConflictingValueKind
}
