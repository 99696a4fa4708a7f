package domproperty

import (
	"fmt"
	"strings"
)

// Flags is the bitmask describing how a property's value is applied.
type Flags uint32

const (
	// MustUseProperty marks values that must be set through the DOM object
	// property rather than the attribute.
	MustUseProperty Flags = 0x1
	// HasBooleanValue marks true boolean attributes (present or absent).
	HasBooleanValue Flags = 0x4
	// HasNumericValue marks numeric values.
	HasNumericValue Flags = 0x8
	// HasPositiveNumericValue marks numeric values that must be positive.
	// Its bits are a superset of HasNumericValue.
	HasPositiveNumericValue Flags = 0x10 | 0x8
	// HasOverloadedBooleanValue marks values that are either a boolean or a
	// string.
	HasOverloadedBooleanValue Flags = 0x20
)

// flagNames lists the named flags in declaration order.
var flagNames = []struct {
	name string
	flag Flags
}{
	{"MUST_USE_PROPERTY", MustUseProperty},
	{"HAS_BOOLEAN_VALUE", HasBooleanValue},
	{"HAS_NUMERIC_VALUE", HasNumericValue},
	{"HAS_POSITIVE_NUMERIC_VALUE", HasPositiveNumericValue},
	{"HAS_OVERLOADED_BOOLEAN_VALUE", HasOverloadedBooleanValue},
}

// Has reports whether every bit of mask is set in f.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// String renders the flags as a "|"-joined list of names. Positive numeric
// subsumes numeric, so only the former is printed when both match.
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	var seen Flags
	for _, fn := range flagNames {
		if fn.flag == HasNumericValue && f.Has(HasPositiveNumericValue) {
			continue
		}
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
			seen |= fn.flag
		}
	}
	if rest := f &^ seen; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// FlagNames returns the symbolic flag names mapped to their bitmask values.
func FlagNames() map[string]Flags {
	out := make(map[string]Flags, len(flagNames))
	for _, fn := range flagNames {
		out[fn.name] = fn.flag
	}
	return out
}

// ParseFlag resolves a single symbolic flag name such as "HAS_BOOLEAN_VALUE".
// Matching is case-insensitive.
func ParseFlag(name string) (Flags, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, fn := range flagNames {
		if fn.name == upper {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown property flag %q", name)
}

// ValueKind is the decoded value semantics of a property.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindBoolean
	KindNumeric
	KindPositiveNumeric
	KindOverloadedBoolean
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBoolean:
		return "boolean"
	case KindNumeric:
		return "numeric"
	case KindPositiveNumeric:
		return "positive-numeric"
	case KindOverloadedBoolean:
		return "overloaded-boolean"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}
