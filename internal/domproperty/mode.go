package domproperty

import (
	"fmt"
	"strings"
)

// Mode selects development or production behavior. Development mode produces
// descriptive error messages and populates the standard-name hint table;
// production mode keeps messages generic and omits the table. Control flow is
// identical in both.
type Mode int

const (
	ModeDevelopment Mode = iota
	ModeProduction
)

// ParseMode accepts "development"/"dev" and "production"/"prod". An empty
// string selects development.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "development", "dev":
		return ModeDevelopment, nil
	case "production", "prod":
		return ModeProduction, nil
	default:
		return ModeDevelopment, fmt.Errorf("invalid mode %q: must be 'development' or 'production'", s)
	}
}

func (m Mode) String() string {
	if m == ModeProduction {
		return "production"
	}
	return "development"
}

// MarshalText renders the mode name, so Mode can be used with flag.TextVar.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText lets Mode be decoded from flags and environment variables.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// IsProduction reports whether m is ModeProduction.
func (m Mode) IsProduction() bool { return m == ModeProduction }
