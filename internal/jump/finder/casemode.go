package finder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCaseMode indicates an unrecognized case mode name.
var ErrUnknownCaseMode = errors.New("unknown case mode")

// CaseMode controls how a search character is matched against the buffer.
type CaseMode uint8

const (
	// CaseDefault matches the literal character only.
	CaseDefault CaseMode = iota

	// CaseIgnore matches either case when the character is alphabetic.
	CaseIgnore

	// CaseSmart matches either case when the character is lowercase;
	// explicit uppercase stays case-sensitive.
	CaseSmart
)

// String returns the configuration name of the case mode.
func (m CaseMode) String() string {
	switch m {
	case CaseDefault:
		return "default"
	case CaseIgnore:
		return "ignorecase"
	case CaseSmart:
		return "smartcase"
	default:
		return fmt.Sprintf("CaseMode(%d)", m)
	}
}

// ParseCaseMode parses a configuration name into a CaseMode.
func ParseCaseMode(name string) (CaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return CaseDefault, nil
	case "ignorecase":
		return CaseIgnore, nil
	case "smartcase":
		return CaseSmart, nil
	default:
		return CaseDefault, fmt.Errorf("%w: %q", ErrUnknownCaseMode, name)
	}
}
