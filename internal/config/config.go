// Package config defines the user-facing configuration of jumpline.
//
// The engine queries configuration once per jump invocation: the key
// alphabet, the search case mode, the two prompts, and the four style tags
// the renderer maps to concrete colors. Values load from a TOML or YAML file
// (see the loader subpackage) over the defaults here.
package config

import (
	"errors"
	"fmt"

	"github.com/dshills/jumpline/internal/jump/finder"
)

// Errors returned by configuration validation.
var (
	// ErrEmptyAlphabet indicates the alphabet has no characters.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")

	// ErrDuplicateAlphabetChar indicates a repeated alphabet character.
	ErrDuplicateAlphabetChar = errors.New("alphabet characters must be distinct")
)

// Styles holds the four style tags of a jump overlay. Values are opaque to
// the engine; the renderer interprets them as hex colors.
type Styles struct {
	// Primary styles single-character jump keys.
	Primary string `toml:"primary" yaml:"primary"`

	// Secondary styles the first character of two-character keys.
	Secondary string `toml:"secondary" yaml:"secondary"`

	// Tertiary styles the second character of two-character keys.
	Tertiary string `toml:"tertiary" yaml:"tertiary"`

	// Dim styles buffer text outside any jump key.
	Dim string `toml:"dim" yaml:"dim"`
}

// Config is the full jumpline configuration.
type Config struct {
	// Alphabet is the ordered set of distinct jump-key characters.
	Alphabet string `toml:"alphabet" yaml:"alphabet"`

	// CaseMode is the search case sensitivity: default, ignorecase, or
	// smartcase.
	CaseMode string `toml:"case_mode" yaml:"case_mode"`

	// SearchPrompt is shown while waiting for the search character.
	SearchPrompt string `toml:"search_prompt" yaml:"search_prompt"`

	// JumpPrompt is shown while waiting for jump keystrokes.
	JumpPrompt string `toml:"jump_prompt" yaml:"jump_prompt"`

	// Styles are the overlay style tags.
	Styles Styles `toml:"styles" yaml:"styles"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Alphabet:     "abcdefghijklmnopqrstuvwxyz",
		CaseMode:     "default",
		SearchPrompt: "jump to char: ",
		JumpPrompt:   "jump: ",
		Styles: Styles{
			Primary:   "#FF5F87",
			Secondary: "#5FD7FF",
			Tertiary:  "#87D7AF",
			Dim:       "#626262",
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if len(c.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	seen := make(map[rune]bool)
	for _, r := range c.Alphabet {
		if seen[r] {
			return fmt.Errorf("%w: %q repeats", ErrDuplicateAlphabetChar, r)
		}
		seen[r] = true
	}
	if _, err := finder.ParseCaseMode(c.CaseMode); err != nil {
		return err
	}
	return nil
}

// AlphabetRunes returns the alphabet as an ordered rune slice.
func (c *Config) AlphabetRunes() []rune {
	return []rune(c.Alphabet)
}

// Case returns the parsed case mode. Call Validate first; unparseable values
// fall back to the default mode.
func (c *Config) Case() finder.CaseMode {
	mode, err := finder.ParseCaseMode(c.CaseMode)
	if err != nil {
		return finder.CaseDefault
	}
	return mode
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
