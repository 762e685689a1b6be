package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLanguage is returned when a string does not name a supported
// guest language.
var ErrUnknownLanguage = errors.New("unknown guest language")

// ErrUnknownTier is returned when a string does not name a language tier.
var ErrUnknownTier = errors.New("unknown guest language tier")

// GuestLanguage is a target ecosystem that examples are written for.
type GuestLanguage int

// Supported guest languages.
const (
	Rust GuestLanguage = iota
	Go
	C
	Zig
	JavaScript
	TypeScript
	CSharp
	Swift
	Grain
	Python
	Scala2
)

// AllGuestLanguages lists every language in declaration order.
var AllGuestLanguages = []GuestLanguage{
	Rust, Go, C, Zig, JavaScript, TypeScript, CSharp, Swift, Grain, Python, Scala2,
}

type languageInfo struct {
	id      string
	name    string
	tier    Tier
	aliases []string
}

var languages = map[GuestLanguage]languageInfo{
	Rust:       {"rust", "Rust", Tier2, []string{"rust"}},
	Go:         {"go", "Go", Tier2, []string{"go"}},
	C:          {"c", "C", Tier2, []string{"c", "c++", "cpp"}},
	Zig:        {"zig", "Zig", Tier3, []string{"zig"}},
	JavaScript: {"js", "JavaScript", Tier2, []string{"js", "javascript"}},
	TypeScript: {"ts", "TypeScript", Tier2, []string{"ts", "typescript"}},
	CSharp:     {"cs", "C#", Tier4, []string{"c#", "cs", "csharp"}},
	Swift:      {"swift", "Swift", Tier3, []string{"swift"}},
	Grain:      {"grain", "Grain", Tier3, []string{"grain"}},
	Python:     {"python", "Python", Tier2, []string{"py", "python"}},
	Scala2:     {"scala2", "Scala 2", Tier2, []string{"scala2"}},
}

// ParseGuestLanguage resolves a language id or alias, case-insensitively.
func ParseGuestLanguage(s string) (GuestLanguage, error) {
	needle := strings.ToLower(s)
	for _, lang := range AllGuestLanguages {
		for _, alias := range languages[lang].aliases {
			if alias == needle {
				return lang, nil
			}
		}
	}

	all := make([]string, 0, len(AllGuestLanguages))
	for _, lang := range AllGuestLanguages {
		all = append(all, fmt.Sprintf("%q", lang.ID()))
	}
	return 0, fmt.Errorf("%w: %s. Expected one of %s", ErrUnknownLanguage, s, strings.Join(all, ", "))
}

// ID returns the short identifier used for catalog buckets and default
// example names, e.g. "ts".
func (g GuestLanguage) ID() string { return languages[g].id }

// Name returns the display name, e.g. "TypeScript".
func (g GuestLanguage) Name() string { return languages[g].name }

// Tier returns the maturity tier of the language ecosystem.
func (g GuestLanguage) Tier() Tier { return languages[g].tier }

func (g GuestLanguage) String() string { return g.Name() }

// MarshalText renders the language id.
func (g GuestLanguage) MarshalText() ([]byte, error) {
	return []byte(g.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GuestLanguage) UnmarshalText(text []byte) error {
	lang, err := ParseGuestLanguage(string(text))
	if err != nil {
		return err
	}
	*g = lang
	return nil
}

// Tier ranks the readiness of a language ecosystem. Lower is more mature.
// It only drives filtering and adapter selection.
type Tier int

// Language tiers.
const (
	Tier1 Tier = iota + 1
	Tier2
	Tier3
	Tier4
)

// ParseTier accepts "tierN" or "N" for N in 1..4.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(s) {
	case "tier1", "1":
		return Tier1, nil
	case "tier2", "2":
		return Tier2, nil
	case "tier3", "3":
		return Tier3, nil
	case "tier4", "4":
		return Tier4, nil
	}
	return 0, fmt.Errorf("%w %s", ErrUnknownTier, s)
}

// Level returns the tier ordinal, 1 through 4.
func (t Tier) Level() int { return int(t) }

// Name returns "tier1" through "tier4".
func (t Tier) Name() string { return fmt.Sprintf("tier%d", int(t)) }

func (t Tier) String() string { return t.Name() }
