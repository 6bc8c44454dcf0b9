package theme

import "strings"

// Preference is the user's theme intent.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"
)

// Preferences lists every accepted preference in display order.
var Preferences = []Preference{Light, Dark, System}

// ParsePreference maps a raw value to a Preference. Matching is exact apart
// from surrounding whitespace; stored values are written by this package.
func ParsePreference(raw string) (Preference, bool) {
	p := Preference(strings.TrimSpace(raw))
	return p, p.Valid()
}

// Valid reports whether p is one of the three accepted preferences.
func (p Preference) Valid() bool {
	switch p {
	case Light, Dark, System:
		return true
	default:
		return false
	}
}

func (p Preference) String() string {
	return string(p)
}

// Resolved is the concrete theme in effect. It is never "system".
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

// IsDark reports whether r is the dark theme.
func (r Resolved) IsDark() bool {
	return r == ResolvedDark
}

// Opposite returns the other concrete theme.
func (r Resolved) Opposite() Resolved {
	if r.IsDark() {
		return ResolvedLight
	}
	return ResolvedDark
}

// Preference returns the explicit preference that pins r.
func (r Resolved) Preference() Preference {
	if r.IsDark() {
		return Dark
	}
	return Light
}

func (r Resolved) String() string {
	return string(r)
}

// Resolve computes the concrete theme for p given the platform signal.
func Resolve(p Preference, prefersDark bool) Resolved {
	switch p {
	case Light:
		return ResolvedLight
	case Dark:
		return ResolvedDark
	default:
		if prefersDark {
			return ResolvedDark
		}
		return ResolvedLight
	}
}
