package entities

import (
	"strconv"
	"strings"
)

// Version is the structured form of a dependency version string. The zero
// value doubles as the sentinel produced for empty or unparseable input.
type Version struct {
	Major     int
	Minor     int
	Patch     int
	Qualifier string
}

// maxVersionParts caps the dot-separated segments considered during
// extraction; anything beyond the fourth segment is ignored.
const maxVersionParts = 4

// ExtractVersion turns a free-form version string into a Version.
//
// Version strings in the wild carry leading tool names ("Python 3.5.1"),
// enclosing parentheses ("(2.5.4)"), a leading "v", and trailing paths
// ("0.29.0 (C:\...\wheel.exe)"). Each step below is a best-effort strip of
// one kind of noise, applied in a fixed order. Extraction never fails:
// anything that cannot be parsed degrades to the zero Version.
func ExtractVersion(raw string) Version {
	s := strings.TrimSpace(raw)
	s = stripLeadingLabel(s)
	s = stripTrailingNoise(s)
	s = stripEnclosingParens(s)
	s = stripLeadingV(s)
	if s == "" {
		return Version{}
	}

	parts := strings.Split(s, ".")
	if len(parts) > maxVersionParts {
		parts = parts[:maxVersionParts]
	}
	return parseParts(parts)
}

// String renders the canonical "M.N.Pqualifier" form. Canonical inputs
// round-trip through ExtractVersion.
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." +
		strconv.Itoa(v.Patch) + v.Qualifier
}

// AtLeast reports whether v is at least bound. The numeric triple is
// compared field by field; when all three are equal the qualifiers decide
// via plain lexicographic ordering, with equal qualifiers satisfying the
// bound. Qualifier ordering is intentionally naive; callers only ever pin
// exact qualifiers or none at all.
func (v Version) AtLeast(bound Version) bool {
	if v.Major != bound.Major {
		return v.Major > bound.Major
	}
	if v.Minor != bound.Minor {
		return v.Minor > bound.Minor
	}
	if v.Patch != bound.Patch {
		return v.Patch > bound.Patch
	}
	return v.Qualifier >= bound.Qualifier
}

// LessThan reports whether v is strictly below bound. Unlike AtLeast, equal
// qualifiers do not satisfy it.
func (v Version) LessThan(bound Version) bool {
	if v.Major != bound.Major {
		return v.Major < bound.Major
	}
	if v.Minor != bound.Minor {
		return v.Minor < bound.Minor
	}
	if v.Patch != bound.Patch {
		return v.Patch < bound.Patch
	}
	return v.Qualifier < bound.Qualifier
}

// InRange reports membership in the half-open interval [minBound, maxBound).
func (v Version) InRange(minBound, maxBound Version) bool {
	return v.AtLeast(minBound) && v.LessThan(maxBound)
}

// stripLeadingLabel drops a first whitespace-delimited token that cannot
// start a version ("Python 3.5.1" -> "3.5.1", "flake8 (2.5.4)" -> "(2.5.4)").
func stripLeadingLabel(s string) string {
	token, rest, found := strings.Cut(s, " ")
	if !found || looksLikeVersionStart(token) {
		return s
	}
	return strings.TrimLeft(rest, " \t")
}

// looksLikeVersionStart reports whether a token begins with a digit,
// "v"+digit, or "("+digit.
func looksLikeVersionStart(token string) bool {
	if token == "" {
		return false
	}
	if isDigit(token[0]) {
		return true
	}
	return len(token) > 1 && (token[0] == 'v' || token[0] == '(') && isDigit(token[1])
}

// stripTrailingNoise keeps only the leading version-looking run, discarding
// anything after the first whitespace boundary
// ("0.29.0 (C:\...\wheel.exe)" -> "0.29.0").
func stripTrailingNoise(s string) string {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}

// stripEnclosingParens removes a single pair of enclosing parentheses.
func stripEnclosingParens(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return s[1 : len(s)-1]
	}
	return s
}

// stripLeadingV removes one leading "v" when more characters follow.
func stripLeadingV(s string) string {
	if len(s) > 1 && s[0] == 'v' {
		return s[1:]
	}
	return s
}

// parseParts maps up to four dot-separated parts onto the version fields.
// Assignment halts at the first part that is not a pure digit run where a
// numeric field is required; later fields keep their defaults.
func parseParts(parts []string) Version {
	var v Version

	if len(parts) == maxVersionParts {
		numeric := [3]*int{&v.Major, &v.Minor, &v.Patch}
		for i := range numeric {
			n, ok := atoiDigits(parts[i])
			if !ok {
				return v
			}
			*numeric[i] = n
		}
		if _, ok := atoiDigits(parts[3]); ok {
			v.Qualifier = parts[3]
		} else {
			v.Qualifier = trimQualifierSep(parts[3])
		}
		return v
	}

	// 1-3 parts: all but the last must be pure digit runs; the last may be
	// numeric, numeric-then-qualifier, or a pure qualifier.
	numeric := [3]*int{&v.Major, &v.Minor, &v.Patch}
	last := len(parts) - 1
	for i := 0; i < last; i++ {
		n, ok := atoiDigits(parts[i])
		if !ok {
			return v
		}
		*numeric[i] = n
	}

	n, qualifier := splitTailPart(parts[last])
	*numeric[last] = n
	v.Qualifier = qualifier
	return v
}

// splitTailPart parses a trailing part: the leading digit run (if any)
// becomes the numeric value and the first non-digit character begins the
// qualifier ("3rc1" -> 3,"rc1"; "3-rc1" -> 3,"rc1"; "rc1" -> 0,"rc1").
func splitTailPart(part string) (int, string) {
	i := 0
	for i < len(part) && isDigit(part[i]) {
		i++
	}
	if i == 0 {
		return 0, trimQualifierSep(part)
	}
	n, err := strconv.Atoi(part[:i])
	if err != nil {
		n = 0
	}
	return n, trimQualifierSep(part[i:])
}

// trimQualifierSep consumes a single leading "." or "-" separator so that
// "-beta" and "beta" yield the same qualifier.
func trimQualifierSep(s string) string {
	if len(s) > 0 && (s[0] == '.' || s[0] == '-') {
		return s[1:]
	}
	return s
}

// atoiDigits converts a pure digit run to an int; ok is false for anything
// that is not entirely digits.
func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
