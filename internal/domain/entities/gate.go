package entities

import "strings"

// MatchListingLine returns the first listing line belonging to the named
// package. The match is anchored: the line must start with the name followed
// immediately by " (", so "flake" never matches a "flake8 (2.5.4)" line.
func MatchListingLine(name string, listing []string) (string, bool) {
	prefix := name + " ("
	for _, line := range listing {
		if strings.HasPrefix(line, prefix) {
			return line, true
		}
	}
	return "", false
}

// CheckDependency gates a single dependency against a raw listing of
// "name (version)" lines. It never fails: a missing line yields
// Installed=false and an unparseable version degrades to the zero Version,
// which surfaces as out of range.
func CheckDependency(spec DependencySpec, listing []string) Verdict {
	verdict := Verdict{Name: spec.Name}

	line, found := MatchListingLine(spec.Name, listing)
	if !found {
		return verdict
	}

	verdict.Installed = true
	verdict.RawFound = line
	verdict.FoundVersion = ExtractVersion(strings.TrimPrefix(line, spec.Name+" "))
	verdict.InRange = verdict.FoundVersion.InRange(
		ExtractVersion(spec.MinVersion),
		ExtractVersion(spec.MaxVersion),
	)
	return verdict
}
