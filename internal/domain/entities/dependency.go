package entities

// DependencySpec names a dependency and the half-open version range
// [MinVersion, MaxVersion) it must fall in. The bounds are raw version
// strings and go through the same extraction rules as listing lines.
type DependencySpec struct {
	Name       string
	MinVersion string
	MaxVersion string
}

// Verdict is the outcome of gating one dependency. It is created fresh per
// check and immutable once returned; translating it into diagnostics or an
// abort decision is the caller's concern.
type Verdict struct {
	Name         string
	Installed    bool
	InRange      bool
	FoundVersion Version
	RawFound     string
}

// Passed reports whether the dependency was found and within range.
func (v Verdict) Passed() bool {
	return v.Installed && v.InRange
}
