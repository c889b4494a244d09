//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depgate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencySpecBuilder helps create test dependency specs with a fluent interface.
type DependencySpecBuilder struct {
	*testkit.BaseBuilder
	name       string
	minVersion string
	maxVersion string
}

// NewDependencySpecBuilder creates a new spec builder with sensible defaults.
func NewDependencySpecBuilder() *DependencySpecBuilder {
	return &DependencySpecBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "flake8",
		minVersion:  "2.5.4",
		maxVersion:  "3.0.0",
	}
}

// WithName sets the dependency name.
func (b *DependencySpecBuilder) WithName(name string) *DependencySpecBuilder {
	b.name = name
	return b
}

// WithMinVersion sets the inclusive lower bound.
func (b *DependencySpecBuilder) WithMinVersion(version string) *DependencySpecBuilder {
	b.minVersion = version
	return b
}

// WithMaxVersion sets the exclusive upper bound.
func (b *DependencySpecBuilder) WithMaxVersion(version string) *DependencySpecBuilder {
	b.maxVersion = version
	return b
}

// Build creates the spec (satisfies testkit.Builder interface).
func (b *DependencySpecBuilder) Build() interface{} {
	return b.BuildSpec()
}

// BuildSpec creates the spec with a concrete return type.
func (b *DependencySpecBuilder) BuildSpec() entities.DependencySpec {
	return entities.DependencySpec{
		Name:       b.name,
		MinVersion: b.minVersion,
		MaxVersion: b.maxVersion,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencySpecBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "flake8"
	b.minVersion = "2.5.4"
	b.maxVersion = "3.0.0"
	return b
}

// Clone creates a deep copy of the DependencySpecBuilder.
func (b *DependencySpecBuilder) Clone() testkit.Builder {
	return &DependencySpecBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		minVersion:  b.minVersion,
		maxVersion:  b.maxVersion,
	}
}
