package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depgate/internal/domain/entities"
)

func TestExtractVersion(t *testing.T) {
	t.Parallel()

	t.Run("should return the zero version for empty input", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, entities.Version{}, entities.ExtractVersion(""))
		assert.Equal(t, entities.Version{}, entities.ExtractVersion("   "))
	})

	t.Run("should parse a canonical numeric triple", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "3.5.1"

		// when
		version := entities.ExtractVersion(raw)

		// then
		assert.Equal(t, entities.Version{Major: 3, Minor: 5, Patch: 1}, version)
	})

	t.Run("should strip a leading tool label", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, entities.ExtractVersion("3.5.1"), entities.ExtractVersion("Python 3.5.1"))
	})

	t.Run("should strip a labeled parenthetical version", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, entities.ExtractVersion("2.5.4"), entities.ExtractVersion("flake8 (2.5.4)"))
	})

	t.Run("should strip a leading v", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, entities.ExtractVersion("1.2.3"), entities.ExtractVersion("v1.2.3"))
	})

	t.Run("should discard a trailing installation path", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `0.29.0 (C:\Users\build\venv\Scripts\wheel.exe)`

		// when
		version := entities.ExtractVersion(raw)

		// then
		assert.Equal(t, entities.Version{Major: 0, Minor: 29, Patch: 0}, version)
	})

	t.Run("should split a mixed patch and qualifier", func(t *testing.T) {
		t.Parallel()

		// given / when
		version := entities.ExtractVersion("1.2.3rc1")

		// then
		assert.Equal(t, entities.Version{Major: 1, Minor: 2, Patch: 3, Qualifier: "rc1"}, version)
	})

	t.Run("should keep a pure qualifier with major defaulting to zero", func(t *testing.T) {
		t.Parallel()

		// given / when
		version := entities.ExtractVersion("dev")

		// then
		assert.Equal(t, entities.Version{Qualifier: "dev"}, version)
	})

	t.Run("should handle qualifier separators and part counts", func(t *testing.T) {
		t.Parallel()

		// given
		tests := []struct {
			raw      string
			expected entities.Version
		}{
			{"1.2.3-beta", entities.Version{Major: 1, Minor: 2, Patch: 3, Qualifier: "beta"}},
			{"1.2-rc1", entities.Version{Major: 1, Minor: 2, Qualifier: "rc1"}},
			{"1.rc", entities.Version{Major: 1, Qualifier: "rc"}},
			{"7a", entities.Version{Major: 7, Qualifier: "a"}},
			{"1.2.3.4", entities.Version{Major: 1, Minor: 2, Patch: 3, Qualifier: "4"}},
			{"1.2.3.post1", entities.Version{Major: 1, Minor: 2, Patch: 3, Qualifier: "post1"}},
			// parts beyond the fourth are ignored
			{"1.2.3.4.5", entities.Version{Major: 1, Minor: 2, Patch: 3, Qualifier: "4"}},
		}

		for _, tt := range tests {
			// when / then
			assert.Equal(t, tt.expected, entities.ExtractVersion(tt.raw), "input %q", tt.raw)
		}
	})

	t.Run("should halt assignment at the first non-numeric field", func(t *testing.T) {
		t.Parallel()

		// given
		tests := []struct {
			raw      string
			expected entities.Version
		}{
			{"1.x.3", entities.Version{Major: 1}},
			{"x.2", entities.Version{}},
			{"1.2.x.4", entities.Version{Major: 1, Minor: 2}},
		}

		for _, tt := range tests {
			// when / then
			assert.Equal(t, tt.expected, entities.ExtractVersion(tt.raw), "input %q", tt.raw)
		}
	})

	t.Run("should round-trip canonical versions through String", func(t *testing.T) {
		t.Parallel()

		// given
		for _, raw := range []string{"3.5.1", "0.29.0", "10.0.2"} {
			// when
			once := entities.ExtractVersion(raw)
			twice := entities.ExtractVersion(once.String())

			// then
			assert.Equal(t, once, twice, "input %q", raw)
		}
	})
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	t.Run("should render the canonical triple", func(t *testing.T) {
		t.Parallel()

		// given
		version := entities.Version{Major: 3, Minor: 5, Patch: 1}

		// when / then
		assert.Equal(t, "3.5.1", version.String())
	})

	t.Run("should append the qualifier verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		version := entities.Version{Major: 1, Minor: 2, Patch: 3, Qualifier: "rc1"}

		// when / then
		assert.Equal(t, "1.2.3rc1", version.String())
	})
}

func TestVersionComparison(t *testing.T) {
	t.Parallel()

	t.Run("should treat an equal version as at least the bound", func(t *testing.T) {
		t.Parallel()

		// given
		v := entities.Version{Major: 3, Minor: 5, Patch: 1}

		// when / then
		assert.True(t, v.AtLeast(v))
	})

	t.Run("should compare the numeric triple field by field", func(t *testing.T) {
		t.Parallel()

		// given
		v351 := entities.Version{Major: 3, Minor: 5, Patch: 1}
		v360 := entities.Version{Major: 3, Minor: 6}
		v400 := entities.Version{Major: 4}

		// when / then
		assert.True(t, v351.LessThan(v360))
		assert.True(t, v360.LessThan(v400))
		assert.False(t, v360.LessThan(v351))
		assert.True(t, v400.AtLeast(v351))
		assert.False(t, v351.AtLeast(v360))
	})

	t.Run("should break ties lexicographically on the qualifier", func(t *testing.T) {
		t.Parallel()

		// given
		plain := entities.Version{Major: 1, Minor: 2, Patch: 3}
		rc1 := entities.Version{Major: 1, Minor: 2, Patch: 3, Qualifier: "rc1"}
		rc2 := entities.Version{Major: 1, Minor: 2, Patch: 3, Qualifier: "rc2"}

		// when / then
		assert.True(t, plain.LessThan(rc1))
		assert.True(t, rc1.LessThan(rc2))
		assert.True(t, rc1.AtLeast(plain))
		assert.True(t, rc1.AtLeast(rc1))
		// equal qualifiers never satisfy a strict upper bound
		assert.False(t, rc1.LessThan(rc1))
	})

	t.Run("should include the lower bound and exclude the upper bound", func(t *testing.T) {
		t.Parallel()

		// given
		v351 := entities.Version{Major: 3, Minor: 5, Patch: 1}
		v360 := entities.Version{Major: 3, Minor: 6}

		// when / then
		assert.True(t, v351.InRange(v351, v360))
		assert.False(t, v360.InRange(v351, v360))
	})
}
