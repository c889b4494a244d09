package pip //nolint:testpackage // Testing unexported normalization helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeListing(t *testing.T) {
	t.Parallel()

	t.Run("should keep legacy lines unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		output := "flake8 (2.5.4)\nwheel (0.29.0)\n"

		// when
		lines := normalizeListing(output)

		// then
		assert.Equal(t, []string{"flake8 (2.5.4)", "wheel (0.29.0)"}, lines)
	})

	t.Run("should convert the columns format and drop its header", func(t *testing.T) {
		t.Parallel()

		// given
		output := "Package    Version\n---------- -------\nflake8     2.5.4\nwheel      0.29.0\n"

		// when
		lines := normalizeListing(output)

		// then
		assert.Equal(t, []string{"flake8 (2.5.4)", "wheel (0.29.0)"}, lines)
	})

	t.Run("should convert the freeze format", func(t *testing.T) {
		t.Parallel()

		// given
		output := "flake8==2.5.4\nwheel==0.29.0\n"

		// when
		lines := normalizeListing(output)

		// then
		assert.Equal(t, []string{"flake8 (2.5.4)", "wheel (0.29.0)"}, lines)
	})

	t.Run("should skip blank lines and lines without a version", func(t *testing.T) {
		t.Parallel()

		// given
		output := "\nflake8 (2.5.4)\n\norphan\n"

		// when
		lines := normalizeListing(output)

		// then
		assert.Equal(t, []string{"flake8 (2.5.4)"}, lines)
	})

	t.Run("should collapse extra whitespace in legacy lines", func(t *testing.T) {
		t.Parallel()

		// given
		output := "flake8     (2.5.4)\n"

		// when
		lines := normalizeListing(output)

		// then
		assert.Equal(t, []string{"flake8 (2.5.4)"}, lines)
	})
}

func TestIsColumnsHeader(t *testing.T) {
	t.Parallel()

	t.Run("should recognize header and separator rows", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.True(t, isColumnsHeader("Package    Version"))
		assert.True(t, isColumnsHeader("---------- -------"))
		assert.False(t, isColumnsHeader("flake8     2.5.4"))
		assert.False(t, isColumnsHeader("flake8 (2.5.4)"))
	})
}
