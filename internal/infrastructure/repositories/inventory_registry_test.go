package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainRepos "github.com/rios0rios0/depgate/internal/domain/repositories"
	"github.com/rios0rios0/depgate/internal/infrastructure/repositories"
	testdoubles "github.com/rios0rios0/depgate/test"
)

func TestInventoryRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return a configured inventory for a registered name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewInventoryRegistry()
		var receivedSource string
		registry.Register("stub", func(source string) domainRepos.InventoryRepository {
			receivedSource = source
			return &testdoubles.StubInventoryRepository{}
		})

		// when
		inventory, err := registry.Get("stub", "some-source")

		// then
		require.NoError(t, err)
		assert.NotNil(t, inventory)
		assert.Equal(t, "some-source", receivedSource)
	})

	t.Run("should fail for an unregistered name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewInventoryRegistry()

		// when
		_, err := registry.Get("nope", "")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown inventory type")
	})

	t.Run("should list registered names", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewInventoryRegistry()
		registry.Register("pip", func(_ string) domainRepos.InventoryRepository { return nil })
		registry.Register("file", func(_ string) domainRepos.InventoryRepository { return nil })

		// when
		names := registry.Names()

		// then
		assert.ElementsMatch(t, []string{"pip", "file"}, names)
	})
}
