//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depgate/internal/domain/commands"
	domainRepos "github.com/rios0rios0/depgate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depgate/internal/infrastructure/repositories"
	testdoubles "github.com/rios0rios0/depgate/test"
)

func newListCommand(inventory *testdoubles.StubInventoryRepository) *commands.ListCommand {
	registry := infraRepos.NewInventoryRegistry()
	registry.Register("stub", func(_ string) domainRepos.InventoryRepository {
		return inventory
	})
	return commands.NewListCommand(registry)
}

func TestListCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should sort the listing by package name", func(t *testing.T) {
		t.Parallel()

		// given
		inventory := &testdoubles.StubInventoryRepository{
			Listing: []string{"wheel (0.29.0)", "flake8 (2.5.4)", "pip (8.1.2)"},
		}
		command := newListCommand(inventory)

		// when
		listing, err := command.Execute(context.Background(), commands.ListOptions{
			Inventory: "stub",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"flake8 (2.5.4)", "pip (8.1.2)", "wheel (0.29.0)"}, listing)
	})

	t.Run("should order duplicate packages newest first", func(t *testing.T) {
		t.Parallel()

		// given
		inventory := &testdoubles.StubInventoryRepository{
			Listing: []string{"flake8 (2.5.4)", "flake8 (10.0.0)", "flake8 (3.0.0)"},
		}
		command := newListCommand(inventory)

		// when
		listing, err := command.Execute(context.Background(), commands.ListOptions{
			Inventory: "stub",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"flake8 (10.0.0)", "flake8 (3.0.0)", "flake8 (2.5.4)"}, listing)
	})

	t.Run("should fail on an unknown inventory", func(t *testing.T) {
		t.Parallel()

		// given
		command := newListCommand(&testdoubles.StubInventoryRepository{})

		// when
		_, err := command.Execute(context.Background(), commands.ListOptions{
			Inventory: "nope",
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown inventory")
	})

	t.Run("should propagate a listing failure", func(t *testing.T) {
		t.Parallel()

		// given
		inventory := &testdoubles.StubInventoryRepository{Err: errors.New("pip exploded")}
		command := newListCommand(inventory)

		// when
		_, err := command.Execute(context.Background(), commands.ListOptions{
			Inventory: "stub",
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list installed packages")
	})
}
