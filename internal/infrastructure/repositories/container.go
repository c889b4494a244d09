package repositories

import (
	fileRepo "github.com/rios0rios0/depgate/internal/infrastructure/repositories/file"
	pipRepo "github.com/rios0rios0/depgate/internal/infrastructure/repositories/pip"
	runtimeRepo "github.com/rios0rios0/depgate/internal/infrastructure/repositories/runtime"
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/depgate/internal/domain/repositories"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the inventory registry with all inventory factories
	if err := container.Provide(func() *InventoryRegistry {
		reg := NewInventoryRegistry()
		reg.Register("pip", func(_ string) domainRepos.InventoryRepository {
			return pipRepo.NewPipInventoryRepository()
		})
		reg.Register("file", func(source string) domainRepos.InventoryRepository {
			return fileRepo.NewFileInventoryRepository(source)
		})
		return reg
	}); err != nil {
		return err
	}

	// Register the runtime repository
	if err := container.Provide(runtimeRepo.NewPythonRuntimeRepository); err != nil {
		return err
	}

	return nil
}
