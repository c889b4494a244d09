package internal

import (
	"github.com/rios0rios0/depgate/internal/domain/entities"
)

// AppInternal holds the assembled application: every controller the CLI
// mounts as a subcommand.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application context from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
