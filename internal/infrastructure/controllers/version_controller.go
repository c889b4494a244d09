package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depgate/internal/domain/entities"
)

// toolVersion is the depgate release version.
const toolVersion = "0.1.0"

// VersionController handles the "version" subcommand.
type VersionController struct{}

// NewVersionController creates a new VersionController.
func NewVersionController() *VersionController {
	return &VersionController{}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the depgate version",
		Long:  "Print the depgate version.",
	}
}

// Execute prints the version.
func (it *VersionController) Execute(_ *cobra.Command, _ []string) {
	fmt.Println("depgate " + toolVersion)
}
