package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depgate/internal/domain/commands"
	"github.com/rios0rios0/depgate/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List the installed packages seen by the gate",
		Long: `List the installed packages from the selected inventory as
"name (version)" lines, ordered by package name.`,
	}
}

// Execute prints the inventory listing.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	inventory, _ := cmd.Flags().GetString("inventory")
	listingFile, _ := cmd.Flags().GetString("listing-file")
	if inventory == "" {
		if listingFile != "" {
			inventory = "file"
		} else {
			inventory = "pip"
		}
	}

	listing, err := it.command.Execute(ctx, commands.ListOptions{
		Inventory: inventory,
		Source:    listingFile,
	})
	if err != nil {
		logger.Errorf("Listing failed: %v", err)
		return
	}

	for _, line := range listing {
		fmt.Println(line)
	}
}
