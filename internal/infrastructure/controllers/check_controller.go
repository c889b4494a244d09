package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depgate/config"
	"github.com/rios0rios0/depgate/internal/domain/commands"
	"github.com/rios0rios0/depgate/internal/domain/entities"
	"github.com/rios0rios0/depgate/internal/policy"
)

const argsPerSpec = 3 // name min max

// CheckController handles the "check" subcommand (the dependency gate).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [name min max]",
		Short: "Check installed dependency versions against required ranges",
		Long: `Check that each required dependency is installed with a version inside
its half-open range [min, max).

Requirements come from the config file, an HCL policy file, or a single
"name min max" argument triple. The check stops at the first failure
unless --all is given.`,
	}
}

// AddFlags registers check-specific flags.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("all", false,
		"Collect all verdicts instead of stopping at the first failure")
	cmd.Flags().String("policy", "",
		"Path to an HCL policy file with dependency blocks")
}

// Execute runs the dependency gate.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	all, _ := cmd.Flags().GetBool("all")
	opts := commands.CheckOptions{FailFast: !all}

	if len(args) == argsPerSpec {
		opts.Specs = []entities.DependencySpec{{
			Name:       args[0],
			MinVersion: args[1],
			MaxVersion: args[2],
		}}
		it.applyFlags(cmd, &opts)
	} else if !it.loadRequirements(cmd, &opts) {
		return
	}

	if len(opts.Specs) == 0 && opts.Runtime == nil {
		logger.Error("No requirements to check; configure some or pass a name/min/max triple")
		return
	}

	verdicts, err := it.command.Execute(ctx, opts)
	if err != nil {
		logger.Fatalf("Dependency check failed: %v", err)
	}
	logger.Infof("All %d requirements satisfied", len(verdicts))
}

// loadRequirements fills the options from the config and policy files.
// Returns false when loading failed (already logged).
func (it *CheckController) loadRequirements(cmd *cobra.Command, opts *commands.CheckOptions) bool {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = config.FindConfigFile()
		if err != nil {
			logger.Errorf(
				"no config file found: %v\nSpecify one with --config or create depgate.yaml",
				err,
			)
			return false
		}
	}
	logger.Infof("Using config file: %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return false
	}

	opts.Specs = cfg.Specs()
	opts.Runtime = cfg.RuntimeSpec()
	opts.Inventory = cfg.Inventory
	opts.Source = cfg.ListingFile

	policyPath, _ := cmd.Flags().GetString("policy")
	if policyPath == "" {
		policyPath = cfg.PolicyFile
	}
	if policyPath != "" {
		policySpecs, scanErr := policy.ScanPolicyFile(policyPath)
		if scanErr != nil {
			logger.Errorf("failed to load policy file: %v", scanErr)
			return false
		}
		opts.Specs = append(opts.Specs, policySpecs...)
	}

	it.applyFlags(cmd, opts)
	return true
}

// applyFlags lets CLI flags override config-derived inventory settings.
func (it *CheckController) applyFlags(cmd *cobra.Command, opts *commands.CheckOptions) {
	if inventory, _ := cmd.Flags().GetString("inventory"); inventory != "" {
		opts.Inventory = inventory
	}
	if listingFile, _ := cmd.Flags().GetString("listing-file"); listingFile != "" {
		opts.Source = listingFile
		if opts.Inventory == "" {
			opts.Inventory = "file"
		}
	}
	if opts.Inventory == "" {
		opts.Inventory = "pip"
	}
}
