package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depgate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depgate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depgate/internal/infrastructure/repositories"
)

// Check is the interface for the dependency check command.
type Check interface {
	Execute(ctx context.Context, opts CheckOptions) ([]entities.Verdict, error)
}

// CheckOptions holds runtime options for a dependency check.
type CheckOptions struct {
	// Specs are the package requirements gated against the inventory listing.
	Specs []entities.DependencySpec
	// Runtime optionally gates the language runtime version; its Name is
	// only used for reporting, the version comes from the runtime repository.
	Runtime *entities.DependencySpec
	// Inventory selects the registered inventory ("pip", "file").
	Inventory string
	// Source is the inventory source argument (listing file path for "file").
	Source string
	// FailFast stops at the first failing verdict instead of collecting all.
	FailFast bool
}

// CheckCommand gates dependency versions: it asks the inventory for the raw
// listing, extracts versions, and tests each requirement's half-open range.
type CheckCommand struct {
	inventories *infraRepos.InventoryRegistry
	runtime     domainRepos.RuntimeRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	inventories *infraRepos.InventoryRegistry,
	runtime domainRepos.RuntimeRepository,
) *CheckCommand {
	return &CheckCommand{
		inventories: inventories,
		runtime:     runtime,
	}
}

// Execute runs the runtime gate (if requested) and then every package spec
// in caller-supplied order. The returned verdicts cover everything that was
// evaluated; the error is non-nil when any verdict failed. Listing
// acquisition failures abort the check before any package verdict is made.
func (it *CheckCommand) Execute(
	ctx context.Context,
	opts CheckOptions,
) ([]entities.Verdict, error) {
	verdicts := make([]entities.Verdict, 0, len(opts.Specs)+1)

	if opts.Runtime != nil {
		verdict := it.checkRuntime(ctx, *opts.Runtime)
		verdicts = append(verdicts, verdict)
		reportVerdict(verdict, *opts.Runtime)
		if !verdict.Passed() && opts.FailFast {
			return verdicts, verdictError(verdict, *opts.Runtime)
		}
	}

	if len(opts.Specs) > 0 {
		packageVerdicts, err := it.checkPackages(ctx, opts)
		verdicts = append(verdicts, packageVerdicts...)
		if err != nil {
			return verdicts, err
		}
	}

	return verdicts, firstFailure(verdicts, opts)
}

// checkPackages acquires the listing once and gates every spec against it.
func (it *CheckCommand) checkPackages(
	ctx context.Context,
	opts CheckOptions,
) ([]entities.Verdict, error) {
	inventory, err := it.inventories.Get(opts.Inventory, opts.Source)
	if err != nil {
		return nil, err
	}

	listing, listErr := inventory.ListInstalled(ctx)
	if listErr != nil {
		return nil, fmt.Errorf("failed to list installed packages: %w", listErr)
	}
	logger.Debugf("[check] %d listing lines from %q inventory", len(listing), inventory.Name())

	verdicts := make([]entities.Verdict, 0, len(opts.Specs))
	for _, spec := range opts.Specs {
		verdict := entities.CheckDependency(spec, listing)
		verdicts = append(verdicts, verdict)
		reportVerdict(verdict, spec)

		if !verdict.Passed() && opts.FailFast {
			return verdicts, verdictError(verdict, spec)
		}
	}
	return verdicts, nil
}

// checkRuntime gates the runtime's --version output directly; runtime lines
// like "Python 3.5.1" never match the listing format, so they bypass the
// listing lookup entirely.
func (it *CheckCommand) checkRuntime(
	ctx context.Context,
	spec entities.DependencySpec,
) entities.Verdict {
	verdict := entities.Verdict{Name: spec.Name}

	raw, err := it.runtime.Version(ctx)
	if err != nil {
		logger.Warnf("[check] Failed to read %s version: %v", spec.Name, err)
		return verdict
	}

	verdict.Installed = true
	verdict.RawFound = raw
	verdict.FoundVersion = entities.ExtractVersion(raw)
	verdict.InRange = verdict.FoundVersion.InRange(
		entities.ExtractVersion(spec.MinVersion),
		entities.ExtractVersion(spec.MaxVersion),
	)
	return verdict
}

// firstFailure converts the collected verdicts into the command error in
// collect-all mode: the first failing verdict (in caller order) is surfaced.
func firstFailure(verdicts []entities.Verdict, opts CheckOptions) error {
	specs := opts.Specs
	if opts.Runtime != nil {
		specs = append([]entities.DependencySpec{*opts.Runtime}, specs...)
	}
	for i, verdict := range verdicts {
		if !verdict.Passed() {
			return verdictError(verdict, specs[i])
		}
	}
	return nil
}

// verdictError translates a failing verdict into the caller-facing error.
func verdictError(verdict entities.Verdict, spec entities.DependencySpec) error {
	if !verdict.Installed {
		return fmt.Errorf("dependency %q is not installed", verdict.Name)
	}
	return fmt.Errorf(
		"dependency %q version %s is outside [%s, %s)",
		verdict.Name, verdict.FoundVersion,
		entities.ExtractVersion(spec.MinVersion),
		entities.ExtractVersion(spec.MaxVersion),
	)
}

// reportVerdict logs one verdict line.
func reportVerdict(verdict entities.Verdict, spec entities.DependencySpec) {
	switch {
	case !verdict.Installed:
		logger.Errorf("[check] %s: not installed", verdict.Name)
	case !verdict.InRange:
		logger.Errorf(
			"[check] %s: found %s, required [%s, %s)",
			verdict.Name, verdict.FoundVersion, spec.MinVersion, spec.MaxVersion,
		)
	default:
		logger.Infof(
			"[check] %s: %s is within [%s, %s)",
			verdict.Name, verdict.FoundVersion, spec.MinVersion, spec.MaxVersion,
		)
	}
}
