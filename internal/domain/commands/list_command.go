package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	infraRepos "github.com/rios0rios0/depgate/internal/infrastructure/repositories"
)

// List is the interface for the inventory listing command.
type List interface {
	Execute(ctx context.Context, opts ListOptions) ([]string, error)
}

// ListOptions holds runtime options for listing the inventory.
type ListOptions struct {
	Inventory string
	Source    string
}

// ListCommand returns the active inventory's listing, ordered by package
// name with duplicate entries ordered newest version first.
type ListCommand struct {
	inventories *infraRepos.InventoryRegistry
}

// NewListCommand creates a new ListCommand.
func NewListCommand(inventories *infraRepos.InventoryRegistry) *ListCommand {
	return &ListCommand{inventories: inventories}
}

// Execute fetches and sorts the listing.
func (it *ListCommand) Execute(ctx context.Context, opts ListOptions) ([]string, error) {
	inventory, err := it.inventories.Get(opts.Inventory, opts.Source)
	if err != nil {
		return nil, err
	}

	listing, listErr := inventory.ListInstalled(ctx)
	if listErr != nil {
		return nil, fmt.Errorf("failed to list installed packages: %w", listErr)
	}

	sortListing(listing)
	logger.Infof("[list] %d packages in %q inventory", len(listing), inventory.Name())
	return listing, nil
}

// sortListing orders lines by package name; lines for the same package are
// ordered by version descending (newest first).
func sortListing(listing []string) {
	sort.SliceStable(listing, func(i, j int) bool {
		ni, vi := splitListingLine(listing[i])
		nj, vj := splitListingLine(listing[j])
		if ni != nj {
			return ni < nj
		}
		return versionGreater(vi, vj)
	})
}

// splitListingLine separates "name (version)" into its parts; lines without
// a parenthesized version keep an empty version.
func splitListingLine(line string) (string, string) {
	name, rest, found := strings.Cut(line, " (")
	if !found {
		return line, ""
	}
	return name, strings.TrimSuffix(rest, ")")
}

// versionGreater reports v1 > v2 using semver comparison when both versions
// are valid semver, falling back to string comparison.
func versionGreater(v1, v2 string) bool {
	n1, n2 := normalizeVersion(v1), normalizeVersion(v2)
	if semver.IsValid(n1) && semver.IsValid(n2) {
		return semver.Compare(n1, n2) > 0
	}
	return v1 > v2
}

// normalizeVersion ensures the version has a 'v' prefix for semver compatibility.
func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
