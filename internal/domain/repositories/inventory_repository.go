package repositories

import "context"

// InventoryRepository abstracts an external "list installed packages"
// capability. Each returned line is an independent string of the form
// "<name> (<version>)"; acquiring the listing is the only blocking call in
// a dependency check.
type InventoryRepository interface {
	// Name returns the inventory identifier (e.g. "pip", "file").
	Name() string

	// ListInstalled returns the raw listing lines, one per installed package.
	ListInstalled(ctx context.Context) ([]string, error)
}
