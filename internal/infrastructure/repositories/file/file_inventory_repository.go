package file

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rios0rios0/depgate/internal/domain/repositories"
)

const inventoryName = "file"

// FileInventoryRepository implements repositories.InventoryRepository by
// reading a saved listing file with one "name (version)" line per package.
// Useful for CI environments where the listing is captured once, and for
// deterministic offline checks.
type FileInventoryRepository struct {
	path string
}

// NewFileInventoryRepository creates a file inventory for the given path.
func NewFileInventoryRepository(path string) repositories.InventoryRepository {
	return &FileInventoryRepository{path: path}
}

func (r *FileInventoryRepository) Name() string { return inventoryName }

// ListInstalled reads the listing file, skipping blank lines and comments.
func (r *FileInventoryRepository) ListInstalled(_ context.Context) ([]string, error) {
	if r.path == "" {
		return nil, fmt.Errorf("no listing file configured for the %q inventory", inventoryName)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing file %q: %w", r.path, err)
	}

	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
