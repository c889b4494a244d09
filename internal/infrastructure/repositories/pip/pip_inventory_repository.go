package pip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depgate/internal/domain/repositories"
)

const (
	inventoryName  = "pip"
	pipListTimeout = 30 * time.Second
)

// PipInventoryRepository implements repositories.InventoryRepository by
// shelling out to `pip list` and normalizing its output into legacy
// "name (version)" listing lines.
type PipInventoryRepository struct{}

// NewPipInventoryRepository creates a new pip inventory.
func NewPipInventoryRepository() repositories.InventoryRepository {
	return &PipInventoryRepository{}
}

func (r *PipInventoryRepository) Name() string { return inventoryName }

// ListInstalled runs `pip list` (falling back to `python -m pip list`) and
// returns one "name (version)" line per installed package.
func (r *PipInventoryRepository) ListInstalled(ctx context.Context) ([]string, error) {
	binary, args, err := findPipCommand()
	if err != nil {
		return nil, fmt.Errorf("pip not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, pipListTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s %s: %w", binary, strings.Join(args, " "), err)
	}

	lines := normalizeListing(string(output))
	logger.Debugf("[pip] Listed %d installed packages", len(lines))
	return lines, nil
}

// normalizeListing converts pip output into legacy "name (version)" lines.
// Three shapes occur in the wild and all are accepted:
//
//	flake8 (2.5.4)        legacy format (pip < 18)
//	flake8     2.5.4      columns format, with a "Package Version" header
//	flake8==2.5.4         freeze format
func normalizeListing(output string) []string {
	var result []string
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isColumnsHeader(line) {
			continue
		}

		if name, version, found := strings.Cut(line, "=="); found {
			result = append(result, name+" ("+version+")")
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if strings.HasPrefix(fields[1], "(") {
			// Already legacy format; re-join to collapse extra whitespace.
			result = append(result, fields[0]+" "+fields[1])
			continue
		}
		result = append(result, fields[0]+" ("+fields[1]+")")
	}
	return result
}

// isColumnsHeader recognizes the header and separator rows of the columns
// format ("Package Version" / "------- -------").
func isColumnsHeader(line string) bool {
	fields := strings.Fields(line)
	if len(fields) >= 2 && fields[0] == "Package" && fields[1] == "Version" {
		return true
	}
	return strings.Trim(line, "- ") == ""
}

// findPipCommand locates a way to invoke pip: a pip binary on PATH first,
// then `python -m pip`, then common install locations.
func findPipCommand() (string, []string, error) {
	for _, name := range []string{"pip3", "pip"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, []string{"list"}, nil
		}
	}

	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, []string{"-m", "pip", "list"}, nil
		}
	}

	commonPaths := []string{
		"/usr/bin/pip3",
		"/usr/local/bin/pip3",
		"/usr/bin/pip",
		"/usr/local/bin/pip",
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		commonPaths = append(commonPaths,
			filepath.Join(home, ".pyenv", "shims", "pip3"),
			filepath.Join(home, ".pyenv", "shims", "pip"),
		)
	}

	for _, p := range commonPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return p, []string{"list"}, nil
		}
	}

	return "", nil, errors.New("pip binary not found in PATH or common locations")
}
