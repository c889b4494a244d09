package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rios0rios0/depgate/internal/domain/repositories"
)

const (
	runtimeName      = "python"
	pyVersionTimeout = 15 * time.Second
)

// PythonRuntimeRepository implements repositories.RuntimeRepository by
// running `python --version` and returning the raw first line
// (e.g. "Python 3.5.1").
type PythonRuntimeRepository struct {
	// Binary overrides the probed python binary when non-empty.
	Binary string
}

// NewPythonRuntimeRepository creates a new Python runtime repository.
func NewPythonRuntimeRepository() repositories.RuntimeRepository {
	return &PythonRuntimeRepository{}
}

func (r *PythonRuntimeRepository) Name() string { return runtimeName }

// Version runs the interpreter with --version and returns the first output
// line. Old interpreters print the version to stderr, so both streams are
// captured.
func (r *PythonRuntimeRepository) Version(ctx context.Context) (string, error) {
	binary := r.Binary
	if binary == "" {
		var err error
		binary, err = findPythonBinary()
		if err != nil {
			return "", fmt.Errorf("python binary not found: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, pyVersionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to run %s --version: %w", binary, err)
	}

	return firstLine(string(output)), nil
}

// firstLine returns the first non-empty, trimmed line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func findPythonBinary() (string, error) {
	// Try python3 first, then python
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	commonPaths := []string{
		"/usr/bin/python3",
		"/usr/local/bin/python3",
		"/usr/bin/python",
		"/usr/local/bin/python",
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		commonPaths = append(commonPaths,
			filepath.Join(home, ".pyenv", "shims", "python3"),
			filepath.Join(home, ".pyenv", "shims", "python"),
		)
	}

	for _, p := range commonPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return p, nil
		}
	}

	return "", errors.New("python binary not found in PATH or common locations")
}
