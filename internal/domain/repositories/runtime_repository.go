package repositories

import "context"

// RuntimeRepository reports the version line of a language runtime
// (e.g. "Python 3.5.1" from `python --version`). The raw line is handed to
// version extraction unmodified.
type RuntimeRepository interface {
	// Name returns the runtime identifier (e.g. "python").
	Name() string

	// Version returns the runtime's raw version output.
	Version(ctx context.Context) (string, error)
}
