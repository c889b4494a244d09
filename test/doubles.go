// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations, no mock frameworks.
package testdoubles

import (
	"context"
)

// ---------------------------------------------------------------------------
// StubInventoryRepository
// ---------------------------------------------------------------------------

// StubInventoryRepository implements repositories.InventoryRepository with a
// canned listing. Configure Listing/Err, then inspect Calls to verify usage.
type StubInventoryRepository struct {
	InventoryName string
	Listing       []string
	Err           error

	// spy: number of ListInstalled calls
	Calls int
}

func (s *StubInventoryRepository) Name() string {
	if s.InventoryName == "" {
		return "stub"
	}
	return s.InventoryName
}

func (s *StubInventoryRepository) ListInstalled(_ context.Context) ([]string, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Listing, nil
}

// ---------------------------------------------------------------------------
// StubRuntimeRepository
// ---------------------------------------------------------------------------

// StubRuntimeRepository implements repositories.RuntimeRepository with a
// canned version line.
type StubRuntimeRepository struct {
	RuntimeName string
	RawVersion  string
	Err         error

	// spy: number of Version calls
	Calls int
}

func (s *StubRuntimeRepository) Name() string {
	if s.RuntimeName == "" {
		return "python"
	}
	return s.RuntimeName
}

func (s *StubRuntimeRepository) Version(_ context.Context) (string, error) {
	s.Calls++
	if s.Err != nil {
		return "", s.Err
	}
	return s.RawVersion, nil
}
