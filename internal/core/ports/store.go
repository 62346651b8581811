package ports

import "go.trai.ch/thriftpath/internal/core/domain"

// ResolutionStore defines the interface for storing and retrieving resolution records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResolutionStore interface {
	// Get retrieves the record for a staging root.
	// Returns nil, nil if not found.
	Get(stagingRoot string) (*domain.ResolutionRecord, error)

	// Put stores the record.
	Put(record domain.ResolutionRecord) error

	// Delete removes the record for a staging root.
	Delete(stagingRoot string) error

	// List returns all records ordered by staging root.
	List() ([]domain.ResolutionRecord, error)
}

// StoreOpener opens the resolution store kept at a state file.
type StoreOpener interface {
	OpenStore(path string) (ResolutionStore, error)
}
