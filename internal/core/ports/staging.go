package ports

// StagingArea is a handle on one staging root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=staging.go -destination=mocks/mock_staging.go -package=mocks
type StagingArea interface {
	// Root returns the absolute path of the staging root.
	Root() string
	// Prepare empties the staging root if it exists.
	Prepare() error
	// Remove deletes the staging root and everything in it.
	Remove() error
}

// StagingProvider hands out staging areas for a configured root.
type StagingProvider interface {
	// Area returns a handle for the staging root at path.
	Area(path string) (StagingArea, error)
}
