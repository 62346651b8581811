package ports

// Hasher defines the interface for computing digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// PathDigest returns a short stable digest of a path string.
	PathDigest(path string) string
	// Fingerprint computes a digest of a staging root and the on-disk state of its classpath entries.
	Fingerprint(stagingRoot string, entries []string) (string, error)
}
