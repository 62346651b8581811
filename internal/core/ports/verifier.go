package ports

// Verifier defines the interface for verifying that recorded outputs are still on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyDirs checks if all given directories exist.
	VerifyDirs(dirs []string) (bool, error)
	// VerifyFiles checks if all given regular files exist.
	VerifyFiles(files []string) (bool, error)
}
