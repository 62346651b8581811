package ports

// SchemaScanner inspects plain classpath directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type SchemaScanner interface {
	// HasSchemaFiles reports whether dir directly contains at least one schema file.
	HasSchemaFiles(dir string) (bool, error)
}
