package ports

import (
	"context"

	"go.trai.ch/thriftpath/internal/core/domain"
)

// IncludeResolver turns a classpath into Thrift include directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type IncludeResolver interface {
	// ResolveIncludeDirectories empties the staging area, stages schema files found in archives
	// and returns the include directories. jobs bounds the number of archives extracted at once.
	ResolveIncludeDirectories(
		ctx context.Context,
		area StagingArea,
		entries []string,
		jobs int,
	) (*domain.Resolution, error)
}
