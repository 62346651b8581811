package staging

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/thriftpath/internal/core/ports"
)

// NodeID is the unique identifier for the staging provider Graft node.
const NodeID graft.ID = "adapter.staging"

func init() {
	graft.Register(graft.Node[ports.StagingProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StagingProvider, error) {
			return NewProvider(), nil
		},
	})
}
