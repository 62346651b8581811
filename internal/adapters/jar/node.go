package jar

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/thriftpath/internal/core/ports"
)

// NodeID is the unique identifier for the archive opener Graft node.
const NodeID graft.ID = "adapter.jar"

func init() {
	graft.Register(graft.Node[ports.ArchiveOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveOpener, error) {
			return NewOpener(), nil
		},
	})
}
