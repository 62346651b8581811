package extractor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/thriftpath/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/thriftpath/internal/adapters/jar"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/thriftpath/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/thriftpath/internal/core/ports"
)

// NodeID is the unique identifier for the extractor Graft node.
const NodeID graft.ID = "engine.extractor"

func init() {
	graft.Register(graft.Node[ports.IncludeResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			jar.NodeID,
			fs.ScannerNodeID,
			fs.HasherNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (ports.IncludeResolver, error) {
			opener, err := graft.Dep[ports.ArchiveOpener](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.SchemaScanner](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(opener, scanner, hasher, tracer), nil
		},
	})
}
