package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/thriftpath/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/thriftpath/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/thriftpath/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/thriftpath/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/thriftpath/internal/adapters/staging"            //nolint:depguard // Wired in app layer
	"go.trai.ch/thriftpath/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/thriftpath/internal/engine/extractor"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			staging.NodeID,
			extractor.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, tracer), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[ports.StagingProvider](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.IncludeResolver](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.StoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, provider, resolver, stores, hasher, verifier, tracer, log), nil
}
