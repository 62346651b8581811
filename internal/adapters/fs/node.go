package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/thriftpath/internal/core/ports"
)

const (
	ScannerNodeID  graft.ID = "adapter.fs.scanner"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	graft.Register(graft.Node[ports.SchemaScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemaScanner, error) {
			return NewScanner(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
