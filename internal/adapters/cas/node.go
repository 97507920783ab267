package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attest/internal/adapters/logger" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/attest/internal/core/ports"
)

// NodeID is the unique identifier for the resolution store Graft node.
const NodeID graft.ID = "adapter.resolution_store"

func init() {
	graft.Register(graft.Node[ports.ResolutionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ResolutionStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Open(DefaultPath(), log), nil
		},
	})
}
