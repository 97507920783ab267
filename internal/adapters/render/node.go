package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attest/internal/core/ports"
)

// NodeID is the unique identifier for the encoder registry Graft node.
const NodeID graft.ID = "adapter.render"

func init() {
	graft.Register(graft.Node[ports.EncoderRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EncoderRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
