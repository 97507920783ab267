package collector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attest/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/attest/internal/adapters/mvnlist"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/attest/internal/adapters/pom"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/attest/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/attest/internal/core/ports"
)

// NodeID is the unique identifier for the collector Graft node.
const NodeID graft.ID = "engine.collector"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pom.NodeID,
			mvnlist.ReaderNodeID,
			mvnlist.CachedReaderNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Collector, error) {
			pomReader, err := graft.Dep[*pom.Reader](ctx)
			if err != nil {
				return nil, err
			}

			listReader, err := graft.Dep[*mvnlist.Reader](ctx)
			if err != nil {
				return nil, err
			}

			projectReader, err := graft.Dep[*mvnlist.CachedReader](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(pomReader, listReader, projectReader, telemetry, log), nil
		},
	})
}
