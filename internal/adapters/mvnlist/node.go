package mvnlist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/attest/internal/adapters/cas"    //nolint:depguard // Wired in adapter layer
	"go.trai.ch/attest/internal/adapters/fs"     //nolint:depguard // Wired in adapter layer
	"go.trai.ch/attest/internal/adapters/logger" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/attest/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the dependency list reader Graft node.
	ReaderNodeID graft.ID = "adapter.mvnlist_reader"
	// RunnerNodeID is the unique identifier for the Maven runner Graft node.
	RunnerNodeID graft.ID = "adapter.mvnlist_runner"
	// CachedReaderNodeID is the unique identifier for the cached Maven project reader Graft node.
	CachedReaderNodeID graft.ID = "adapter.mvnlist_cached_reader"
)

func init() {
	graft.Register(graft.Node[*Reader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Reader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[*Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(DefaultBinary, log), nil
		},
	})

	graft.Register(graft.Node[*CachedReader]{
		ID:        CachedReaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			RunnerNodeID,
			cas.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*CachedReader, error) {
			runner, err := graft.Dep[*Runner](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ResolutionStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.ProjectHasher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewCachedReader(runner, store, hasher, log), nil
		},
	})
}
