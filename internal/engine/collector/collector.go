// Package collector reads coordinates from many inputs and turns them into descriptors.
package collector

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Collector reads every source concurrently and builds descriptors in source order.
type Collector struct {
	readers   map[domain.SourceKind]ports.CoordinateReader
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Collector. Readers for pom files, dependency lists and Maven project
// directories are required; coordinate literals are parsed in-process.
func New(
	pomReader ports.CoordinateReader,
	listReader ports.CoordinateReader,
	projectReader ports.CoordinateReader,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Collector {
	return &Collector{
		readers: map[domain.SourceKind]ports.CoordinateReader{
			domain.SourcePOM:            pomReader,
			domain.SourceDependencyList: listReader,
			domain.SourceMavenProject:   projectReader,
			domain.SourceCoordinate:     literalReader{},
		},
		telemetry: telemetry,
		logger:    logger,
	}
}

// Collect reads all sources and builds one descriptor per coordinate. When dedupe is set,
// structurally equal descriptors are dropped, keeping the first occurrence.
// The first read failure cancels the remaining reads.
func (c *Collector) Collect(
	ctx context.Context,
	builder *domain.DescriptorBuilder,
	sources []domain.Source,
	dedupe bool,
) ([]domain.Descriptor, error) {
	results := make([][]domain.MavenCoordinate, len(sources))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, src := range sources {
		g.Go(func() error {
			coords, err := c.read(groupCtx, src)
			if err != nil {
				return err
			}
			// Each goroutine owns its index, so no lock is needed.
			results[i] = coords
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, coords := range results {
		total += len(coords)
	}

	descriptors := make([]domain.Descriptor, 0, total)
	set := domain.NewDescriptorSet()
	for _, coords := range results {
		for _, coord := range coords {
			d := builder.Build(coord)
			if dedupe && !set.Add(d) {
				continue
			}
			descriptors = append(descriptors, d)
		}
	}

	c.logger.Info(fmt.Sprintf("described %d of %d dependencies from %d inputs",
		len(descriptors), total, len(sources)))
	return descriptors, nil
}

func (c *Collector) read(ctx context.Context, src domain.Source) ([]domain.MavenCoordinate, error) {
	reader, ok := c.readers[src.Kind]
	if !ok || reader == nil {
		return nil, zerr.With(zerr.With(domain.ErrUnknownSource, "input", src.Arg), "kind", string(src.Kind))
	}

	ctx, vertex := c.telemetry.Record(ctx, "read "+src.Arg)
	coords, err := reader.Read(ctx, src.Arg)
	if err != nil {
		vertex.Complete(err)
		return nil, zerr.With(zerr.Wrap(err, "failed to read input"), "input", src.Arg)
	}

	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("read %d coordinates", len(coords)))
	vertex.Complete(nil)
	return coords, nil
}

// literalReader parses a coordinate given directly as the source argument.
type literalReader struct{}

func (literalReader) Read(_ context.Context, arg string) ([]domain.MavenCoordinate, error) {
	coord, err := domain.ParseCoordinate(arg)
	if err != nil {
		return nil, err
	}
	return []domain.MavenCoordinate{coord}, nil
}
