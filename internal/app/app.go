// Package app implements the application layer for attest.
package app

import (
	"context"
	"io"
	"os"
	"strings"

	"go.trai.ch/attest/internal/adapters/config" //nolint:depguard // Shared repository URL validation
	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/attest/internal/engine/collector"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	collector    *collector.Collector
	encoders     ports.EncoderRegistry
	stat         domain.StatFunc
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, coll *collector.Collector, encoders ports.EncoderRegistry) *App {
	return &App{
		configLoader: loader,
		collector:    coll,
		encoders:     encoders,
		stat:         os.Stat,
	}
}

// WithStat replaces the function used to classify input paths.
func (a *App) WithStat(stat domain.StatFunc) *App {
	a.stat = stat
	return a
}

// DescribeOptions overrides the loaded configuration for a single run.
// Nil or empty fields keep the configured value.
type DescribeOptions struct {
	Format      string
	Repository  *string
	AbsentToken *string
	NoDedupe    bool
	// Refresh ignores cached Maven project resolutions and records new ones.
	Refresh bool
	Output  io.Writer
}

// Describe reads Maven coordinates from the given inputs and writes their resource
// descriptors in the requested format.
func (a *App) Describe(ctx context.Context, inputs []string, opts DescribeOptions) error {
	// 1. Validate inputs
	if len(inputs) == 0 {
		return domain.ErrNoInputs
	}

	// 2. Load configuration and apply overrides
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := applyOverrides(cfg, opts); err != nil {
		return err
	}

	encoder, err := a.encoders.Lookup(cfg.Format)
	if err != nil {
		return zerr.With(err, "available", strings.Join(a.encoders.Formats(), ","))
	}

	// 3. Classify inputs
	sources := make([]domain.Source, 0, len(inputs))
	for _, input := range inputs {
		src, err := domain.DetectSource(input, a.stat)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	// 4. Collect descriptors
	if opts.Refresh {
		ctx = domain.WithRefresh(ctx)
	}
	builder := domain.NewDescriptorBuilder(cfg.BuilderOptions()...)
	descriptors, err := a.collector.Collect(ctx, builder, sources, cfg.Dedupe)
	if err != nil {
		return zerr.Wrap(err, "failed to collect dependencies")
	}

	// 5. Encode
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if err := encoder.Encode(out, descriptors); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode descriptors"), "format", cfg.Format)
	}

	return nil
}

func applyOverrides(cfg *domain.Config, opts DescribeOptions) error {
	if opts.Format != "" {
		cfg.Format = opts.Format
	}

	if opts.Repository != nil {
		if err := config.ValidateRepositoryURL(*opts.Repository); err != nil {
			return err
		}
		cfg.Repository = *opts.Repository
	}

	if opts.AbsentToken != nil {
		cfg.AbsentToken = *opts.AbsentToken
	}

	if opts.NoDedupe {
		cfg.Dedupe = false
	}

	return nil
}
