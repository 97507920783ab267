package domain

// Config is the resolved configuration for describing dependencies.
type Config struct {
	// Repository is the base URL artifact URIs are derived from.
	Repository string

	// AbsentToken renders absent coordinate components in descriptor names.
	AbsentToken string

	// Dedupe drops structurally equal descriptors from the output.
	Dedupe bool

	// Format is the name of the output encoder.
	Format string
}

// DefaultFormat is the output format used when none is configured.
const DefaultFormat = "json"

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Repository:  DefaultRepositoryURL,
		AbsentToken: DefaultAbsentToken,
		Dedupe:      true,
		Format:      DefaultFormat,
	}
}

// BuilderOptions returns the DescriptorBuilder options for this configuration.
func (c *Config) BuilderOptions() []BuilderOption {
	return []BuilderOption{
		WithRepositoryURL(c.Repository),
		WithAbsentToken(c.AbsentToken),
	}
}
