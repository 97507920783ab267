package config

// FileName is the name of the configuration file looked up from the working directory upwards.
const FileName = "attest.yaml"

// Attestfile represents the structure of the attest.yaml configuration file.
type Attestfile struct {
	Version string    `yaml:"version"`
	Maven   MavenDTO  `yaml:"maven"`
	Output  OutputDTO `yaml:"output"`
}

// MavenDTO configures how Maven descriptors are derived.
type MavenDTO struct {
	Repository string `yaml:"repository"`
	// AbsentToken is a pointer so that an explicit empty string can be told apart from an unset key.
	AbsentToken *string `yaml:"absentToken"`
}

// OutputDTO configures how descriptors are emitted.
type OutputDTO struct {
	Format string `yaml:"format"`
	Dedupe *bool  `yaml:"dedupe"`
}
