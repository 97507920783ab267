package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedCoordinate is returned when a coordinate literal cannot be parsed.
	ErrMalformedCoordinate = zerr.New("malformed coordinate")

	// ErrNoInputs is returned when describe is invoked without any input.
	ErrNoInputs = zerr.New("no inputs specified")

	// ErrUnknownFormat is returned when an output format is not registered.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrUnsupportedDescriptor is returned when an encoder cannot render a descriptor kind.
	ErrUnsupportedDescriptor = zerr.New("unsupported descriptor kind")

	// ErrInvalidRepositoryURL is returned when the configured repository is not an absolute http(s) URL.
	ErrInvalidRepositoryURL = zerr.New("invalid repository url")

	// ErrUnknownSource is returned when an input argument is neither a readable path nor a coordinate.
	ErrUnknownSource = zerr.New("unknown input source")
)
