package mvnlist

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CoordinateReader = (*Runner)(nil)

// DefaultBinary is the Maven executable looked up on PATH.
const DefaultBinary = "mvn"

// Runner implements ports.CoordinateReader for Maven project directories by running
// the dependency plugin and parsing its output.
type Runner struct {
	binary string
	logger ports.Logger
}

// NewRunner creates a Runner that invokes binary.
func NewRunner(binary string, logger ports.Logger) *Runner {
	return &Runner{
		binary: binary,
		logger: logger,
	}
}

// Read runs `mvn dependency:list` in dir and returns the resolved coordinates.
func (r *Runner) Read(ctx context.Context, dir string) ([]domain.MavenCoordinate, error) {
	//nolint:gosec // binary is configured, arguments are fixed
	cmd := exec.CommandContext(ctx, r.binary,
		"--batch-mode",
		"dependency:list",
		"-DoutputAbsoluteArtifactFilename=false",
		"-DexcludeTransitive=false",
	)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info("running " + r.binary + " dependency:list in " + dir)
	if runErr := cmd.Run(); runErr != nil {
		err := zerr.With(zerr.Wrap(runErr, "maven dependency:list failed"), "dir", dir)
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			err = zerr.With(err, "exit_code", exitErr.ExitCode())
		}
		return nil, zerr.With(err, "stderr", stderr.String())
	}

	coords, err := Parse(&stdout)
	if err != nil {
		return nil, zerr.With(err, "dir", dir)
	}
	return coords, nil
}
