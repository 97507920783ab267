package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/attest/internal/adapters/telemetry"
	"go.trai.ch/attest/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx := context.Background()
	gotCtx, vertex := tel.Record(ctx, "read pom.xml")
	assert.Equal(t, ctx, gotCtx)
	assert.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("ignored"))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	vertex.Log(domain.LogLevelInfo, "ignored")
	vertex.Complete(errors.New("ignored"))
	assert.NoError(t, tel.Close())
}
