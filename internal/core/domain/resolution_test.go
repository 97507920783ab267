package domain_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/attest/internal/core/domain"
)

func TestResolution_JSONKeepsAbsentAndEmptyApart(t *testing.T) {
	in := domain.Resolution{
		Project:     "/work/service",
		Fingerprint: "00000000deadbeef",
		Coordinates: []domain.MavenCoordinate{{
			GroupID:    domain.Some("org.example"),
			ArtifactID: domain.Some("lib"),
			Version:    domain.Some(""),
		}},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"project":"/work/service","fingerprint":"00000000deadbeef",`+
			`"coordinates":[{"groupId":"org.example","artifactId":"lib","version":""}]}`,
		string(data))

	var out domain.Resolution
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.Coordinates, 1)
	assert.Equal(t, in.Coordinates[0], out.Coordinates[0])
	assert.False(t, out.Coordinates[0].Type.IsSet())
}

func TestRefreshRequested(t *testing.T) {
	ctx := context.Background()
	assert.False(t, domain.RefreshRequested(ctx))
	assert.True(t, domain.RefreshRequested(domain.WithRefresh(ctx)))
}
