package collector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/attest/internal/adapters/telemetry"
	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports/mocks"
	"go.trai.ch/attest/internal/engine/collector"
	"go.uber.org/mock/gomock"
)

func coord(g, a, v, scope string) domain.MavenCoordinate {
	return domain.MavenCoordinate{
		GroupID:    domain.Some(g),
		ArtifactID: domain.Some(a),
		Version:    domain.Some(v),
		Type:       domain.Some("jar"),
		Scope:      domain.Some(scope),
	}
}

type fixture struct {
	pom     *mocks.MockCoordinateReader
	list    *mocks.MockCoordinateReader
	project *mocks.MockCoordinateReader
	logger  *mocks.MockLogger
	c       *collector.Collector
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		pom:     mocks.NewMockCoordinateReader(ctrl),
		list:    mocks.NewMockCoordinateReader(ctrl),
		project: mocks.NewMockCoordinateReader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	f.c = collector.New(f.pom, f.list, f.project, telemetry.NewNoOp(), f.logger)
	return f
}

func TestCollector_Collect_PreservesSourceOrder(t *testing.T) {
	f := newFixture(t)

	junit := coord("junit", "junit", "4.13.2", "test")
	guava := coord("com.google.guava", "guava", "33.0.0-jre", "compile")

	f.pom.EXPECT().Read(gomock.Any(), "pom.xml").Return([]domain.MavenCoordinate{junit}, nil)
	f.list.EXPECT().Read(gomock.Any(), "deps.txt").Return([]domain.MavenCoordinate{guava}, nil)
	f.logger.EXPECT().Info("described 3 of 3 dependencies from 3 inputs")

	sources := []domain.Source{
		{Kind: domain.SourcePOM, Arg: "pom.xml"},
		{Kind: domain.SourceDependencyList, Arg: "deps.txt"},
		{Kind: domain.SourceCoordinate, Arg: "org.slf4j:slf4j-api:2.0.9"},
	}

	got, err := f.c.Collect(context.Background(), domain.NewDescriptorBuilder(), sources, true)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "junit:junit:4.13.2", got[0].Resource().Name())
	assert.Equal(t, "com.google.guava:guava:33.0.0-jre", got[1].Resource().Name())
	assert.Equal(t, "org.slf4j:slf4j-api:2.0.9", got[2].Resource().Name())
}

func TestCollector_Collect_Dedupe(t *testing.T) {
	junit := coord("junit", "junit", "4.13.2", "test")
	junitCompile := coord("junit", "junit", "4.13.2", "compile")

	tests := []struct {
		name   string
		dedupe bool
		want   int
		msg    string
	}{
		{name: "dedupe", dedupe: true, want: 2, msg: "described 2 of 3 dependencies from 2 inputs"},
		{name: "keep duplicates", dedupe: false, want: 3, msg: "described 3 of 3 dependencies from 2 inputs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.pom.EXPECT().Read(gomock.Any(), "a/pom.xml").Return([]domain.MavenCoordinate{junit, junitCompile}, nil)
			f.pom.EXPECT().Read(gomock.Any(), "b/pom.xml").Return([]domain.MavenCoordinate{junit}, nil)
			f.logger.EXPECT().Info(tt.msg)

			sources := []domain.Source{
				{Kind: domain.SourcePOM, Arg: "a/pom.xml"},
				{Kind: domain.SourcePOM, Arg: "b/pom.xml"},
			}

			got, err := f.c.Collect(context.Background(), domain.NewDescriptorBuilder(), sources, tt.dedupe)
			require.NoError(t, err)
			require.Len(t, got, tt.want)

			// Scope-distinct descriptors survive deduplication.
			first := got[0].(*domain.MavenArtifactResourceDescriptor)
			second := got[1].(*domain.MavenArtifactResourceDescriptor)
			assert.False(t, first.Equal(second))
		})
	}
}

func TestCollector_Collect_ReaderError(t *testing.T) {
	f := newFixture(t)

	readErr := errors.New("mvn exploded")
	f.project.EXPECT().Read(gomock.Any(), "service").Return(nil, readErr)

	sources := []domain.Source{{Kind: domain.SourceMavenProject, Arg: "service"}}

	got, err := f.c.Collect(context.Background(), domain.NewDescriptorBuilder(), sources, true)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "failed to read input")
}

func TestCollector_Collect_MalformedLiteral(t *testing.T) {
	f := newFixture(t)

	sources := []domain.Source{{Kind: domain.SourceCoordinate, Arg: "a:b:c:d:e:f"}}

	_, err := f.c.Collect(context.Background(), domain.NewDescriptorBuilder(), sources, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedCoordinate)
}

func TestCollector_Collect_UnknownKind(t *testing.T) {
	f := newFixture(t)

	sources := []domain.Source{{Kind: domain.SourceKind("gradle"), Arg: "build.gradle"}}

	_, err := f.c.Collect(context.Background(), domain.NewDescriptorBuilder(), sources, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSource)
}

func TestCollector_Collect_CustomBuilder(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any())

	builder := domain.NewDescriptorBuilder(
		domain.WithRepositoryURL("https://maven.example.com/releases"),
		domain.WithAbsentToken("?"),
	)
	sources := []domain.Source{{Kind: domain.SourceCoordinate, Arg: "org.example::1.0"}}

	got, err := f.c.Collect(context.Background(), builder, sources, false)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "org.example:?:1.0", got[0].Resource().Name())
	assert.False(t, got[0].Resource().URI().IsSet())
}

func TestCollector_Collect_RecordsVertexPerInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	pom := mocks.NewMockCoordinateReader(ctrl)
	list := mocks.NewMockCoordinateReader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	ok := mocks.NewMockVertex(ctrl)
	failed := mocks.NewMockVertex(ctrl)

	readErr := errors.New("boom")
	tel.EXPECT().Record(gomock.Any(), "read pom.xml").Return(context.Background(), ok)
	tel.EXPECT().Record(gomock.Any(), "read deps.txt").Return(context.Background(), failed)
	pom.EXPECT().Read(gomock.Any(), "pom.xml").
		Return([]domain.MavenCoordinate{coord("junit", "junit", "4.13.2", "test")}, nil)
	list.EXPECT().Read(gomock.Any(), "deps.txt").Return(nil, readErr)

	gomock.InOrder(
		ok.EXPECT().Log(domain.LogLevelInfo, "read 1 coordinates"),
		ok.EXPECT().Complete(nil),
	)
	failed.EXPECT().Complete(readErr)

	c := collector.New(pom, list, mocks.NewMockCoordinateReader(ctrl), tel, logger)

	_, err := c.Collect(context.Background(), domain.NewDescriptorBuilder(), []domain.Source{
		{Kind: domain.SourcePOM, Arg: "pom.xml"},
		{Kind: domain.SourceDependencyList, Arg: "deps.txt"},
	}, true)
	require.ErrorIs(t, err, readErr)
}
