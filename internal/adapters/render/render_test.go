package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/attest/internal/adapters/render"
	"go.trai.ch/attest/internal/core/domain"
)

func descriptors() []domain.Descriptor {
	return []domain.Descriptor{
		domain.NewMavenArtifactResourceDescriptor(domain.MavenCoordinate{
			GroupID:    domain.Some("org.apache.commons"),
			ArtifactID: domain.Some("commons-lang3"),
			Version:    domain.Some("3.12.0"),
			Type:       domain.Some("jar"),
			Scope:      domain.Some("compile"),
		}),
		domain.NewMavenArtifactResourceDescriptor(domain.MavenCoordinate{
			ArtifactID: domain.Some("orphan"),
			Version:    domain.Some("1.0"),
		}),
	}
}

func TestRegistry(t *testing.T) {
	r := render.NewRegistry()
	assert.Equal(t, []string{"intoto", "json", "purl"}, r.Formats())

	enc, err := r.Lookup(render.FormatJSON)
	require.NoError(t, err)
	assert.IsType(t, &render.JSONEncoder{}, enc)

	_, err = r.Lookup("cyclonedx")
	assert.True(t, errors.Is(err, domain.ErrUnknownFormat))
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewJSONEncoder().Encode(&buf, descriptors()))

	expected := `[
  {
    "name": "org.apache.commons:commons-lang3:3.12.0",
    "uri": "https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0",
    "annotations": {
      "type": "jar",
      "scope": "compile"
    }
  },
  {
    "name": "null:orphan:1.0"
  }
]
`
	assert.Equal(t, expected, buf.String())
}

func TestJSONEncoder_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewJSONEncoder().Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestInTotoEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewInTotoEncoder().Encode(&buf, descriptors()))

	var out struct {
		ResolvedDependencies []struct {
			Name        string            `json:"name"`
			URI         string            `json:"uri"`
			Annotations map[string]string `json:"annotations"`
		} `json:"resolvedDependencies"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.ResolvedDependencies, 2)

	first := out.ResolvedDependencies[0]
	assert.Equal(t, "org.apache.commons:commons-lang3:3.12.0", first.Name)
	assert.Equal(t, "https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0", first.URI)
	assert.Equal(t, map[string]string{"type": "jar", "scope": "compile"}, first.Annotations)

	second := out.ResolvedDependencies[1]
	assert.Equal(t, "null:orphan:1.0", second.Name)
	assert.Empty(t, second.URI)
	assert.Nil(t, second.Annotations)
}

func TestInTotoEncoder_Output(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewInTotoEncoder().Encode(&buf, descriptors()))

	expected := `{
  "resolvedDependencies": [
    {
      "name": "org.apache.commons:commons-lang3:3.12.0",
      "uri": "https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0",
      "annotations": {
        "type": "jar",
        "scope": "compile"
      }
    },
    {
      "name": "null:orphan:1.0"
    }
  ]
}
`
	assert.Equal(t, expected, buf.String())
}

func TestInTotoEncoder_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, render.NewInTotoEncoder().Encode(&first, descriptors()))
	require.NoError(t, render.NewInTotoEncoder().Encode(&second, descriptors()))
	assert.Equal(t, first.String(), second.String())
}

func TestToResourceDescriptor(t *testing.T) {
	rd, err := render.ToResourceDescriptor(descriptors()[0].Resource())
	require.NoError(t, err)

	assert.Equal(t, "org.apache.commons:commons-lang3:3.12.0", rd.GetName())
	assert.Equal(t, "https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0", rd.GetUri())
	assert.Equal(t, "compile", rd.GetAnnotations().GetFields()["scope"].GetStringValue())
	assert.Empty(t, rd.GetDigest())
}

func TestPURLEncoder(t *testing.T) {
	list := []domain.Descriptor{
		descriptors()[0],
		domain.NewMavenArtifactResourceDescriptor(domain.MavenCoordinate{
			GroupID:    domain.Some("com.example"),
			ArtifactID: domain.Some("bom"),
			Version:    domain.Some("2.0"),
			Type:       domain.Some("pom"),
		}),
	}

	var buf bytes.Buffer
	require.NoError(t, render.NewPURLEncoder().Encode(&buf, list))
	assert.Equal(t,
		"pkg:maven/org.apache.commons/commons-lang3@3.12.0\n"+
			"pkg:maven/com.example/bom@2.0?type=pom\n",
		buf.String())
}

func TestPURLEncoder_Errors(t *testing.T) {
	t.Run("missing artifact id", func(t *testing.T) {
		d := domain.NewMavenArtifactResourceDescriptor(domain.MavenCoordinate{GroupID: domain.Some("g")})
		err := render.NewPURLEncoder().Encode(&bytes.Buffer{}, []domain.Descriptor{d})
		assert.True(t, errors.Is(err, domain.ErrMalformedCoordinate))
	})

	t.Run("missing group id", func(t *testing.T) {
		err := render.NewPURLEncoder().Encode(&bytes.Buffer{}, descriptors()[1:])
		assert.True(t, errors.Is(err, domain.ErrMalformedCoordinate))
	})

	t.Run("blank group id", func(t *testing.T) {
		_, err := render.PackageURL(domain.MavenCoordinate{
			GroupID:    domain.Some("  "),
			ArtifactID: domain.Some("orphan"),
			Version:    domain.Some("1.0"),
		})
		assert.True(t, errors.Is(err, domain.ErrMalformedCoordinate))
	})

	t.Run("non maven descriptor", func(t *testing.T) {
		d := domain.NewGenericResourceDescriptor(domain.NewResourceDescriptor("file.txt", domain.None(), domain.Annotations{}))
		err := render.NewPURLEncoder().Encode(&bytes.Buffer{}, []domain.Descriptor{d})
		assert.True(t, errors.Is(err, domain.ErrUnsupportedDescriptor))
	})
}
