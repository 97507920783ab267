package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/attest/internal/core/domain"
)

func TestDescriptorSet_Dedupe(t *testing.T) {
	set := domain.NewDescriptorSet()

	guava := domain.NewMavenArtifactResourceDescriptor(coord("com.google.guava", "guava", "33.0.0-jre", "jar", "compile"))
	guavaTransitive := domain.NewMavenArtifactResourceDescriptor(coord("com.google.guava", "guava", "33.0.0-jre", "jar", "compile"))
	guavaTest := domain.NewMavenArtifactResourceDescriptor(coord("com.google.guava", "guava", "33.0.0-jre", "jar", "test"))
	junit := domain.NewMavenArtifactResourceDescriptor(coord("junit", "junit", "4.13.2", "jar", "test"))

	assert.True(t, set.Add(guava))
	assert.False(t, set.Add(guavaTransitive))
	assert.True(t, set.Add(guavaTest))
	assert.True(t, set.Add(junit))

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(guavaTransitive))

	var names []string
	for d := range set.All() {
		names = append(names, d.Resource().Name())
	}
	assert.Equal(t, []string{
		"com.google.guava:guava:33.0.0-jre",
		"com.google.guava:guava:33.0.0-jre",
		"junit:junit:4.13.2",
	}, names)
	assert.Same(t, guava, set.Slice()[0])
}

func TestDescriptorSet_Heterogeneous(t *testing.T) {
	set := domain.NewDescriptorSet()

	maven := domain.NewMavenArtifactResourceDescriptor(coord("com.foo", "bar", "1.0", "jar", "compile"))
	generic := domain.NewGenericResourceDescriptor(maven.Resource())

	assert.True(t, set.Add(maven))
	assert.True(t, set.Add(generic))
	assert.False(t, set.Add(domain.NewGenericResourceDescriptor(maven.Resource())))
	assert.Equal(t, 2, set.Len())
}
