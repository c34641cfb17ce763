package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownAliasesShareCluster(t *testing.T) {
	r := MustNewResolver()

	for _, in := range []string{"T.O.", "Mississauga", "  ScarBorough  ", "Toronto, ON", "north-york", "GTA"} {
		id, ok := r.Resolve(in)
		require.True(t, ok, "expected %q to resolve", in)
		assert.Equal(t, ID("gta"), id, "input %q", in)
	}
}

func TestResolve_OtherClusters(t *testing.T) {
	r := MustNewResolver()

	id, ok := r.Resolve("Ottowa")
	require.True(t, ok)
	assert.Equal(t, ID("ottawa"), id)

	id, ok = r.Resolve("Kitchener-Waterloo")
	require.True(t, ok)
	assert.Equal(t, ID("waterloo_region"), id)
}

func TestResolve_UnknownIsOutsideServiceArea(t *testing.T) {
	r := MustNewResolver()

	for _, in := range []string{"Vancouver", "", "   ", "...", "toronto island airport"} {
		_, ok := r.Resolve(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "to", Normalize("T.O."))
	assert.Equal(t, "richmond hill", Normalize("  Richmond   Hill, Ontario "))
	assert.Equal(t, "stoney creek", Normalize("Stoney_Creek"))
}

func TestParse_RejectsAmbiguousAlias(t *testing.T) {
	_, err := Parse([]byte("clusters:\n  a: [york]\n  b: [York]\n"))
	assert.Error(t, err)
}

func TestClusters(t *testing.T) {
	assert.ElementsMatch(t, []ID{"gta", "ottawa", "hamilton", "waterloo_region"}, MustNewResolver().Clusters())
}
