package pairkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_Symmetric(t *testing.T) {
	ids := []uint64{0, 1, 2, 9, 10, 11, 99, 100, 1 << 40, ^uint64(0)}
	for _, a := range ids {
		for _, b := range ids {
			assert.Equal(t, Canonical(a, b), Canonical(b, a), "a=%d b=%d", a, b)
		}
	}
}

func TestCanonical_InjectiveOverUnorderedPairs(t *testing.T) {
	seen := make(map[string][2]uint64)
	for a := uint64(1); a <= 40; a++ {
		for b := a + 1; b <= 40; b++ {
			k := Canonical(b, a).String()
			if prev, dup := seen[k]; dup {
				t.Fatalf("pairs %v and %v share key %s", prev, [2]uint64{a, b}, k)
			}
			seen[k] = [2]uint64{a, b}
		}
	}
	// "1:23" vs "12:3" must not collide
	assert.NotEqual(t, Canonical(1, 23).String(), Canonical(12, 3).String())
}

func TestKey_OtherAndContains(t *testing.T) {
	k := Canonical(42, 7)
	assert.Equal(t, uint64(7), k.Low)
	assert.True(t, k.Contains(42))
	assert.False(t, k.Contains(8))

	other, ok := k.Other(7)
	require.True(t, ok)
	assert.Equal(t, uint64(42), other)

	_, ok = k.Other(3)
	assert.False(t, ok)
}

func TestParse_RoundTrip(t *testing.T) {
	k, err := Parse("9:3")
	require.NoError(t, err)
	assert.Equal(t, Key{Low: 3, High: 9}, k)

	_, err = Parse("93")
	assert.Error(t, err)
	_, err = Parse("a:b")
	assert.Error(t, err)
}
