package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstantDeterministic(t *testing.T) {
	a := Instant(1_000_000, []float64{1.5, 2.5})
	b := Instant(1_000_000, []float64{1.5, 2.5})
	require.Equal(t, a, b)

	require.NotEqual(t, a, Instant(2_000_000, []float64{1.5, 2.5}))
	require.NotEqual(t, a, Instant(1_000_000, []float64{1.5, 2.6}))
}

func TestCombineOrderSensitive(t *testing.T) {
	h1 := Instant(0, []float64{1})
	h2 := Instant(1, []float64{2})

	forward := Combine(Combine(Seed(0), h1), h2)
	reversed := Combine(Combine(Seed(0), h2), h1)
	require.NotEqual(t, forward, reversed)
}

func TestSeedVariesByFlags(t *testing.T) {
	require.NotEqual(t, Seed(0x01), Seed(0x02))
	require.NotEqual(t, Seed(0x00), Seed(0x04))
}

func BenchmarkInstant(b *testing.B) {
	coords := []float64{1.5, 2.5, 3.5}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Instant(int64(i), coords)
	}
}
