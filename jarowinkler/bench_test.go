package jarowinkler_test

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/lvlstr/jarowinkler"
)

// randomWord builds a deterministic pseudo-random lowercase word of n runes.
func randomWord(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('a' + rng.Intn(26)))
	}
	return sb.String()
}

// BenchmarkJaro_Short measures the raw metric on name-sized inputs.
func BenchmarkJaro_Short(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = jarowinkler.Jaro("MARTHA", "MARHTA")
	}
}

// BenchmarkSimilarity_Long measures the windowed matching on 1024-rune
// inputs — the near-linear profile that justifies the higher
// ReleaseThreshold.
func BenchmarkSimilarity_Long(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	x := randomWord(rng, 1024)
	y := randomWord(rng, 1024)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = jarowinkler.Similarity(x, y)
	}
}

// BenchmarkSimilarity_GateParallel: every goroutine serializes on one
// host lock, but 512-rune calls release it while computing, so
// throughput should scale with GOMAXPROCS.
func BenchmarkSimilarity_GateParallel(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	x := randomWord(rng, 512)
	y := randomWord(rng, 512)
	var host sync.Mutex

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			host.Lock()
			_, _ = jarowinkler.Similarity(x, y, jarowinkler.WithHostLock(&host))
			host.Unlock()
		}
	})
}
