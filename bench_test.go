package skipmap

import (
	"fmt"
	randv2 "math/rand/v2"
	"testing"
)

func benchKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key-%09d", i))
	}
	r := randv2.New(randv2.NewPCG(42, 0))
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

func BenchmarkInsert(b *testing.B) {
	keys := benchKeys(b.N)
	value := []byte("value")
	l := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Insert(keys[i], value)
	}
}

func BenchmarkGet(b *testing.B) {
	for _, size := range []int{1 << 10, 1 << 14, 1 << 17} {
		b.Run(fmt.Sprintf("N%d", size), func(b *testing.B) {
			keys := benchKeys(size)
			l := New()
			for _, k := range keys {
				_ = l.Insert(k, k)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = l.Get(keys[i%size])
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	const size = 1 << 14
	keys := benchKeys(size)
	l := New()
	for _, k := range keys {
		_ = l.Insert(k, k)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Contains(keys[i%size])
	}
}

// BenchmarkGetBuiltinMap is an unordered baseline for the lookup
// benchmarks above.
func BenchmarkGetBuiltinMap(b *testing.B) {
	const size = 1 << 14
	keys := benchKeys(size)
	m := make(map[string][]byte, size)
	for _, k := range keys {
		m[string(k)] = k
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[string(keys[i%size])]
	}
}
