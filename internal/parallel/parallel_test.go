package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor2D(t *testing.T) {
	cfg := DefaultConfig()

	n0, n1 := 4, 8
	results := make([][]bool, n0)
	for i := range results {
		results[i] = make([]bool, n1)
	}

	For2D(n0, n1, func(i0, i1 int) {
		results[i0][i1] = true
	}, cfg)

	for i0 := 0; i0 < n0; i0++ {
		for i1 := 0; i1 < n1; i1++ {
			if !results[i0][i1] {
				t.Errorf("Missing result at [%d][%d]", i0, i1)
			}
		}
	}
}

func TestFor3D(t *testing.T) {
	cfg := DefaultConfig()

	n0, n1, n2 := 3, 4, 5
	var count int64
	var sum int64

	For3D(n0, n1, n2, func(i0, i1, i2 int) {
		atomic.AddInt64(&count, 1)
		atomic.AddInt64(&sum, int64((i0*n1+i1)*n2+i2))
	}, cfg)

	total := int64(n0 * n1 * n2)
	if count != total {
		t.Errorf("Expected %d visits, got %d", total, count)
	}
	// Sum over a full flattened range: total*(total-1)/2.
	if want := total * (total - 1) / 2; sum != want {
		t.Errorf("Expected index sum %d, got %d", want, sum)
	}
}

func TestFor5D_EachTupleOnce(t *testing.T) {
	cfg := DefaultConfig()

	dims := [5]int{2, 3, 2, 3, 4}
	seen := make([]int32, dims[0]*dims[1]*dims[2]*dims[3]*dims[4])

	For5D(dims[0], dims[1], dims[2], dims[3], dims[4],
		func(i0, i1, i2, i3, i4 int) {
			k := (((i0*dims[1]+i1)*dims[2]+i2)*dims[3]+i3)*dims[4] + i4
			atomic.AddInt32(&seen[k], 1)
		}, cfg)

	for k, c := range seen {
		if c != 1 {
			t.Errorf("Tuple %d visited %d times, want exactly once", k, c)
		}
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}

func BenchmarkFor5D(b *testing.B) {
	cfg := DefaultConfig()

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For5D(2, 16, 3, 8, 8, func(g, ic, d, h, w int) {
				atomic.AddInt64(&sum, int64(w))
			}, cfg)
		}
	})
}
