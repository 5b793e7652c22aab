package interpolate

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/tphakala/go-interpolate/geom"
)

// TestConcurrentEvaluation tests that shared interpolators give bit-identical
// results when used from many goroutines at once.
func TestConcurrentEvaluation(t *testing.T) {
	const (
		workers = 8
		samples = 257
	)

	rng := rand.New(rand.NewPCG(21, 22))
	q := make([]geom.QuatF64, 4)
	for i := range q {
		q[i] = randomUnitQuat(rng)
	}
	rotKeys := UniformKeys[float64](q...)
	vecKeys := UniformKeys[float64](
		geom.NewVec3(0.0, 0.0, 0.0),
		geom.NewVec3(1.0, 2.0, 0.5),
		geom.NewVec3(3.0, 1.0, -1.0),
		geom.NewVec3(4.0, 0.0, 2.0),
	)
	chKeys := UniformKeys[float32]([]float32{0, 1}, []float32{1, 2}, []float32{3, 1}, []float32{4, 0})

	evaluate := func() ([]geom.QuatF64, []geom.Vec3F64, [][]float32) {
		rot := Sample(samples, func(t float64) geom.QuatF64 {
			return QuatF64.CubicHermite(t, rotKeys[0], rotKeys[1], rotKeys[2], rotKeys[3])
		})
		vec := Sample(samples, func(t float64) geom.Vec3F64 {
			return Vec3F64.CubicHermite(t, vecKeys[0], vecKeys[1], vecKeys[2], vecKeys[3])
		})
		ch := Sample(samples, func(t float32) []float32 {
			return ChannelsF32.CubicHermite(t, chKeys[0], chKeys[1], chKeys[2], chKeys[3])
		})
		return rot, vec, ch
	}

	wantRot, wantVec, wantCh := evaluate()

	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rot, vec, ch := evaluate()
			for i := range samples {
				if rot[i] != wantRot[i] || vec[i] != wantVec[i] {
					errs <- "geom result mismatch"
					return
				}
				for c := range ch[i] {
					if ch[i][c] != wantCh[i][c] {
						errs <- "channel result mismatch"
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}

// BenchmarkParallelQuatHermite measures throughput of concurrent rotation evaluation.
func BenchmarkParallelQuatHermite(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 3))
	k := UniformKeys[float64](randomUnitQuat(rng), randomUnitQuat(rng), randomUnitQuat(rng), randomUnitQuat(rng))

	b.RunParallel(func(pb *testing.PB) {
		t := 0.0
		for pb.Next() {
			_ = QuatF64.CubicHermite(t, k[0], k[1], k[2], k[3])
			t += 0.001
			if t > 1 {
				t = 0
			}
		}
	})
}
