package geom

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/scenekit/scenekit-go/pkg/log"
)

// captureDiagnostics routes the default diagnostics logger to a recorder for
// the duration of the test.
func captureDiagnostics(t *testing.T) *log.Recorder {
	t.Helper()
	rec := log.NewRecorder()
	prev := log.SetDefault(rec)
	t.Cleanup(func() { log.SetDefault(prev) })
	return rec
}

func randomVec(r *rand.Rand) Vec {
	return Vec{r.Float64()*200 - 100, r.Float64()*200 - 100, r.Float64()*200 - 100}
}

// randomDirection returns a vector comfortably away from null.
func randomDirection(r *rand.Rand) Vec {
	for {
		d := randomVec(r)
		if d.SquaredNorm() > 1e-3 {
			return d
		}
	}
}

func assertVecNear(t *testing.T, got, want Vec, msg string) {
	t.Helper()
	for i := range got {
		if !scalar.EqualWithinAbsOrRel(got[i], want[i], 1e-9, 1e-9) {
			t.Errorf("%s: got %v, want %v (component %d)", msg, got, want, i)
			return
		}
	}
}
