package writhe_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/writhe/builder"
	"github.com/katalvlaran/writhe/geom"
	"github.com/katalvlaran/writhe/matrix"
	"github.com/katalvlaran/writhe/writhe"
)

const (
	// invTol is the tolerance for invariance under rigid motions and scaling.
	invTol = 1e-9

	// knotTol compares sampled knots against reference values.
	knotTol = 1e-6
)

// skew4 is the smallest non-trivial fixture: two skew crossings.
var skew4 = geom.Curve{
	{X: -1, Y: 0, Z: -1},
	{X: 1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
	{X: 0, Y: 1, Z: 1},
}

// fixtures returns generic (non-degenerate) curves for property tests.
func fixtures(t *testing.T) map[string]geom.Curve {
	t.Helper()
	tre, err := builder.Trefoil(64)
	require.NoError(t, err)
	fig, err := builder.FigureEight(60)
	require.NoError(t, err)
	base, err := builder.Trefoil(48)
	require.NoError(t, err)
	jit, err := builder.Jitter(base, 0.05, builder.WithSeed(3))
	require.NoError(t, err)

	return map[string]geom.Curve{
		"skew4":       skew4,
		"trefoil":     tre,
		"figureEight": fig,
		"jittered":    jit,
	}
}

func mustWrithe(t *testing.T, c geom.Curve, opts ...writhe.Option) float64 {
	t.Helper()
	wr, err := writhe.Writhe(c, opts...)
	require.NoError(t, err)
	require.False(t, math.IsNaN(wr) || math.IsInf(wr, 0), "writhe must be finite")

	return wr
}

// TestWrithe_Skew4 pins the four-point scenario.
func TestWrithe_Skew4(t *testing.T) {
	assert.InDelta(t, 0.366, mustWrithe(t, skew4), 1e-2)
	assert.InDelta(t, 0.36685872502980854, mustWrithe(t, skew4), 1e-12)
}

// TestWrithe_Triangle verifies the N=3 boundary: every pair is adjacent,
// so the matrix is all zeros and the writhe is exactly 0.
func TestWrithe_Triangle(t *testing.T) {
	tri := geom.Curve{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 5}, {X: 0, Y: 3, Z: -2}}

	m, err := writhe.ContributionMatrix(tri)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, 0.0, v, "(%d,%d)", i, j)
		}
	}
	assert.Equal(t, 0.0, mustWrithe(t, tri))
}

// TestWrithe_Errors checks eager validation and sentinel aliases.
func TestWrithe_Errors(t *testing.T) {
	_, err := writhe.Writhe(skew4[:2])
	assert.ErrorIs(t, err, writhe.ErrInvalidCurve)
	assert.ErrorIs(t, err, geom.ErrInvalidCurve)

	_, err = writhe.Writhe(nil)
	assert.ErrorIs(t, err, writhe.ErrInvalidCurve)

	bad := append(geom.Curve(nil), skew4...)
	bad[2].Y = math.NaN()
	_, err = writhe.Writhe(bad)
	assert.ErrorIs(t, err, writhe.ErrNonFiniteInput)

	bad[2].Y = math.Inf(-1)
	m, err := writhe.ContributionMatrix(bad)
	assert.ErrorIs(t, err, writhe.ErrNonFiniteInput)
	assert.Nil(t, m)
}

// TestWrithe_Planar: a curve with constant z has zero writhe, including
// self-intersecting star polygons.
func TestWrithe_Planar(t *testing.T) {
	poly, err := builder.RegularPolygon(12, 2, builder.WithCenter(geom.Point{X: 1, Y: 1, Z: 4}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, mustWrithe(t, poly))

	// Pentagram {5/2}: visit every second vertex of a pentagon.
	pent, err := builder.RegularPolygon(5, 1)
	require.NoError(t, err)
	star := geom.Curve{pent[0], pent[2], pent[4], pent[1], pent[3]}
	assert.Equal(t, 0.0, mustWrithe(t, star))
}

// TestWrithe_RigidMotionInvariance rotates and translates each fixture.
func TestWrithe_RigidMotionInvariance(t *testing.T) {
	for name, c := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			want := mustWrithe(t, c)

			rot, err := geom.Rotate(c, geom.Point{X: 1, Y: -2, Z: 0.3}, 2.1)
			require.NoError(t, err)
			assert.InDelta(t, want, mustWrithe(t, rot), invTol, "rotation")

			moved := geom.Translate(rot, geom.Point{X: 5, Y: -3, Z: 1})
			assert.InDelta(t, want, mustWrithe(t, moved), invTol, "rotation+translation")
		})
	}
}

// TestWrithe_ScaleInvariance scales each fixture up and down.
func TestWrithe_ScaleInvariance(t *testing.T) {
	for name, c := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			want := mustWrithe(t, c)
			for _, s := range []float64{1e-3, 0.5, 3.7, 1e3} {
				sc, err := geom.Scale(c, s)
				require.NoError(t, err)
				assert.InDelta(t, want, mustWrithe(t, sc), invTol, "s=%g", s)
			}
		})
	}
}

// TestWrithe_ExtremeScales: curves scaled to the edges of the float64 range
// keep their writhe; cross products must neither overflow to NaN nor
// underflow to zero.
func TestWrithe_ExtremeScales(t *testing.T) {
	for name, c := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			want := mustWrithe(t, c)
			require.NotZero(t, want)
			for _, s := range []float64{1e-300, 1e-110, 1e-100, 1e100, 1e150, 1e155, 1e160, 1e300} {
				sc, err := geom.Scale(c, s)
				require.NoError(t, err)
				assert.InDelta(t, want, mustWrithe(t, sc), invTol, "s=%g", s)
			}
		})
	}
}

// TestWrithe_FarFromOrigin: translation by a large offset does not change
// the writhe of a curve that is still well resolved there.
func TestWrithe_FarFromOrigin(t *testing.T) {
	c, err := geom.Scale(skew4, 1e150)
	require.NoError(t, err)
	moved := geom.Translate(c, geom.Point{X: 3e150, Y: -2e150, Z: 5e150})
	assert.InDelta(t, mustWrithe(t, skew4), mustWrithe(t, moved), invTol)
}

// TestWrithe_ReflectionNegates mirrors each axis in turn.
func TestWrithe_ReflectionNegates(t *testing.T) {
	for name, c := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			want := mustWrithe(t, c)
			for _, a := range []geom.Axis{geom.AxisX, geom.AxisY, geom.AxisZ} {
				assert.InDelta(t, -want, mustWrithe(t, geom.Reflect(c, a)), invTol, "axis %s", a)
			}
		})
	}
}

// TestWrithe_ReversalInvariant: writhe does not depend on the direction of
// traversal; reversing the point order leaves it unchanged.
func TestWrithe_ReversalInvariant(t *testing.T) {
	for name, c := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, mustWrithe(t, c), mustWrithe(t, geom.Reverse(c)), invTol)
		})
	}
}

// TestWrithe_TorusKnotChirality compares a trefoil with its mirror image.
func TestWrithe_TorusKnotChirality(t *testing.T) {
	right, err := builder.TorusKnot(2, 3, 100)
	require.NoError(t, err)
	left, err := builder.TorusKnot(2, -3, 100)
	require.NoError(t, err)

	wr := mustWrithe(t, right)
	assert.InDelta(t, 3.5122191483524, wr, knotTol)
	assert.InDelta(t, -wr, mustWrithe(t, left), invTol)
}

// TestWrithe_FigureEightSmall: the amphichiral knot has writhe near 0
// compared to the trefoil.
func TestWrithe_FigureEightSmall(t *testing.T) {
	c, err := builder.FigureEight(100)
	require.NoError(t, err)
	assert.InDelta(t, -0.08408041977961381, mustWrithe(t, c), knotTol)
}

// TestWrithe_Deterministic calls twice and across worker counts; the
// reduction order is fixed, so results must match bit-for-bit.
func TestWrithe_Deterministic(t *testing.T) {
	c := fixtures(t)["jittered"]
	first := mustWrithe(t, c)
	assert.Equal(t, first, mustWrithe(t, c), "repeat call")

	for _, k := range []int{2, 3, 7, 48, 1000} {
		assert.Equal(t, first, mustWrithe(t, c, writhe.WithWorkers(k)), "workers=%d", k)
	}
	assert.Equal(t, first, mustWrithe(t, c, writhe.WithParallel()), "WithParallel")
}

// TestWrithe_NaiveSummationClose: the naive reduction differs only by rounding.
func TestWrithe_NaiveSummationClose(t *testing.T) {
	c := fixtures(t)["trefoil"]
	comp := mustWrithe(t, c)
	naive := mustWrithe(t, c, writhe.WithSummation(matrix.SumNaive))
	assert.InDelta(t, comp, naive, 1e-12)
}

// TestWrithe_DoesNotMutate ensures the caller's curve is read-only.
func TestWrithe_DoesNotMutate(t *testing.T) {
	c := fixtures(t)["trefoil"]
	orig := append(geom.Curve(nil), c...)
	_ = mustWrithe(t, c, writhe.WithWorkers(4))
	if d := cmp.Diff(orig, c); d != "" {
		t.Errorf("curve mutated (-before +after):\n%s", d)
	}
}

// TestContributionMatrix_Structure checks exclusions, symmetry and that the
// matrix reduces to Writhe.
func TestContributionMatrix_Structure(t *testing.T) {
	c := fixtures(t)["jittered"]
	n := len(c)

	m, err := writhe.ContributionMatrix(c, writhe.WithWorkers(5))
	require.NoError(t, err)
	require.Equal(t, n, m.Rows())
	require.Equal(t, n, m.Cols())

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if writhe.Excluded(n, i, j) {
				assert.Equal(t, 0.0, v, "excluded (%d,%d)", i, j)
				continue
			}
			vt, _ := m.At(j, i)
			assert.InDelta(t, v, vt, 1e-12, "symmetry (%d,%d)", i, j)
		}
	}

	wr, err := writhe.Accumulate(m, matrix.SumCompensated)
	require.NoError(t, err)
	assert.Equal(t, mustWrithe(t, c), wr)
}

// TestContributionMatrix_Skew4 pins individual entries of the 4×4 matrix.
func TestContributionMatrix_Skew4(t *testing.T) {
	m, err := writhe.ContributionMatrix(skew4)
	require.NoError(t, err)

	want := [][]float64{
		{0, 0, -0.6980723140080731, 0},
		{0, 0, 0, 3.003113664926002},
		{-0.6980723140080731, 0, 0, 0},
		{0, 3.003113664926002, 0, 0},
	}
	for i := range want {
		for j := range want[i] {
			v, _ := m.At(i, j)
			assert.InDelta(t, want[i][j], v, 1e-12, "(%d,%d)", i, j)
		}
	}
}
