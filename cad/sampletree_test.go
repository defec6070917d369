package cad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/real-cad/cad/interval"
	"github.com/real-cad/cad/ralg"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/univariate"
)

func sqrt2Sample(t *testing.T) ralg.Number {
	t.Helper()
	p, err := univariate.NewRationalPolynomial([]rational.Rational{r(-2), r(0), r(1)})
	require.NoError(t, err)
	n, err := ralg.FromIsolation(p, interval.New(r(1), r(2)))
	require.NoError(t, err)
	require.False(t, n.IsNumeric())
	return n
}

// TestSampleListFIFOViews walks every view over an alternating
// root/non-root insertion sequence: each view must replay the insertion
// order restricted to its own bucket, skipping popped entries.
func TestSampleListFIFOViews(t *testing.T) {
	list := &SampleList{}
	inserts := []struct {
		v      int64
		isRoot bool
	}{
		{1, true}, {2, false}, {3, true}, {4, false}, {5, true},
	}
	for _, in := range inserts {
		require.NoError(t, list.Insert(ralg.FromRational(r(in.v)), in.isRoot))
	}

	expectNumeric := func(got ralg.Number, want int64) {
		t.Helper()
		v, ok := got.RationalValue()
		require.True(t, ok)
		assert.True(t, v.Equal(r(want)), "got %s want %d", v, want)
	}

	v, isRoot, ok := list.NextRoot()
	require.True(t, ok)
	assert.True(t, isRoot)
	expectNumeric(v, 1)

	v, isRoot, ok = list.NextNonroot()
	require.True(t, ok)
	assert.False(t, isRoot)
	expectNumeric(v, 2)

	v, _, ok = list.NextNumeric()
	require.True(t, ok)
	expectNumeric(v, 1)

	v, _, ok = list.Next()
	require.True(t, ok)
	expectNumeric(v, 1)

	// popping through one view must advance every other view past the
	// removed entry.
	require.NoError(t, list.popEqual(ralg.FromRational(r(1))))

	v, _, ok = list.NextRoot()
	require.True(t, ok)
	expectNumeric(v, 3)
	v, _, ok = list.NextNumeric()
	require.True(t, ok)
	expectNumeric(v, 2)
	v, _, ok = list.Next()
	require.True(t, ok)
	expectNumeric(v, 2)

	require.NoError(t, list.popEqual(ralg.FromRational(r(2))))
	v, _, ok = list.NextNonroot()
	require.True(t, ok)
	expectNumeric(v, 4)
	v, _, ok = list.Next()
	require.True(t, ok)
	expectNumeric(v, 3)
}

func TestSampleListIntervalViewAndSimplify(t *testing.T) {
	list := &SampleList{}
	require.NoError(t, list.Insert(ralg.FromRational(r(7)), false))
	require.NoError(t, list.Insert(sqrt2Sample(t), true))

	assert.False(t, list.EmptyNumeric())
	assert.False(t, list.EmptyInterval())

	v, isRoot, ok := list.NextInterval()
	require.True(t, ok)
	assert.True(t, isRoot)
	assert.False(t, v.IsNumeric())

	// one refinement step per entry; the numeric entry is untouched and
	// the interval entry stays the same number, only narrower.
	list.Simplify()
	v2, _, ok := list.NextInterval()
	if ok {
		eq, err := v.Equal(v2)
		require.NoError(t, err)
		assert.True(t, eq)
	}
}

func TestSampleListInsertPromotesExistingEntry(t *testing.T) {
	list := &SampleList{}
	require.NoError(t, list.Insert(ralg.FromRational(r(2)), false))
	require.True(t, list.EmptyRoot())

	// re-inserting the same value as a root must promote in place, not
	// duplicate.
	require.NoError(t, list.Insert(ralg.FromRational(r(2)), true))
	assert.Equal(t, 1, list.Len())
	assert.False(t, list.EmptyRoot())

	v, isRoot, ok := list.NextRoot()
	require.True(t, ok)
	assert.True(t, isRoot)
	rv, _ := v.RationalValue()
	assert.True(t, rv.Equal(r(2)))
}
