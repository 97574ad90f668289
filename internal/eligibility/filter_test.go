package eligibility_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opsxjacky/walkforward-folds/internal/eligibility"
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

func panel(t *testing.T) *types.Panel {
	t.Helper()
	nan := math.NaN()
	span, err := types.NewRangeIndex(0, 6, 1)
	require.NoError(t, err)
	p, err := types.NewPanel(span,
		[]string{"b", "a", "c", "d"},
		[][]float64{
			{nan, nan, 1, 2, 3, 4},       // 早期缺失
			{0, 1, 2, 3, 4, 5},           // 完整
			{0, 1, 2, nan, 4, 5},         // 窗口内缺失一个
			{nan, nan, nan, nan, nan, 5}, // 窗口内只有一个观测
		})
	require.NoError(t, err)
	return p
}

func TestCompleteWindow(t *testing.T) {
	p := panel(t)
	f, err := eligibility.NewFilter("")
	require.NoError(t, err)
	require.Equal(t, types.PolicyCompleteWindow, f.Policy())

	inc, exc := f.Eligible(p, types.Range{Start: 2, End: 6})
	require.Equal(t, []string{"b", "a"}, eligibility.Names(p, inc))
	require.Equal(t, []string{"c", "d"}, eligibility.Names(p, exc))

	inc, _ = f.Eligible(p, types.Range{Start: 4, End: 6})
	require.Equal(t, []string{"b", "a", "c"}, eligibility.Names(p, inc))
}

func TestAnyObserved(t *testing.T) {
	p := panel(t)
	f, err := eligibility.NewFilter(types.PolicyAnyObserved)
	require.NoError(t, err)

	inc, exc := f.Eligible(p, types.Range{Start: 2, End: 6})
	require.Equal(t, []string{"b", "a", "c", "d"}, eligibility.Names(p, inc))
	require.Empty(t, exc)

	inc, exc = f.Eligible(p, types.Range{Start: 0, End: 2})
	require.Equal(t, []string{"a", "c"}, eligibility.Names(p, inc))
	require.Equal(t, []string{"b", "d"}, eligibility.Names(p, exc))
}

func TestUnknownPolicy(t *testing.T) {
	_, err := eligibility.NewFilter("loose")
	require.Error(t, err)
}
