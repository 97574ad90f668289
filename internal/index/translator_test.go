package index_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opsxjacky/walkforward-folds/internal/index"
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

func TestTranslate(t *testing.T) {
	span, err := types.NewRangeIndex(100, 150, 1)
	require.NoError(t, err)
	tr := index.NewTranslator(span)

	got, err := tr.Translate(types.Range{Start: 25, End: 30})
	require.NoError(t, err)
	require.Equal(t, []int64{125, 126, 127, 128, 129}, got.Labels())

	empty, err := tr.Translate(types.Range{Start: 50, End: 50})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
}

func TestTranslateRejectsBadRanges(t *testing.T) {
	span, err := types.NewRangeIndex(0, 10, 1)
	require.NoError(t, err)
	tr := index.NewTranslator(span)

	for _, r := range []types.Range{{Start: -1, End: 3}, {Start: 5, End: 4}, {Start: 8, End: 11}} {
		_, err := tr.Translate(r)
		var re *types.RangeError
		require.True(t, errors.As(err, &re), "range %+v", r)
		require.Equal(t, 10, re.Limit)
		require.Equal(t, -1, re.Fold)
	}
}

func TestValidateNamesField(t *testing.T) {
	span, err := types.NewRangeIndex(0, 10, 1)
	require.NoError(t, err)

	err = index.NewTranslator(span).Validate(4, "test", types.Range{Start: 9, End: 12})
	require.ErrorIs(t, err, types.ErrRange)
	require.Contains(t, err.Error(), "fold 4: test [9, 12)")
}
