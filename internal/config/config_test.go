package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opsxjacky/walkforward-folds/internal/config"
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

const sample = `
data:
  series: data/series.csv
  exog: data/exog.csv
extraction:
  window_size: 5
  dropna_last_window: true
  eligibility: any_observed
folds:
  - name: first
    train: [0, 30]
    last_window: [25, 30]
    test: [30, 37]
  - train: [0, 35]
    last_window: [30, 35]
    test: [35, 42]
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "data/series.csv", cfg.Data.Series)
	require.Equal(t, "data/exog.csv", cfg.Data.Exog)

	opts := cfg.ToOptions()
	require.Equal(t, types.ExtractOptions{
		WindowSize:       5,
		DropNALastWindow: true,
		Policy:           types.PolicyAnyObserved,
	}, opts)

	specs, err := cfg.ToFoldSpecs()
	require.NoError(t, err)
	require.Len(t, specs, 2)
	require.Equal(t, types.Range{Start: 0, End: 30}, specs[0].Train)
	require.Equal(t, types.Range{Start: 25, End: 30}, specs[0].LastWindow)
	require.Equal(t, types.Range{Start: 35, End: 42}, specs[1].Test)
	require.Equal(t, "first", specs[0].Payload.(config.FoldConfig).Name)

	require.Equal(t, "text", cfg.GetOutputFormat())
	require.Equal(t, "output/folds.json", cfg.GetOutputPath())
}

func TestParseErrors(t *testing.T) {
	_, err := config.Parse([]byte("folds: []\n"))
	require.ErrorContains(t, err, "data.series")

	_, err = config.Parse([]byte("data:\n  series: s.csv\n"))
	require.ErrorContains(t, err, "fold")

	_, err = config.Parse([]byte("data: [\n"))
	require.ErrorContains(t, err, "failed to parse")

	_, err = config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read")
}

func TestBadFoldBounds(t *testing.T) {
	cfg, err := config.Parse([]byte("data:\n  series: s.csv\nfolds:\n  - train: [0]\n    last_window: [0, 1]\n    test: [1, 2]\n"))
	require.NoError(t, err)
	_, err = cfg.ToFoldSpecs()
	require.ErrorContains(t, err, "fold 0: invalid train")
}
