package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opsxjacky/walkforward-folds/internal/report"
)

// writeFixture 写入 50 行的序列与外生变量 CSV 以及折叠配置
func writeFixture(t *testing.T, extraFold string) string {
	t.Helper()
	dir := t.TempDir()

	var series, exog strings.Builder
	series.WriteString("idx,l1,l2,l3\n")
	exog.WriteString("idx,exog_1\n")
	for i := 0; i < 50; i++ {
		l2 := fmt.Sprintf("%d", 50+i)
		if i <= 28 {
			l2 = ""
		}
		fmt.Fprintf(&series, "%d,%d,%s,NaN\n", i, i, l2)
		fmt.Fprintf(&exog, "%d,%d\n", i, 1000+i)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "series.csv"), []byte(series.String()), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "exog.csv"), []byte(exog.String()), 0o644))

	cfg := fmt.Sprintf(`data:
  series: %s
  exog: %s
extraction:
  window_size: 5
folds:
  - train: [0, 30]
    last_window: [25, 30]
    test: [30, 37]
  - train: [0, 35]
    last_window: [30, 35]
    test: [35, 42]
%s`, filepath.Join(dir, "series.csv"), filepath.Join(dir, "exog.csv"), extraFold)
	path := filepath.Join(dir, "folds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := writeFixture(t, "")
	out, err := execute(t, "validate", "--config", path, "--log-level", "warn")
	require.NoError(t, err)
	require.Contains(t, out, "2 folds OK (3 series exclusions)")
}

func TestValidateReportsRangeError(t *testing.T) {
	path := writeFixture(t, "  - train: [0, 45]\n    last_window: [40, 45]\n    test: [45, 60]\n")
	_, err := execute(t, "validate", "-c", path, "--log-level", "error")
	require.ErrorContains(t, err, "fold 2: test [45, 60)")
}

func TestSummaryText(t *testing.T) {
	path := writeFixture(t, "")
	out, err := execute(t, "summary", "-c", path, "--log-level", "warn", "-w", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Fold 1")
	require.Contains(t, out, "Included:    [l1 l2]")
}

func TestSummaryJSON(t *testing.T) {
	path := writeFixture(t, "")
	out := filepath.Join(t.TempDir(), "folds.json")
	_, err := execute(t, "summary", "-c", path, "--log-level", "warn", "-f", "json", "-o", out)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var summaries []report.FoldSummary
	require.NoError(t, json.Unmarshal(raw, &summaries))
	require.Len(t, summaries, 2)
	require.Equal(t, []string{"l1"}, summaries[0].Included)
	require.True(t, summaries[1].HasExog)
}

func TestBadLogLevel(t *testing.T) {
	path := writeFixture(t, "")
	_, err := execute(t, "validate", "-c", path, "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")
}
