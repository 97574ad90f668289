package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/opsxjacky/walkforward-folds/internal/engine"
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// Bounds 标签区间的首尾标签, 空区间时为空串
type Bounds struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Rows  int    `json:"rows"`
}

// FoldSummary 单个折叠的摘要
type FoldSummary struct {
	Fold       int      `json:"fold"`
	Train      *Bounds  `json:"train,omitempty"`
	LastWindow Bounds   `json:"last_window"`
	Test       Bounds   `json:"test"`
	Included   []string `json:"included"`
	Excluded   []string `json:"excluded"`
	HasExog    bool     `json:"has_exog"`
}

// Summarize 对所有折叠生成摘要, 结果按折叠顺序排列
// workers <= 1 时顺序遍历惰性迭代器, 否则并发调用 Extract
func Summarize(ctx context.Context, ex *engine.Extractor, span *types.SpanIndex, folds []types.FoldSpec, workers int) ([]FoldSummary, error) {
	if workers <= 1 {
		summaries := make([]FoldSummary, 0, len(folds))
		it := ex.Folds(folds)
		for it.Next() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			summaries = append(summaries, summarize(it.Result(), span))
		}
		if err := it.Err(); err != nil {
			return nil, err
		}
		return summaries, nil
	}

	summaries := make([]FoldSummary, len(folds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, fold := range folds {
		i, fold := i, fold
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := ex.Extract(i, fold)
			if err != nil {
				return err
			}
			summaries[i] = summarize(res, span)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debugf("summarized %d folds with %d workers", len(folds), workers)
	return summaries, nil
}

func summarize(res *types.FoldResult, span *types.SpanIndex) FoldSummary {
	s := FoldSummary{
		Fold:       res.Fold,
		LastWindow: frameBounds(res.LastWindow),
		Test:       rangeBounds(span, res.Spec.Test),
		Included:   res.Included,
		Excluded:   res.Excluded,
		HasExog:    res.TestExog != nil,
	}
	if res.Train != nil {
		b := frameBounds(res.Train)
		s.Train = &b
	}
	return s
}

func frameBounds(f *types.Frame) Bounds {
	b := Bounds{Rows: f.Len()}
	if f.Len() > 0 {
		b.First = f.Index.Format(0)
		b.Last = f.Index.Format(f.Len() - 1)
	}
	return b
}

func rangeBounds(span *types.SpanIndex, r types.Range) Bounds {
	b := Bounds{Rows: r.Len()}
	if r.Len() > 0 {
		b.First = span.Format(r.Start)
		b.Last = span.Format(r.End - 1)
	}
	return b
}

// ExportJSON 导出摘要到JSON文件
func ExportJSON(path string, summaries []FoldSummary) error {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summaries: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Infof("Fold summaries exported to: %s", path)
	return nil
}

// Print 打印摘要
func Print(w io.Writer, summaries []FoldSummary) {
	fmt.Fprintln(w, "========== Fold Summary ==========")
	for _, s := range summaries {
		fmt.Fprintf(w, "Fold %d\n", s.Fold)
		if s.Train != nil {
			fmt.Fprintf(w, "  Train:       %s .. %s (%d rows)\n", s.Train.First, s.Train.Last, s.Train.Rows)
		} else {
			fmt.Fprintln(w, "  Train:       (externally fitted)")
		}
		fmt.Fprintf(w, "  Last window: %s .. %s (%d rows)\n", s.LastWindow.First, s.LastWindow.Last, s.LastWindow.Rows)
		fmt.Fprintf(w, "  Test:        %s .. %s (%d rows)\n", s.Test.First, s.Test.Last, s.Test.Rows)
		fmt.Fprintf(w, "  Included:    %v\n", s.Included)
		if len(s.Excluded) > 0 {
			fmt.Fprintf(w, "  Excluded:    %v\n", s.Excluded)
		}
	}
	fmt.Fprintln(w, "==================================")
}
