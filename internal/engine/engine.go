package engine

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/opsxjacky/walkforward-folds/internal/eligibility"
	"github.com/opsxjacky/walkforward-folds/internal/index"
	"github.com/opsxjacky/walkforward-folds/internal/slicer"
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// Extractor 折叠数据提取器
// 构造后不持有任何跨折叠状态, Extract 可并发调用
type Extractor struct {
	options    types.ExtractOptions
	series     *types.Panel
	exog       *types.Panel
	translator *index.Translator
	filter     *eligibility.Filter
	builder    *slicer.Builder
}

// New 创建提取器, exog 可为 nil
func New(series, exog *types.Panel, options types.ExtractOptions) (*Extractor, error) {
	if series == nil {
		return nil, fmt.Errorf("series panel is nil")
	}
	if options.WindowSize < 1 {
		return nil, fmt.Errorf("window size must be at least 1, got %d", options.WindowSize)
	}

	// 外生变量必须与序列共享同一索引
	if exog != nil && !exog.Index().Equal(series.Index()) {
		if exog.Len() != series.Len() {
			return nil, &types.AlignmentError{What: "exog", Want: series.Len(), Got: exog.Len()}
		}
		return nil, &types.AlignmentError{What: "exog", Reason: "index labels differ from the series index"}
	}

	filter, err := eligibility.NewFilter(options.Policy)
	if err != nil {
		return nil, err
	}
	options.Policy = filter.Policy()

	return &Extractor{
		options:    options,
		series:     series,
		exog:       exog,
		translator: index.NewTranslator(series.Index()),
		filter:     filter,
		builder:    slicer.NewBuilder(series, exog, options.DropNALastWindow, options.ExternallyFitted),
	}, nil
}

// Options 提取配置
func (e *Extractor) Options() types.ExtractOptions {
	return e.options
}

// Folds 返回惰性折叠迭代器, 每次调用都从头开始
func (e *Extractor) Folds(folds []types.FoldSpec) *FoldIterator {
	return &FoldIterator{extractor: e, folds: folds}
}

// Extract 提取单个折叠
func (e *Extractor) Extract(ordinal int, fold types.FoldSpec) (*types.FoldResult, error) {
	if err := e.validate(ordinal, fold); err != nil {
		return nil, err
	}

	included, excluded := e.filter.Eligible(e.series, fold.LastWindow)
	slices := e.builder.Build(fold, included)

	result := &types.FoldResult{
		Fold:       ordinal,
		Train:      slices.Train,
		LastWindow: slices.LastWindow,
		Included:   eligibility.Names(e.series, included),
		Excluded:   eligibility.Names(e.series, excluded),
		TrainExog:  slices.TrainExog,
		TestExog:   slices.TestExog,
		Spec:       fold,
	}

	entry := log.WithFields(log.Fields{
		"fold":        ordinal,
		"train":       fmt.Sprintf("[%d, %d)", fold.Train.Start, fold.Train.End),
		"last_window": fmt.Sprintf("[%d, %d)", fold.LastWindow.Start, fold.LastWindow.End),
		"test":        fmt.Sprintf("[%d, %d)", fold.Test.Start, fold.Test.End),
	})
	if len(result.Excluded) > 0 {
		entry = entry.WithField("excluded", result.Excluded)
	}
	if len(result.Included) == 0 && e.series.Width() > 0 {
		entry.Warn("no series has a usable last window")
	} else {
		entry.Debugf("extracted fold with %d series", len(result.Included))
	}

	return result, nil
}

// validate 验证折叠区间
func (e *Extractor) validate(ordinal int, fold types.FoldSpec) error {
	if err := e.translator.Validate(ordinal, "train", fold.Train); err != nil {
		return err
	}
	if err := e.translator.Validate(ordinal, "last_window", fold.LastWindow); err != nil {
		return err
	}
	if err := e.translator.Validate(ordinal, "test", fold.Test); err != nil {
		return err
	}

	w := e.options.WindowSize
	if w > fold.Train.Len() {
		return &types.RangeError{
			Fold:   ordinal,
			Field:  "window_size",
			Start:  fold.Train.Start,
			End:    fold.Train.End,
			Limit:  w,
			Reason: fmt.Sprintf("is shorter than window size %d", w),
		}
	}
	if fold.LastWindow.Start != fold.Train.End-w || fold.LastWindow.End != fold.Train.End {
		return &types.RangeError{
			Fold:   ordinal,
			Field:  "last_window",
			Start:  fold.LastWindow.Start,
			End:    fold.LastWindow.End,
			Limit:  fold.Train.End,
			Reason: fmt.Sprintf("is not the trailing %d positions of train [%d, %d)", w, fold.Train.Start, fold.Train.End),
		}
	}
	return nil
}
