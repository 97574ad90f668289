package slicer

import (
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// Builder 按入选序列构造训练/最近窗口/外生变量切片
type Builder struct {
	series           *types.Panel
	exog             *types.Panel // 可为 nil
	dropNALastWindow bool
	externallyFitted bool
}

// NewBuilder 创建切片构造器
func NewBuilder(series, exog *types.Panel, dropNALastWindow, externallyFitted bool) *Builder {
	return &Builder{
		series:           series,
		exog:             exog,
		dropNALastWindow: dropNALastWindow,
		externallyFitted: externallyFitted,
	}
}

// Slices 单个折叠的全部切片
type Slices struct {
	Train      *types.Frame
	LastWindow *types.Frame
	TrainExog  *types.Frame
	TestExog   *types.Frame
}

// Build 构造切片, fold 的区间必须已通过边界检查
func (b *Builder) Build(fold types.FoldSpec, included []int) Slices {
	var s Slices

	if !b.externallyFitted {
		s.Train = b.series.Frame(included, fold.Train)
	}

	s.LastWindow = b.series.Frame(included, fold.LastWindow)
	if b.dropNALastWindow {
		s.LastWindow = s.LastWindow.DropMissingRows()
	}

	if b.exog != nil {
		all := b.exog.AllColumns()
		if !b.externallyFitted {
			s.TrainExog = b.exog.Frame(all, fold.Train)
		}
		s.TestExog = b.exog.Frame(all, fold.Test)
	}

	return s
}
