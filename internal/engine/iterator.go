package engine

import (
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// FoldIterator 按输入顺序逐个产出 FoldResult, 只能前进
//
//	it := ex.Folds(folds)
//	for it.Next() {
//		res := it.Result()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type FoldIterator struct {
	extractor *Extractor
	folds     []types.FoldSpec
	next      int
	current   *types.FoldResult
	err       error
}

// Next 计算下一个折叠, 出错或结束时返回 false
func (it *FoldIterator) Next() bool {
	it.current = nil
	if it.err != nil || it.next >= len(it.folds) {
		return false
	}

	res, err := it.extractor.Extract(it.next, it.folds[it.next])
	if err != nil {
		it.err = err
		return false
	}
	it.next++
	it.current = res
	return true
}

// Result 当前折叠结果
func (it *FoldIterator) Result() *types.FoldResult {
	return it.current
}

// Err 迭代中遇到的第一个错误
func (it *FoldIterator) Err() error {
	return it.err
}

// Remaining 尚未产出的折叠数
func (it *FoldIterator) Remaining() int {
	return len(it.folds) - it.next
}
