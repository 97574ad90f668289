package types

import (
	"errors"
	"fmt"
)

// 哨兵错误, 调用方通过 errors.Is 匹配
var (
	// ErrRange 位置区间越界或非法
	ErrRange = errors.New("range error")

	// ErrAlignment 面板与索引未对齐
	ErrAlignment = errors.New("alignment error")
)

// RangeError 折叠区间错误
type RangeError struct {
	Fold   int    // 折叠序号, -1 表示与折叠无关
	Field  string // "train" / "last_window" / "test" / "window_size"
	Start  int
	End    int
	Limit  int // 可用长度 (索引长度或训练区间长度)
	Reason string
}

func (e *RangeError) Error() string {
	if e.Fold >= 0 {
		return fmt.Sprintf("fold %d: %s [%d, %d) %s (limit %d)", e.Fold, e.Field, e.Start, e.End, e.Reason, e.Limit)
	}
	return fmt.Sprintf("%s [%d, %d) %s (limit %d)", e.Field, e.Start, e.End, e.Reason, e.Limit)
}

// Is 使 errors.Is(err, ErrRange) 成立
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// AlignmentError 对齐错误
type AlignmentError struct {
	What   string // 出错对象, 如 "exog" 或列名
	Want   int
	Got    int
	Reason string
}

func (e *AlignmentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.What, e.Reason)
	}
	return fmt.Sprintf("%s: length %d does not match index length %d", e.What, e.Got, e.Want)
}

// Is 使 errors.Is(err, ErrAlignment) 成立
func (e *AlignmentError) Is(target error) bool {
	return target == ErrAlignment
}
