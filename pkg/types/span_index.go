package types

import (
	"fmt"
	"time"
)

// IndexKind 索引标签类型
type IndexKind int

const (
	IndexPosition IndexKind = iota // 整数位置标签
	IndexTime                      // 时间戳标签
)

func (k IndexKind) String() string {
	if k == IndexTime {
		return "time"
	}
	return "position"
}

// SpanIndex 整个数据集的有序标签序列, 位置 i 对应标签 labels[i]
// 构造后只读; Slice 返回共享底层数组的视图
type SpanIndex struct {
	kind   IndexKind
	labels []int64 // 时间戳以 UnixNano 存储
}

// NewRangeIndex 创建整数区间索引 [start, stop), 步长 step
func NewRangeIndex(start, stop, step int64) (*SpanIndex, error) {
	if step <= 0 {
		return nil, fmt.Errorf("range index step must be positive, got %d", step)
	}
	if stop < start {
		return nil, fmt.Errorf("range index stop %d is before start %d", stop, start)
	}
	n := (stop - start + step - 1) / step
	labels := make([]int64, 0, n)
	for v := start; v < stop; v += step {
		labels = append(labels, v)
	}
	return &SpanIndex{kind: IndexPosition, labels: labels}, nil
}

// NewIntIndex 由整数标签创建索引, 标签必须严格递增
func NewIntIndex(labels []int64) (*SpanIndex, error) {
	cp := make([]int64, len(labels))
	copy(cp, labels)
	if err := checkStrictlyIncreasing(cp); err != nil {
		return nil, err
	}
	return &SpanIndex{kind: IndexPosition, labels: cp}, nil
}

// NewTimeIndex 由时间戳创建索引, 时间戳必须严格递增
func NewTimeIndex(ts []time.Time) (*SpanIndex, error) {
	labels := make([]int64, len(ts))
	for i, t := range ts {
		labels[i] = t.UnixNano()
	}
	if err := checkStrictlyIncreasing(labels); err != nil {
		return nil, err
	}
	return &SpanIndex{kind: IndexTime, labels: labels}, nil
}

func checkStrictlyIncreasing(labels []int64) error {
	for i := 1; i < len(labels); i++ {
		if labels[i] <= labels[i-1] {
			return fmt.Errorf("index labels must be strictly increasing: position %d (%d) after %d", i, labels[i], labels[i-1])
		}
	}
	return nil
}

// Kind 标签类型
func (s *SpanIndex) Kind() IndexKind {
	return s.kind
}

// Len 索引长度
func (s *SpanIndex) Len() int {
	if s == nil {
		return 0
	}
	return len(s.labels)
}

// Label 位置 i 的标签 (时间索引为 UnixNano)
func (s *SpanIndex) Label(i int) int64 {
	return s.labels[i]
}

// Time 位置 i 的时间标签, 仅对时间索引有意义
func (s *SpanIndex) Time(i int) time.Time {
	return time.Unix(0, s.labels[i]).UTC()
}

// Labels 返回标签副本
func (s *SpanIndex) Labels() []int64 {
	out := make([]int64, len(s.labels))
	copy(out, s.labels)
	return out
}

// Format 位置 i 标签的可读形式
func (s *SpanIndex) Format(i int) string {
	if s.kind == IndexTime {
		return s.Time(i).Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf("%d", s.labels[i])
}

// Slice 返回 [start, end) 的视图, 调用方负责边界检查
func (s *SpanIndex) Slice(start, end int) *SpanIndex {
	return &SpanIndex{kind: s.kind, labels: s.labels[start:end:end]}
}

// Select 按位置挑选标签, 返回新索引
func (s *SpanIndex) Select(positions []int) *SpanIndex {
	labels := make([]int64, len(positions))
	for i, p := range positions {
		labels[i] = s.labels[p]
	}
	return &SpanIndex{kind: s.kind, labels: labels}
}

// Equal 类型与标签完全一致
func (s *SpanIndex) Equal(other *SpanIndex) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	if s.kind != other.kind {
		return false
	}
	for i, l := range s.labels {
		if other.labels[i] != l {
			return false
		}
	}
	return true
}
