package types

import "math"

// Frame 按标签区间切出的列式数据块
// Values[c] 为第 c 列, 长度等于 Index.Len(); 零列 Frame 仍保留行索引
type Frame struct {
	Index   *SpanIndex
	Columns []string
	Values  [][]float64
}

// Len 行数
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return f.Index.Len()
}

// Width 列数
func (f *Frame) Width() int {
	if f == nil {
		return 0
	}
	return len(f.Columns)
}

// Column 按列名取列
func (f *Frame) Column(name string) ([]float64, bool) {
	for i, c := range f.Columns {
		if c == name {
			return f.Values[i], true
		}
	}
	return nil, false
}

// At 第 row 行第 col 列的值
func (f *Frame) At(row, col int) float64 {
	return f.Values[col][row]
}

// Labels 行标签
func (f *Frame) Labels() []int64 {
	return f.Index.Labels()
}

// HasMissing 是否包含任何缺失值
func (f *Frame) HasMissing() bool {
	for _, col := range f.Values {
		for _, v := range col {
			if math.IsNaN(v) {
				return true
			}
		}
	}
	return false
}

// DropMissingRows 删除任一列缺失的行, 返回新 Frame
func (f *Frame) DropMissingRows() *Frame {
	keep := make([]int, 0, f.Len())
	for row := 0; row < f.Len(); row++ {
		complete := true
		for _, col := range f.Values {
			if math.IsNaN(col[row]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, row)
		}
	}
	if len(keep) == f.Len() {
		return f
	}

	out := &Frame{
		Index:   f.Index.Select(keep),
		Columns: f.Columns,
		Values:  make([][]float64, len(f.Values)),
	}
	for c, col := range f.Values {
		v := make([]float64, len(keep))
		for i, row := range keep {
			v[i] = col[row]
		}
		out.Values[c] = v
	}
	return out
}
