package types

import (
	"fmt"
	"math"
)

// Panel 多序列面板: 列名有序, 每列与 SpanIndex 一一对齐, 缺失值为 NaN
// 构造时复制数据, 之后不再修改, 可被多个折叠并发读取
type Panel struct {
	index   *SpanIndex
	names   []string
	columns [][]float64
	pos     map[string]int

	// missing[c][i] 为列 c 在 [0, i) 内的缺失值个数
	missing [][]int
}

// NewPanel 创建面板, 列长度必须等于索引长度
func NewPanel(index *SpanIndex, names []string, columns [][]float64) (*Panel, error) {
	if index == nil {
		return nil, fmt.Errorf("panel index is nil")
	}
	if len(names) != len(columns) {
		return nil, &AlignmentError{
			What:   "panel",
			Reason: fmt.Sprintf("%d column names for %d columns", len(names), len(columns)),
		}
	}

	p := &Panel{
		index:   index,
		names:   make([]string, len(names)),
		columns: make([][]float64, len(columns)),
		pos:     make(map[string]int, len(names)),
		missing: make([][]int, len(columns)),
	}
	copy(p.names, names)

	for c, name := range names {
		if name == "" {
			return nil, fmt.Errorf("panel column %d has an empty name", c)
		}
		if _, dup := p.pos[name]; dup {
			return nil, fmt.Errorf("duplicate panel column %q", name)
		}
		if len(columns[c]) != index.Len() {
			return nil, &AlignmentError{What: name, Want: index.Len(), Got: len(columns[c])}
		}
		p.pos[name] = c

		col := make([]float64, len(columns[c]))
		copy(col, columns[c])
		p.columns[c] = col

		prefix := make([]int, len(col)+1)
		for i, v := range col {
			prefix[i+1] = prefix[i]
			if math.IsNaN(v) {
				prefix[i+1]++
			}
		}
		p.missing[c] = prefix
	}

	return p, nil
}

// Index 面板索引
func (p *Panel) Index() *SpanIndex {
	return p.index
}

// Len 行数
func (p *Panel) Len() int {
	return p.index.Len()
}

// Names 列名副本, 保持声明顺序
func (p *Panel) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Width 列数
func (p *Panel) Width() int {
	return len(p.names)
}

// ColumnIndex 列名对应的列位置
func (p *Panel) ColumnIndex(name string) (int, bool) {
	c, ok := p.pos[name]
	return c, ok
}

// MissingIn 列 c 在 r 内的缺失值个数, r 必须已通过边界检查
func (p *Panel) MissingIn(c int, r Range) int {
	return p.missing[c][r.End] - p.missing[c][r.Start]
}

// Frame 按列位置和行区间复制出一个 Frame
func (p *Panel) Frame(cols []int, r Range) *Frame {
	f := &Frame{
		Index:   p.index.Slice(r.Start, r.End),
		Columns: make([]string, len(cols)),
		Values:  make([][]float64, len(cols)),
	}
	for i, c := range cols {
		f.Columns[i] = p.names[c]
		v := make([]float64, r.Len())
		copy(v, p.columns[c][r.Start:r.End])
		f.Values[i] = v
	}
	return f
}

// AllColumns 所有列位置 [0, Width)
func (p *Panel) AllColumns() []int {
	cols := make([]int, len(p.names))
	for i := range cols {
		cols[i] = i
	}
	return cols
}
