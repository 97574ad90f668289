package index

import (
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// Translator 位置区间到标签切片的转换器
type Translator struct {
	span *types.SpanIndex
}

// NewTranslator 创建转换器
func NewTranslator(span *types.SpanIndex) *Translator {
	return &Translator{span: span}
}

// Span 底层索引
func (t *Translator) Span() *types.SpanIndex {
	return t.span
}

// Validate 检查区间是否落在 [0, len] 内且 start <= end
func (t *Translator) Validate(fold int, field string, r types.Range) error {
	n := t.span.Len()
	var reason string
	switch {
	case r.Start < 0:
		reason = "starts before position 0"
	case r.Start > r.End:
		reason = "has start after end"
	case r.End > n:
		reason = "ends past the index"
	default:
		return nil
	}
	return &types.RangeError{
		Fold:   fold,
		Field:  field,
		Start:  r.Start,
		End:    r.End,
		Limit:  n,
		Reason: reason,
	}
}

// Translate 返回 SpanIndex[start:end]
func (t *Translator) Translate(r types.Range) (*types.SpanIndex, error) {
	if err := t.Validate(-1, "range", r); err != nil {
		return nil, err
	}
	return t.span.Slice(r.Start, r.End), nil
}
