package eligibility

import (
	"fmt"

	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// Filter 按最近窗口的缺失情况决定哪些序列参与当前折叠
// 只读取面板, 可并发使用
type Filter struct {
	policy types.EligibilityPolicy
}

// NewFilter 创建过滤器, 空策略视为 PolicyCompleteWindow
func NewFilter(policy types.EligibilityPolicy) (*Filter, error) {
	switch policy {
	case "":
		policy = types.PolicyCompleteWindow
	case types.PolicyCompleteWindow, types.PolicyAnyObserved:
	default:
		return nil, fmt.Errorf("unknown eligibility policy %q", policy)
	}
	return &Filter{policy: policy}, nil
}

// Policy 当前策略
func (f *Filter) Policy() types.EligibilityPolicy {
	return f.policy
}

// Eligible 返回入选与剔除的列位置, 均保持面板列顺序
// lastWindow 必须已通过边界检查
func (f *Filter) Eligible(panel *types.Panel, lastWindow types.Range) (included, excluded []int) {
	included = make([]int, 0, panel.Width())
	for c := 0; c < panel.Width(); c++ {
		if f.accepts(panel.MissingIn(c, lastWindow), lastWindow.Len()) {
			included = append(included, c)
		} else {
			excluded = append(excluded, c)
		}
	}
	return included, excluded
}

func (f *Filter) accepts(missing, window int) bool {
	if f.policy == types.PolicyAnyObserved {
		return missing < window
	}
	return missing == 0
}

// Names 列位置转列名
func Names(panel *types.Panel, cols []int) []string {
	names := panel.Names()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = names[c]
	}
	return out
}
