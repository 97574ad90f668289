package types

// Range 半开位置区间 [Start, End)
type Range struct {
	Start int
	End   int
}

// Len 区间长度
func (r Range) Len() int {
	return r.End - r.Start
}

// FoldSpec 折叠定义, 由上游切分器给出
type FoldSpec struct {
	Train      Range
	LastWindow Range
	Test       Range

	// Payload 原样透传到 FoldResult.Spec
	Payload any
}

// FoldResult 单个折叠的提取结果, 每个折叠新建, 之后不再修改
type FoldResult struct {
	Fold       int
	Train      *Frame // 外部已拟合模式下为 nil
	LastWindow *Frame
	Included   []string // 保持面板列顺序
	Excluded   []string
	TrainExog  *Frame // 无外生变量或外部已拟合模式下为 nil
	TestExog   *Frame // 无外生变量时为 nil
	Spec       FoldSpec
}

// EligibilityPolicy 序列入选策略
type EligibilityPolicy string

const (
	// PolicyCompleteWindow 最近窗口内不得有任何缺失值
	PolicyCompleteWindow EligibilityPolicy = "complete_window"
	// PolicyAnyObserved 最近窗口内至少有一个观测值
	PolicyAnyObserved EligibilityPolicy = "any_observed"
)

// ExtractOptions 提取配置
type ExtractOptions struct {
	WindowSize       int
	DropNALastWindow bool
	ExternallyFitted bool
	Policy           EligibilityPolicy
}
