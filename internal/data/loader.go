package data

import (
	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// PanelLoader 面板数据加载器接口
type PanelLoader interface {
	// LoadPanel 加载一个对齐到共同索引的面板
	LoadPanel(path string) (*types.Panel, error)

	// SourceType 支持的数据源类型
	SourceType() string
}
