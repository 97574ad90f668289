package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// Config 配置文件结构
type Config struct {
	Data       DataSection       `yaml:"data"`
	Extraction ExtractionSection `yaml:"extraction"`
	Folds      []FoldConfig      `yaml:"folds"`
	Output     OutputSection     `yaml:"output"`
}

// DataSection 数据源配置
type DataSection struct {
	Series string `yaml:"series"`
	Exog   string `yaml:"exog"`
}

// ExtractionSection 提取配置
type ExtractionSection struct {
	WindowSize       int    `yaml:"window_size"`
	DropNALastWindow bool   `yaml:"dropna_last_window"`
	ExternallyFitted bool   `yaml:"externally_fitted"`
	Eligibility      string `yaml:"eligibility"`
}

// FoldConfig 单个折叠, 区间写作 [start, end]
type FoldConfig struct {
	Name       string `yaml:"name"`
	Train      []int  `yaml:"train"`
	LastWindow []int  `yaml:"last_window"`
	Test       []int  `yaml:"test"`
}

// OutputSection 输出配置
type OutputSection struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// LoadConfig 从文件加载配置
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 配置
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Data.Series == "" {
		return nil, fmt.Errorf("data.series is required")
	}
	if len(config.Folds) == 0 {
		return nil, fmt.Errorf("at least one fold is required")
	}
	return &config, nil
}

// ToOptions 转换为提取配置
func (c *Config) ToOptions() types.ExtractOptions {
	return types.ExtractOptions{
		WindowSize:       c.Extraction.WindowSize,
		DropNALastWindow: c.Extraction.DropNALastWindow,
		ExternallyFitted: c.Extraction.ExternallyFitted,
		Policy:           types.EligibilityPolicy(c.Extraction.Eligibility),
	}
}

// ToFoldSpecs 转换为折叠定义, Payload 为对应的 FoldConfig
func (c *Config) ToFoldSpecs() ([]types.FoldSpec, error) {
	specs := make([]types.FoldSpec, len(c.Folds))
	for i, f := range c.Folds {
		train, err := toRange(f.Train)
		if err != nil {
			return nil, fmt.Errorf("fold %d: invalid train: %w", i, err)
		}
		lastWindow, err := toRange(f.LastWindow)
		if err != nil {
			return nil, fmt.Errorf("fold %d: invalid last_window: %w", i, err)
		}
		test, err := toRange(f.Test)
		if err != nil {
			return nil, fmt.Errorf("fold %d: invalid test: %w", i, err)
		}
		specs[i] = types.FoldSpec{
			Train:      train,
			LastWindow: lastWindow,
			Test:       test,
			Payload:    f,
		}
	}
	return specs, nil
}

func toRange(bounds []int) (types.Range, error) {
	if len(bounds) != 2 {
		return types.Range{}, fmt.Errorf("expected [start, end], got %d values", len(bounds))
	}
	return types.Range{Start: bounds[0], End: bounds[1]}, nil
}

// GetOutputFormat 获取输出格式
func (c *Config) GetOutputFormat() string {
	if c.Output.Format != "" {
		return c.Output.Format
	}
	return "text"
}

// GetOutputPath 获取输出路径
func (c *Config) GetOutputPath() string {
	if c.Output.Path != "" {
		return c.Output.Path
	}
	return "output/folds.json"
}
