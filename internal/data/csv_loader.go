package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/opsxjacky/walkforward-folds/pkg/types"
)

// CSVLoader CSV数据加载器
// 宽表格式: 第一列为索引标签 (日期或整数), 其余每列一个序列
type CSVLoader struct{}

// NewCSVLoader 创建CSV加载器
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// SourceType 返回数据源类型
func (l *CSVLoader) SourceType() string {
	return "csv"
}

// LoadPanel 从文件加载面板
func (l *CSVLoader) LoadPanel(path string) (*types.Panel, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	panel, err := l.ReadPanel(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return panel, nil
}

// ReadPanel 从 reader 读取面板
func (l *CSVLoader) ReadPanel(r io.Reader) (*types.Panel, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("CSV file has no header")
	}

	header := records[0]
	if len(header) < 1 {
		return nil, fmt.Errorf("CSV header has no index column")
	}
	names := make([]string, len(header)-1)
	for i, h := range header[1:] {
		names[i] = strings.TrimSpace(h)
	}

	rows := records[1:]
	rawLabels := make([]string, len(rows))
	columns := make([][]float64, len(names))
	for c := range columns {
		columns[c] = make([]float64, len(rows))
	}

	for i, row := range rows {
		rawLabels[i] = strings.TrimSpace(row[0])
		for c := range names {
			v, err := parseValue(row[c+1])
			if err != nil {
				// 表头占第 1 行
				return nil, fmt.Errorf("row %d, column %q: %w", i+2, names[c], err)
			}
			columns[c][i] = v
		}
	}

	index, err := parseIndex(rawLabels)
	if err != nil {
		return nil, err
	}

	return types.NewPanel(index, names, columns)
}

// parseValue 解析数值, 空值与 NaN/NA/null 视为缺失
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "na", "n/a", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseIndex 整数标签生成位置索引, 否则按日期解析为时间索引
func parseIndex(raw []string) (*types.SpanIndex, error) {
	ints := make([]int64, len(raw))
	allInts := true
	for i, s := range raw {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			allInts = false
			break
		}
		ints[i] = v
	}
	if allInts {
		return types.NewIntIndex(ints)
	}

	ts := make([]time.Time, len(raw))
	for i, s := range raw {
		t, err := parseDate(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ts[i] = t
	}
	return types.NewTimeIndex(ts)
}

// parseDate 解析日期字符串
func parseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"02-01-2006",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
