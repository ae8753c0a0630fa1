package renderer

import (
	"fmt"
	"strings"
	"time"

	"table-profiler/internal/profile"
)

// MarkdownRenderer Markdown 数据字典渲染器，xlsx 报表之外的补充输出
type MarkdownRenderer struct{}

// NewMarkdownRenderer 创建渲染器
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render 渲染为 Markdown 格式
func (m *MarkdownRenderer) Render(tp *profile.TableProfile) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# 数据剖析报告: %s\n\n", tp.Reference))
	sb.WriteString(fmt.Sprintf("- 主机: %s\n", tp.Source.Host))
	sb.WriteString(fmt.Sprintf("- 数据库: %s\n", tp.Source.Database))
	sb.WriteString(fmt.Sprintf("- 总行数: %d\n\n", tp.TotalRowCount))

	sb.WriteString("## 列统计\n\n")

	// 表头
	sb.WriteString("| 列名 | 类型 | 唯一值数 | 最高频值 | 频次 | 基数分级 |\n")
	sb.WriteString("|------|------|----------|----------|------|----------|\n")

	// 列信息
	for _, col := range tp.Columns {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %s | %d | %s |\n",
			col.Descriptor.Name,
			col.Descriptor.DeclaredType,
			col.DistinctCount,
			renderScalar(col.MostFrequentValue),
			col.MostFrequentCount,
			col.Cardinality(tp.TotalRowCount),
		))
	}

	return sb.String()
}

// renderScalar 标量转显示文本，nil 显示为空
func renderScalar(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case time.Time:
		return formatTemporal(tv)
	case []byte:
		return string(tv)
	default:
		return fmt.Sprintf("%v", tv)
	}
}
