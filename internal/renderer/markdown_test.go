package renderer

import (
	"strings"
	"testing"

	"table-profiler/internal/profile"
)

func TestMarkdownRender(t *testing.T) {
	tp := ordersProfile()

	out := NewMarkdownRenderer().Render(tp)

	wants := []string{
		"# 数据剖析报告: public.orders",
		"- 主机: db1",
		"- 总行数: 3",
		"| id | integer | 3 | 1 | 1 | unique |",
		"| status | varchar(10) | 2 | paid | 2 | enum_like |",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestMarkdownRenderNilMostFrequent(t *testing.T) {
	tp := &profile.TableProfile{
		Reference:     profile.TableReference{Schema: "main", Table: "t"},
		TotalRowCount: 2,
		Columns: []profile.ColumnProfile{
			{
				Descriptor:        profile.ColumnDescriptor{Name: "note", DeclaredType: "text"},
				DistinctCount:     0,
				DistinctValues:    nil,
				MostFrequentValue: nil,
				MostFrequentCount: 2,
			},
		},
	}

	out := NewMarkdownRenderer().Render(tp)
	if !strings.Contains(out, "| note | text | 0 |  | 2 | low |") {
		t.Errorf("nil most frequent should render empty:\n%s", out)
	}
}
