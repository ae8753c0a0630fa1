package profile

import "testing"

func TestClassifyCardinality(t *testing.T) {
	tests := []struct {
		name     string
		distinct int64
		total    int64
		expected CardinalityClass
	}{
		{"空表", 0, 0, CardinalityLow},
		{"全空列", 0, 100, CardinalityLow},
		{"主键列", 100, 100, CardinalityUnique},
		{"接近唯一", 98, 100, CardinalityNearUnique},
		{"状态列", 2, 3, CardinalityEnumLike},
		{"码值列", 15, 10000, CardinalityEnumLike},
		{"高基数", 700, 1000, CardinalityHigh},
		{"低基数", 100, 1000, CardinalityLow},
		{"单行表", 1, 1, CardinalityUnique},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCardinality(tt.distinct, tt.total)
			if got != tt.expected {
				t.Errorf("ClassifyCardinality(%d, %d) = %s, want %s",
					tt.distinct, tt.total, got, tt.expected)
			}
		})
	}
}

func TestColumnProfileCardinality(t *testing.T) {
	cp := &ColumnProfile{
		Descriptor:     ColumnDescriptor{Name: "status", DeclaredType: "text"},
		DistinctCount:  2,
		DistinctValues: []any{"paid", "void"},
	}

	if got := cp.Cardinality(3); got != CardinalityEnumLike {
		t.Errorf("Cardinality(3) = %s, want %s", got, CardinalityEnumLike)
	}
}
