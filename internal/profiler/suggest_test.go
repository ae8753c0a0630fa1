package profiler

import "testing"

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		name1   string
		name2   string
		wantMin float64
		wantMax float64
	}{
		{"orders", "orders", 1.0, 1.0},
		{"Orders", "orders", 1.0, 1.0},
		{"order", "orders", 0.8, 0.8},
		{"ordrs", "orders", 0.8, 0.99},
		{"customers", "invoices", 0.0, 0.49},
	}

	for _, tt := range tests {
		t.Run(tt.name1+"_"+tt.name2, func(t *testing.T) {
			score := nameSimilarity(tt.name1, tt.name2)
			if score < tt.wantMin || score > tt.wantMax {
				t.Errorf("nameSimilarity(%q, %q) = %f, want [%f, %f]",
					tt.name1, tt.name2, score, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestClosestName(t *testing.T) {
	candidates := []string{"customers", "invoices", "orders", "order_items"}

	tests := []struct {
		target   string
		expected string
	}{
		{"order", "orders"},
		{"ordes", "orders"},
		{"Invoice", "invoices"},
		{"zzzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := closestName(tt.target, candidates)
			if got != tt.expected {
				t.Errorf("closestName(%q) = %q, want %q", tt.target, got, tt.expected)
			}
		})
	}
}

func TestClosestNameEmptyCandidates(t *testing.T) {
	if got := closestName("orders", nil); got != "" {
		t.Errorf("expected empty suggestion, got %q", got)
	}
}
