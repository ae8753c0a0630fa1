package profile

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		contains []string
	}{
		{
			"表不带候选",
			&NotFoundError{Kind: KindTable, Name: "public.order"},
			[]string{"表不存在", "public.order"},
		},
		{
			"表带候选",
			&NotFoundError{Kind: KindTable, Name: "public.order", Suggestion: "orders"},
			[]string{"表不存在", "public.order", "orders"},
		},
		{
			"schema",
			&NotFoundError{Kind: KindSchema, Name: "pubic"},
			[]string{"schema", "pubic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestDataAccessErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &DataAccessError{Op: "total_rows", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if !strings.Contains(err.Error(), "total_rows") {
		t.Errorf("message %q missing operation name", err.Error())
	}

	var dae *DataAccessError
	wrapped := fmt.Errorf("剖析失败: %w", err)
	if !errors.As(wrapped, &dae) {
		t.Error("errors.As should find DataAccessError through wrapping")
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &IOError{Path: "/readonly/out.xlsx", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if !strings.Contains(err.Error(), "/readonly/out.xlsx") {
		t.Errorf("message %q missing path", err.Error())
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "output", Reason: "输出文件必须以 .xlsx 结尾"}
	if !strings.Contains(err.Error(), "output") {
		t.Errorf("message %q missing field name", err.Error())
	}
}
