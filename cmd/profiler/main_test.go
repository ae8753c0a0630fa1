package main

import (
	"bytes"
	"testing"
)

// 失败时只允许 main 打一行，cobra 自己不得输出错误或用法
func TestRootCommandSilencesCobraOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"未知子命令", []string{"nosuch"}},
		{"缺必填参数", []string{"summary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			var out, errOut bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err == nil {
				t.Fatal("expected error")
			}
			if out.Len() != 0 || errOut.Len() != 0 {
				t.Errorf("cobra output not silenced: stdout=%q stderr=%q",
					out.String(), errOut.String())
			}
		})
	}
}
