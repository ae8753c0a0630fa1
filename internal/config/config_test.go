package config

import (
	"errors"
	"os"
	"testing"

	"table-profiler/internal/profile"
)

func validConfig() *Config {
	return &Config{
		Type:     "postgres",
		Host:     "db1",
		Database: "sales",
		Schema:   "public",
		User:     "analyst",
		Table:    "orders",
		Output:   "orders.xlsx",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"合法配置", func(c *Config) {}, ""},
		{"未知类型", func(c *Config) { c.Type = "oracle" }, "type"},
		{"缺数据库", func(c *Config) { c.Database = "" }, "database"},
		{"缺表名", func(c *Config) { c.Table = "" }, "table"},
		{"schema 带引号", func(c *Config) { c.Schema = `pub"lic` }, "schema"},
		{"表名带分号", func(c *Config) { c.Table = "orders;drop table x" }, "table"},
		{"表名带空格", func(c *Config) { c.Table = "my orders" }, "table"},
		{"扩展名错误", func(c *Config) { c.Output = "orders.csv" }, "output"},
		{"扩展名大写", func(c *Config) { c.Output = "orders.XLSX" }, "output"},
		{"无扩展名", func(c *Config) { c.Output = "orders" }, "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}

			var ve *profile.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestNormalizeSchemaDefaults(t *testing.T) {
	tests := []struct {
		dbType   string
		database string
		expected string
	}{
		{"postgres", "sales", "public"},
		{"mysql", "sales", "sales"},
		{"sqlserver", "sales", "dbo"},
		{"sqlite", "./sales.db", "main"},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			cfg := &Config{Type: tt.dbType, Database: tt.database}
			cfg.Normalize()
			if cfg.Schema != tt.expected {
				t.Errorf("Schema = %q, want %q", cfg.Schema, tt.expected)
			}
		})
	}
}

func TestNormalizeKeepsExplicitSchema(t *testing.T) {
	cfg := &Config{Type: "postgres", Database: "sales", Schema: "analytics"}
	cfg.Normalize()
	if cfg.Schema != "analytics" {
		t.Errorf("Schema = %q, want analytics", cfg.Schema)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TBLPROF_TYPE", "mysql")
	t.Setenv("TBLPROF_HOST", "warehouse")
	t.Setenv("TBLPROF_PORT", "3307")
	t.Setenv("TBLPROF_DATABASE", "sales")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Type != "mysql" {
		t.Errorf("Type = %q, want mysql", cfg.Type)
	}
	if cfg.Host != "warehouse" {
		t.Errorf("Host = %q, want warehouse", cfg.Host)
	}
	if cfg.Port != 3307 {
		t.Errorf("Port = %d, want 3307", cfg.Port)
	}
	if cfg.Database != "sales" {
		t.Errorf("Database = %q, want sales", cfg.Database)
	}
}

func TestLoadDefaults(t *testing.T) {
	// t.Setenv 注册恢复后再清掉，确保测默认值
	for _, key := range []string{"TBLPROF_TYPE", "TBLPROF_HOST", "TBLPROF_PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Type != "postgres" {
		t.Errorf("Type = %q, want postgres", cfg.Type)
	}
	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", cfg.Host)
	}
	if cfg.Port != 0 {
		t.Errorf("Port = %d, want 0", cfg.Port)
	}
}
