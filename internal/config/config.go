package config

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/ilyakaznacheev/cleanenv"

	"table-profiler/internal/profile"
)

// identPattern 标识符白名单，拼入 SQL 前必须通过
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// supportedTypes 支持的数据库类型
var supportedTypes = map[string]bool{
	"postgres":  true,
	"mysql":     true,
	"sqlserver": true,
	"sqlite":    true,
}

// Config 运行配置。连接参数可由环境变量给默认值，命令行覆盖；
// 密码只能交互输入，不进环境变量。
type Config struct {
	Type     string `env:"TBLPROF_TYPE" env-default:"postgres"`
	Host     string `env:"TBLPROF_HOST" env-default:"localhost"`
	Port     int    `env:"TBLPROF_PORT" env-default:"0"`
	Database string `env:"TBLPROF_DATABASE"`
	Schema   string `env:"TBLPROF_SCHEMA"`
	User     string `env:"TBLPROF_USER"`

	Table    string
	Output   string
	Markdown string

	Password string
}

// Load 读取环境变量默认值
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("读取环境变量失败: %w", err)
	}
	return &cfg, nil
}

// Normalize 按数据库类型补全默认 schema
func (c *Config) Normalize() {
	if c.Schema == "" {
		switch c.Type {
		case "postgres":
			c.Schema = "public"
		case "mysql":
			c.Schema = c.Database
		case "sqlserver":
			c.Schema = "dbo"
		case "sqlite":
			c.Schema = "main"
		}
	}
}

// Validate 在建立会话之前校验全部输入。
// 顺序固定：类型、必填项、标识符白名单、输出扩展名。
func (c *Config) Validate() error {
	if !supportedTypes[c.Type] {
		return &profile.ValidationError{Field: "type", Reason: fmt.Sprintf("不支持的数据库类型 %q", c.Type)}
	}
	if c.Database == "" {
		return &profile.ValidationError{Field: "database", Reason: "不能为空"}
	}
	if c.Table == "" {
		return &profile.ValidationError{Field: "table", Reason: "不能为空"}
	}
	if !identPattern.MatchString(c.Schema) {
		return &profile.ValidationError{Field: "schema", Reason: fmt.Sprintf("标识符不合法 %q", c.Schema)}
	}
	if !identPattern.MatchString(c.Table) {
		return &profile.ValidationError{Field: "table", Reason: fmt.Sprintf("标识符不合法 %q", c.Table)}
	}
	if filepath.Ext(c.Output) != ".xlsx" {
		return &profile.ValidationError{Field: "output", Reason: fmt.Sprintf("输出文件必须以 .xlsx 结尾: %q", c.Output)}
	}
	return nil
}
