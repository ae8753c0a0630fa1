package adapter

import (
	"database/sql"
	"fmt"
	"strings"
)

// SessionAdapter 只读会话适配器接口
type SessionAdapter interface {
	// SchemaExists schema 是否存在（大小写敏感，精确匹配）
	SchemaExists(schema string) (bool, error)

	// TableExists 表是否存在（大小写敏感，精确匹配）
	TableExists(schema, table string) (bool, error)

	// ListSchemas 列出全部 schema 名
	ListSchemas() ([]string, error)

	// ListTables 列出 schema 下全部表名
	ListTables(schema string) ([]string, error)

	// ListColumns 按目录顺序列出表的列名
	ListColumns(schema, table string) ([]string, error)

	// ColumnType 列声明类型，定义了长度时附带长度限定符
	ColumnType(schema, table, column string) (string, error)

	// TotalRows 全表行数
	TotalRows(schema, table string) (int64, error)

	// DistinctCount 非空唯一值个数
	DistinctCount(schema, table, column string) (int64, error)

	// DistinctValues 非空唯一值，按数据源排序规则升序
	DistinctValues(schema, table, column string) ([]any, error)

	// MostFrequent 出现次数最多的值及其次数，对全部行分组（含 NULL）。
	// 空表返回 (nil, 0, nil)。
	MostFrequent(schema, table, column string) (any, int64, error)

	// Close 关闭连接
	Close() error
}

// Params 连接参数
type Params struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// New 按数据库类型创建适配器
func New(dbType string, p Params) (SessionAdapter, error) {
	switch dbType {
	case "postgres":
		return NewPostgresAdapter(p)
	case "mysql":
		return NewMySQLAdapter(p)
	case "sqlserver":
		return NewSQLServerAdapter(p)
	case "sqlite":
		return NewSQLiteAdapter(p.Database)
	default:
		return nil, fmt.Errorf("不支持的数据库类型: %s", dbType)
	}
}

// quoteAnsi ANSI 双引号标识符，内部引号成对转义
func quoteAnsi(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteBacktick MySQL 反引号标识符
func quoteBacktick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// quoteBracket SQL Server 方括号标识符
func quoteBracket(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// normalizeValue 驱动扫描值归一，文本列的 []byte 统一转 string
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// scanStrings 读取单列字符串结果集并关闭
func scanStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// scanValues 读取单列任意标量结果集并关闭
func scanValues(rows *sql.Rows) ([]any, error) {
	defer rows.Close()

	var out []any
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, normalizeValue(v))
	}
	return out, rows.Err()
}
