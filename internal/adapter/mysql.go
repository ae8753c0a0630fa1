package adapter

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// MySQLAdapter MySQL 适配器
type MySQLAdapter struct {
	db *sql.DB
}

// NewMySQLAdapter 创建 MySQL 适配器。
// 连接在首次查询时才真正建立。
func NewMySQLAdapter(p Params) (*MySQLAdapter, error) {
	db, err := sql.Open("mysql", buildMySQLDSN(p))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return &MySQLAdapter{db: db}, nil
}

// buildMySQLDSN 由连接参数拼接 DSN。
// parseTime 打开后时间列扫描为 time.Time，报表才能按时间策略格式化。
func buildMySQLDSN(p Params) string {
	port := p.Port
	if port == 0 {
		port = 3306
	}
	cfg := mysql.NewConfig()
	cfg.User = p.User
	cfg.Passwd = p.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", p.Host, port)
	cfg.DBName = p.Database
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

func (a *MySQLAdapter) qualified(schema, table string) string {
	return quoteBacktick(schema) + "." + quoteBacktick(table)
}

// SchemaExists schema 是否存在
func (a *MySQLAdapter) SchemaExists(schema string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM INFORMATION_SCHEMA.SCHEMATA
		WHERE SCHEMA_NAME = ?
	`
	var n int64
	if err := a.db.QueryRow(query, schema).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// TableExists 表是否存在
func (a *MySQLAdapter) TableExists(schema, table string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
	`
	var n int64
	if err := a.db.QueryRow(query, schema, table).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListSchemas 列出全部 schema
func (a *MySQLAdapter) ListSchemas() ([]string, error) {
	query := `
		SELECT SCHEMA_NAME
		FROM INFORMATION_SCHEMA.SCHEMATA
		ORDER BY SCHEMA_NAME
	`
	rows, err := a.db.Query(query)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ListTables 列出 schema 下全部表
func (a *MySQLAdapter) ListTables(schema string) ([]string, error) {
	query := `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ?
		ORDER BY TABLE_NAME
	`
	rows, err := a.db.Query(query, schema)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ListColumns 按目录顺序列出列名
func (a *MySQLAdapter) ListColumns(schema, table string) ([]string, error) {
	query := `
		SELECT COLUMN_NAME
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION
	`
	rows, err := a.db.Query(query, schema, table)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ColumnType 列声明类型，带长度限定符
func (a *MySQLAdapter) ColumnType(schema, table, column string) (string, error) {
	query := `
		SELECT DATA_TYPE, CHARACTER_MAXIMUM_LENGTH
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ? AND COLUMN_NAME = ?
	`
	var dataType string
	var maxLen sql.NullInt64
	if err := a.db.QueryRow(query, schema, table, column).Scan(&dataType, &maxLen); err != nil {
		return "", err
	}
	if maxLen.Valid {
		return fmt.Sprintf("%s(%d)", dataType, maxLen.Int64), nil
	}
	return dataType, nil
}

// TotalRows 全表行数
func (a *MySQLAdapter) TotalRows(schema, table string) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", a.qualified(schema, table))
	var n int64
	if err := a.db.QueryRow(query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctCount 非空唯一值个数
func (a *MySQLAdapter) DistinctCount(schema, table, column string) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(DISTINCT %s) FROM %s",
		quoteBacktick(column), a.qualified(schema, table))
	var n int64
	if err := a.db.QueryRow(query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctValues 非空唯一值，升序
func (a *MySQLAdapter) DistinctValues(schema, table, column string) ([]any, error) {
	col := quoteBacktick(column)
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s
		WHERE %s IS NOT NULL
		ORDER BY %s ASC
	`, col, a.qualified(schema, table), col, col)
	rows, err := a.db.Query(query)
	if err != nil {
		return nil, err
	}
	return scanValues(rows)
}

// MostFrequent 最高频值及其次数
func (a *MySQLAdapter) MostFrequent(schema, table, column string) (any, int64, error) {
	col := quoteBacktick(column)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS freq
		FROM %s
		GROUP BY %s
		ORDER BY freq DESC
		LIMIT 1
	`, col, a.qualified(schema, table), col)

	var v any
	var n int64
	err := a.db.QueryRow(query).Scan(&v, &n)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return normalizeValue(v), n, nil
}

// Close 关闭连接
func (a *MySQLAdapter) Close() error {
	return a.db.Close()
}
