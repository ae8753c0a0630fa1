package adapter

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/denisenkom/go-mssqldb"
)

// SQLServerAdapter SQL Server 适配器
type SQLServerAdapter struct {
	db *sql.DB
}

// NewSQLServerAdapter 创建 SQL Server 适配器。
// 连接在首次查询时才真正建立。
func NewSQLServerAdapter(p Params) (*SQLServerAdapter, error) {
	db, err := sql.Open("sqlserver", buildSQLServerDSN(p))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return &SQLServerAdapter{db: db}, nil
}

// buildSQLServerDSN 由连接参数拼接 DSN
func buildSQLServerDSN(p Params) string {
	port := p.Port
	if port == 0 {
		port = 1433
	}
	u := url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(p.User, p.Password),
		Host:   fmt.Sprintf("%s:%d", p.Host, port),
	}
	q := u.Query()
	q.Set("database", p.Database)
	u.RawQuery = q.Encode()
	return u.String()
}

func (a *SQLServerAdapter) qualified(schema, table string) string {
	return quoteBracket(schema) + "." + quoteBracket(table)
}

// SchemaExists schema 是否存在
func (a *SQLServerAdapter) SchemaExists(schema string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM INFORMATION_SCHEMA.SCHEMATA
		WHERE SCHEMA_NAME = @p1
	`
	var n int64
	if err := a.db.QueryRow(query, schema).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// TableExists 表是否存在
func (a *SQLServerAdapter) TableExists(schema, table string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = @p1 AND TABLE_NAME = @p2
	`
	var n int64
	if err := a.db.QueryRow(query, schema, table).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListSchemas 列出全部 schema
func (a *SQLServerAdapter) ListSchemas() ([]string, error) {
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
func (a *SQLServerAdapter) ListTables(schema string) ([]string, error) {
	query := `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = @p1
		ORDER BY TABLE_NAME
	`
	rows, err := a.db.Query(query, schema)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ListColumns 按目录顺序列出列名
func (a *SQLServerAdapter) ListColumns(schema, table string) ([]string, error) {
	query := `
		SELECT COLUMN_NAME
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = @p1 AND TABLE_NAME = @p2
		ORDER BY ORDINAL_POSITION
	`
	rows, err := a.db.Query(query, schema, table)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ColumnType 列声明类型，带长度限定符
func (a *SQLServerAdapter) ColumnType(schema, table, column string) (string, error) {
	query := `
		SELECT DATA_TYPE, CHARACTER_MAXIMUM_LENGTH
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = @p1 AND TABLE_NAME = @p2 AND COLUMN_NAME = @p3
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
func (a *SQLServerAdapter) TotalRows(schema, table string) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", a.qualified(schema, table))
	var n int64
	if err := a.db.QueryRow(query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctCount 非空唯一值个数
func (a *SQLServerAdapter) DistinctCount(schema, table, column string) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(DISTINCT %s) FROM %s",
		quoteBracket(column), a.qualified(schema, table))
	var n int64
	if err := a.db.QueryRow(query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctValues 非空唯一值，升序
func (a *SQLServerAdapter) DistinctValues(schema, table, column string) ([]any, error) {
	col := quoteBracket(column)
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
func (a *SQLServerAdapter) MostFrequent(schema, table, column string) (any, int64, error) {
	col := quoteBracket(column)
	query := fmt.Sprintf(`
		SELECT TOP 1 %s, COUNT(*) AS freq
		FROM %s
		GROUP BY %s
		ORDER BY freq DESC
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
func (a *SQLServerAdapter) Close() error {
	return a.db.Close()
}
