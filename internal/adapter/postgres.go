package adapter

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresAdapter PostgreSQL 适配器
type PostgresAdapter struct {
	db *sql.DB
}

// NewPostgresAdapter 创建 PostgreSQL 适配器。
// 连接在首次查询时才真正建立。
func NewPostgresAdapter(p Params) (*PostgresAdapter, error) {
	db, err := sql.Open("pgx", buildPostgresDSN(p))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return &PostgresAdapter{db: db}, nil
}

// buildPostgresDSN 由连接参数拼接 DSN
func buildPostgresDSN(p Params) string {
	port := p.Port
	if port == 0 {
		port = 5432
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   fmt.Sprintf("%s:%d", p.Host, port),
		Path:   "/" + p.Database,
	}
	q := u.Query()
	q.Set("sslmode", "prefer")
	u.RawQuery = q.Encode()
	return u.String()
}

func (a *PostgresAdapter) qualified(schema, table string) string {
	return quoteAnsi(schema) + "." + quoteAnsi(table)
}

// SchemaExists schema 是否存在
func (a *PostgresAdapter) SchemaExists(schema string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM information_schema.schemata
		WHERE schema_name = $1
	`
	var n int64
	if err := a.db.QueryRow(query, schema).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// TableExists 表是否存在
func (a *PostgresAdapter) TableExists(schema, table string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = $2
	`
	var n int64
	if err := a.db.QueryRow(query, schema, table).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListSchemas 列出全部 schema
func (a *PostgresAdapter) ListSchemas() ([]string, error) {
	query := `
		SELECT schema_name
		FROM information_schema.schemata
		ORDER BY schema_name
	`
	rows, err := a.db.Query(query)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ListTables 列出 schema 下全部表
func (a *PostgresAdapter) ListTables(schema string) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		ORDER BY table_name
	`
	rows, err := a.db.Query(query, schema)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ListColumns 按目录顺序列出列名
func (a *PostgresAdapter) ListColumns(schema, table string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`
	rows, err := a.db.Query(query, schema, table)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ColumnType 列声明类型，带长度限定符
func (a *PostgresAdapter) ColumnType(schema, table, column string) (string, error) {
	query := `
		SELECT data_type, character_maximum_length
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2 AND column_name = $3
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
func (a *PostgresAdapter) TotalRows(schema, table string) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, a.qualified(schema, table))
	var n int64
	if err := a.db.QueryRow(query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctCount 非空唯一值个数
func (a *PostgresAdapter) DistinctCount(schema, table, column string) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM %s`,
		quoteAnsi(column), a.qualified(schema, table))
	var n int64
	if err := a.db.QueryRow(query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctValues 非空唯一值，升序
func (a *PostgresAdapter) DistinctValues(schema, table, column string) ([]any, error) {
	col := quoteAnsi(column)
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
func (a *PostgresAdapter) MostFrequent(schema, table, column string) (any, int64, error) {
	col := quoteAnsi(column)
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
func (a *PostgresAdapter) Close() error {
	return a.db.Close()
}
