package adapter

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// sqliteSchema sqlite 只有一个固定 schema
const sqliteSchema = "main"

// SQLiteAdapter SQLite 适配器，database 参数为文件路径
type SQLiteAdapter struct {
	db *sql.DB
}

// NewSQLiteAdapter 创建 SQLite 适配器。
// 单连接模式，内存库的多个连接互不可见。
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return &SQLiteAdapter{db: db}, nil
}

// SchemaExists 仅接受 main
func (a *SQLiteAdapter) SchemaExists(schema string) (bool, error) {
	return schema == sqliteSchema, nil
}

// TableExists 表是否存在
func (a *SQLiteAdapter) TableExists(schema, table string) (bool, error) {
	if schema != sqliteSchema {
		return false, nil
	}
	query := `
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name = ?
	`
	var n int64
	if err := a.db.QueryRow(query, table).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListSchemas 列出全部 schema
func (a *SQLiteAdapter) ListSchemas() ([]string, error) {
	return []string{sqliteSchema}, nil
}

// ListTables 列出全部表，跳过 sqlite 内部表
func (a *SQLiteAdapter) ListTables(schema string) ([]string, error) {
	if schema != sqliteSchema {
		return nil, nil
	}
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`
	rows, err := a.db.Query(query)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ListColumns 按定义顺序列出列名
func (a *SQLiteAdapter) ListColumns(schema, table string) ([]string, error) {
	query := `
		SELECT name
		FROM pragma_table_info(?)
		ORDER BY cid
	`
	rows, err := a.db.Query(query, table)
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ColumnType 返回建表语句里的声明类型，长度限定符已含在其中
func (a *SQLiteAdapter) ColumnType(schema, table, column string) (string, error) {
	query := `
		SELECT type
		FROM pragma_table_info(?)
		WHERE name = ?
	`
	var declared string
	if err := a.db.QueryRow(query, table, column).Scan(&declared); err != nil {
		return "", err
	}
	return declared, nil
}

// TotalRows 全表行数
func (a *SQLiteAdapter) TotalRows(schema, table string) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteAnsi(table))
	var n int64
	if err := a.db.QueryRow(query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctCount 非空唯一值个数
func (a *SQLiteAdapter) DistinctCount(schema, table, column string) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(DISTINCT %s) FROM %s",
		quoteAnsi(column), quoteAnsi(table))
	var n int64
	if err := a.db.QueryRow(query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DistinctValues 非空唯一值，升序
func (a *SQLiteAdapter) DistinctValues(schema, table, column string) ([]any, error) {
	col := quoteAnsi(column)
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s
		WHERE %s IS NOT NULL
		ORDER BY %s ASC
	`, col, quoteAnsi(table), col, col)
	rows, err := a.db.Query(query)
	if err != nil {
		return nil, err
	}
	return scanValues(rows)
}

// MostFrequent 最高频值及其次数
func (a *SQLiteAdapter) MostFrequent(schema, table, column string) (any, int64, error) {
	col := quoteAnsi(column)
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS freq
		FROM %s
		GROUP BY %s
		ORDER BY freq DESC
		LIMIT 1
	`, col, quoteAnsi(table), col)

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
func (a *SQLiteAdapter) Close() error {
	return a.db.Close()
}
