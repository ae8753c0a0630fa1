package profiler

import (
	"fmt"

	"table-profiler/internal/adapter"
	"table-profiler/internal/profile"

	"go.uber.org/zap"
)

// Profiler 表剖析器，持有只读会话适配器
type Profiler struct {
	adapter adapter.SessionAdapter
	source  profile.SourceInfo
	logger  *zap.Logger
}

// New 创建剖析器
func New(a adapter.SessionAdapter, source profile.SourceInfo, logger *zap.Logger) *Profiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Profiler{adapter: a, source: source, logger: logger}
}

// ValidateTable 校验 schema 与表存在，先查 schema 再查表。
// 不存在时返回 NotFoundError，附带最接近的候选名。
func (p *Profiler) ValidateTable(ref profile.TableReference) error {
	ok, err := p.adapter.SchemaExists(ref.Schema)
	if err != nil {
		return &profile.DataAccessError{Op: "schema_exists", Err: err}
	}
	if !ok {
		nf := &profile.NotFoundError{Kind: profile.KindSchema, Name: ref.Schema}
		if names, err := p.adapter.ListSchemas(); err == nil {
			nf.Suggestion = closestName(ref.Schema, names)
		}
		return nf
	}

	ok, err = p.adapter.TableExists(ref.Schema, ref.Table)
	if err != nil {
		return &profile.DataAccessError{Op: "table_exists", Err: err}
	}
	if !ok {
		nf := &profile.NotFoundError{Kind: profile.KindTable, Name: ref.String()}
		if names, err := p.adapter.ListTables(ref.Schema); err == nil {
			nf.Suggestion = closestName(ref.Table, names)
		}
		return nf
	}

	return nil
}

// BuildProfile 构建整表剖析结果。
// 先校验再逐列统计，任何一步失败都不返回部分结果。
func (p *Profiler) BuildProfile(ref profile.TableReference) (*profile.TableProfile, error) {
	if err := p.ValidateTable(ref); err != nil {
		return nil, err
	}
	p.logger.Info("表校验通过", zap.String("table", ref.String()))

	columns, err := p.adapter.ListColumns(ref.Schema, ref.Table)
	if err != nil {
		return nil, &profile.DataAccessError{Op: "list_columns", Err: err}
	}

	total, err := p.adapter.TotalRows(ref.Schema, ref.Table)
	if err != nil {
		return nil, &profile.DataAccessError{Op: "total_rows", Err: err}
	}

	tp := &profile.TableProfile{
		Reference:     ref,
		Source:        p.source,
		TotalRowCount: total,
		Columns:       make([]profile.ColumnProfile, 0, len(columns)),
	}

	for _, name := range columns {
		cp, err := p.profileColumn(ref, name)
		if err != nil {
			return nil, err
		}
		tp.Columns = append(tp.Columns, *cp)

		p.logger.Info("列剖析完成",
			zap.String("column", name),
			zap.String("type", cp.Descriptor.DeclaredType),
			zap.Int64("distinct", cp.DistinctCount),
			zap.String("cardinality", string(cp.Cardinality(total))))
	}

	return tp, nil
}

// profileColumn 逐项统计单列
func (p *Profiler) profileColumn(ref profile.TableReference, column string) (*profile.ColumnProfile, error) {
	declared, err := p.adapter.ColumnType(ref.Schema, ref.Table, column)
	if err != nil {
		return nil, &profile.DataAccessError{Op: "column_type", Err: err}
	}

	count, err := p.adapter.DistinctCount(ref.Schema, ref.Table, column)
	if err != nil {
		return nil, &profile.DataAccessError{Op: "distinct_count", Err: err}
	}

	values, err := p.adapter.DistinctValues(ref.Schema, ref.Table, column)
	if err != nil {
		return nil, &profile.DataAccessError{Op: "distinct_values", Err: err}
	}

	if int64(len(values)) != count {
		return nil, &profile.DataAccessError{
			Op:  "distinct_values",
			Err: fmt.Errorf("列 %s 唯一值数量不一致: count=%d, values=%d", column, count, len(values)),
		}
	}

	mfv, mfc, err := p.adapter.MostFrequent(ref.Schema, ref.Table, column)
	if err != nil {
		return nil, &profile.DataAccessError{Op: "most_frequent", Err: err}
	}

	return &profile.ColumnProfile{
		Descriptor:        profile.ColumnDescriptor{Name: column, DeclaredType: declared},
		DistinctCount:     count,
		DistinctValues:    values,
		MostFrequentValue: mfv,
		MostFrequentCount: mfc,
	}, nil
}
