package profile

// TableReference 目标表标识，校验通过后不再修改
type TableReference struct {
	Schema string
	Table  string
}

func (r TableReference) String() string {
	return r.Schema + "." + r.Table
}

// ColumnDescriptor 列描述信息
type ColumnDescriptor struct {
	Name         string
	DeclaredType string
}

// ColumnProfile 单列剖析结果
type ColumnProfile struct {
	Descriptor        ColumnDescriptor
	DistinctCount     int64
	DistinctValues    []any
	MostFrequentValue any
	MostFrequentCount int64
}

// Cardinality 按整表行数对该列做基数分级
func (c *ColumnProfile) Cardinality(totalRows int64) CardinalityClass {
	return ClassifyCardinality(c.DistinctCount, totalRows)
}

// SourceInfo 数据源信息，写入报表头部
type SourceInfo struct {
	Host     string
	Database string
}

// TableProfile 整表剖析结果，构建完成后只读
type TableProfile struct {
	Reference     TableReference
	Source        SourceInfo
	TotalRowCount int64
	Columns       []ColumnProfile
}
