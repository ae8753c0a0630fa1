package renderer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"table-profiler/internal/profile"
)

// sheetTitle 工作表固定标题
const sheetTitle = "Data Summary"

// descriptionText 表头 Description 固定值
const descriptionText = "Distinct values for each column in a table."

// 固定行号布局
const (
	rowHeaderLabel = 1
	rowHeaderValue = 2
	rowDistinct    = 4
	rowMostFreq    = 5
	rowFrequency   = 6
	rowDataType    = 7
	rowColumnName  = 8
	rowFirstValue  = 9
)

// firstDataColumn 数据列从 B 列开始，A 列留给行标签
const firstDataColumn = 2

// rowLabels A 列固定行标签（A4 起）
var rowLabels = []string{
	"# of unique values",
	"most frequent value",
	"value frequency",
	"data type",
	"column name",
}

// XLSXRenderer xlsx 报表渲染器，无状态，每次调用完整重写输出文件
type XLSXRenderer struct{}

// NewXLSXRenderer 创建渲染器
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// Render 将剖析结果写入 xlsx 文件，已存在的文件被完整覆盖
func (r *XLSXRenderer) Render(tp *profile.TableProfile, path string) error {
	if filepath.Ext(path) != ".xlsx" {
		return &profile.ValidationError{
			Field:  "output",
			Reason: fmt.Sprintf("输出文件必须以 .xlsx 结尾: %q", path),
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetTitle); err != nil {
		return &profile.IOError{Path: path, Err: err}
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return &profile.IOError{Path: path, Err: err}
	}

	columnNameStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"97B4C9"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return &profile.IOError{Path: path, Err: err}
	}

	f.SetColWidth(sheetTitle, "A", "A", 25)

	r.writeHeader(f, tp, boldStyle)
	r.writeRowLabels(f, boldStyle)

	for i, col := range tp.Columns {
		r.writeColumn(f, firstDataColumn+i, &col, columnNameStyle)
	}

	if n := len(tp.Columns); n > 0 {
		last := cellName(firstDataColumn+n-1, rowColumnName)
		ref := fmt.Sprintf("%s:%s", cellName(firstDataColumn, rowColumnName), last)
		if err := f.AutoFilter(sheetTitle, ref, nil); err != nil {
			return &profile.IOError{Path: path, Err: err}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &profile.IOError{Path: path, Err: err}
	}
	return nil
}

// writeHeader 元数据表头，第 1 行标签加粗，第 2 行对应值
func (r *XLSXRenderer) writeHeader(f *excelize.File, tp *profile.TableProfile, boldStyle int) {
	header := []struct {
		label string
		value any
	}{
		{"Host", tp.Source.Host},
		{"Database", tp.Source.Database},
		{"Schema", tp.Reference.Schema},
		{"Table", tp.Reference.Table},
		{"Total Rows", tp.TotalRowCount},
		{"Description", descriptionText},
	}

	for i, h := range header {
		labelCell := cellName(firstDataColumn+i, rowHeaderLabel)
		f.SetCellValue(sheetTitle, labelCell, h.label)
		f.SetCellStyle(sheetTitle, labelCell, labelCell, boldStyle)
		f.SetCellValue(sheetTitle, cellName(firstDataColumn+i, rowHeaderValue), h.value)
	}
}

// writeRowLabels A 列行标签
func (r *XLSXRenderer) writeRowLabels(f *excelize.File, boldStyle int) {
	for i, label := range rowLabels {
		c := cellName(1, rowDistinct+i)
		f.SetCellValue(sheetTitle, c, label)
		f.SetCellStyle(sheetTitle, c, c, boldStyle)
	}
}

// writeColumn 单个数据列：统计区 4~8 行，9 行起逐个唯一值
func (r *XLSXRenderer) writeColumn(f *excelize.File, x int, col *profile.ColumnProfile, nameStyle int) {
	f.SetCellValue(sheetTitle, cellName(x, rowDistinct), col.DistinctCount)
	setScalar(f, cellName(x, rowMostFreq), col.MostFrequentValue)
	f.SetCellValue(sheetTitle, cellName(x, rowFrequency), col.MostFrequentCount)
	f.SetCellValue(sheetTitle, cellName(x, rowDataType), col.Descriptor.DeclaredType)

	nameCell := cellName(x, rowColumnName)
	f.SetCellValue(sheetTitle, nameCell, col.Descriptor.Name)
	f.SetCellStyle(sheetTitle, nameCell, nameCell, nameStyle)

	for j, v := range col.DistinctValues {
		setScalar(f, cellName(x, rowFirstValue+j), v)
	}
}

// setScalar 写入标量，时间按格式化策略，nil 留空单元格
func setScalar(f *excelize.File, cell string, v any) {
	switch tv := v.(type) {
	case nil:
		return
	case time.Time:
		f.SetCellValue(sheetTitle, cell, formatTemporal(tv))
	case []byte:
		f.SetCellValue(sheetTitle, cell, string(tv))
	default:
		f.SetCellValue(sheetTitle, cell, v)
	}
}

// formatTemporal 时间值格式化，零点时刻退化为纯日期
func formatTemporal(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

// cellName 列行号转单元格引用，入参恒为正数
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
