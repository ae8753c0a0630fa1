package profile

import "fmt"

// NotFound 对象类别
const (
	KindSchema = "schema"
	KindTable  = "table"
)

// ValidationError 输入校验失败，发生在建立会话之前
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("参数校验失败: %s %s", e.Field, e.Reason)
}

// NotFoundError schema 或表在元数据目录中不存在
type NotFoundError struct {
	Kind       string
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	label := "表"
	if e.Kind == KindSchema {
		label = "schema"
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("%s不存在: %s（是否想找 %s）", label, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s不存在: %s", label, e.Name)
}

// DataAccessError 数据访问失败，包装底层驱动错误
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("数据访问失败 [%s]: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// IOError 输出文件无法创建或覆盖
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("写入输出文件失败 %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
