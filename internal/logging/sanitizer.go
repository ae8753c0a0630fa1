package logging

import "regexp"

// 连接串里可能出现密码的三种写法：URL、MySQL DSN、键值对
var (
	urlPasswordPattern   = regexp.MustCompile(`(://[^:/@\s]+):([^@\s]+)@`)
	mysqlPasswordPattern = regexp.MustCompile(`([A-Za-z0-9_.-]+):([^@\s]+)@tcp\(`)
	kvPasswordPattern    = regexp.MustCompile(`(?i)(password|passwd|pwd)=([^;&\s]+)`)
)

// SanitizeConnectionString 隐去连接串中的密码
func SanitizeConnectionString(s string) string {
	s = urlPasswordPattern.ReplaceAllString(s, `$1:*****@`)
	s = mysqlPasswordPattern.ReplaceAllString(s, `$1:*****@tcp(`)
	s = kvPasswordPattern.ReplaceAllString(s, `$1=*****`)
	return s
}

// SanitizeError 驱动错误可能回显连接串，输出前隐去密码
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeConnectionString(err.Error())
}
