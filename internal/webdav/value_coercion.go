package webdav

import (
	"strconv"
	"strings"
	"time"

	davxml "github.com/webdav-client/internal/webdav/xml"
)

// ========================================
// Value Coercion - 属性值类型化
// ========================================
//
// 所有转换都不报错：值缺失或无法解析时返回"缺失"（nil/零值），
// 原始文本始终保留在Property.Value中供调用方自行处理。

// ResourceKind 资源类别标记
type ResourceKind string

const (
	ResourceKindUnknown    ResourceKind = ""
	ResourceKindCollection ResourceKind = "collection"
	ResourceKindOther      ResourceKind = "other"
)

// 日期解析依次尝试的格式：HTTP-date在前，ISO-8601在后，先成功者生效
var dateTimeFormats = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// decodeCharacterData 把属性的原始内部标记还原成字符数据：
// 实体引用解码、去除首尾空白。解析失败时退回原始文本。
func decodeCharacterData(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.ContainsAny(trimmed, "&<") {
		return trimmed
	}
	root, err := davxml.Parse([]byte("<v>" + trimmed + "</v>"))
	if err != nil {
		return trimmed
	}
	return root.Text()
}

// CoerceString 字符串转换：解码实体引用后去除首尾空白
func CoerceString(raw string) string {
	return decodeCharacterData(raw)
}

// CoerceInteger 十进制整数转换。非数字文本返回nil而不是0，
// 调用方由此区分"缺失"与"值为零"。
func CoerceInteger(raw string) *int64 {
	trimmed := decodeCharacterData(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// CoerceDateTime 日期时间转换，全部格式失败时返回nil
func CoerceDateTime(raw string) *time.Time {
	trimmed := decodeCharacterData(raw)
	if trimmed == "" {
		return nil
	}
	for _, format := range dateTimeFormats {
		if parsed, err := time.Parse(format, trimmed); err == nil {
			return &parsed
		}
	}
	return nil
}

// CoerceResourceKind 资源类别转换：检查子标记中是否存在collection元素，
// 存在为Collection，否则为Other。raw是resourcetype属性的原始内部标记；
// 属性本身缺失时调用方不调用本函数，回退到iscollection整数标记。
func CoerceResourceKind(raw string) ResourceKind {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ResourceKindOther
	}
	wrapped := []byte("<resourcetype>" + trimmed + "</resourcetype>")
	root, err := davxml.Parse(wrapped)
	if err != nil {
		return ResourceKindUnknown
	}
	if root.HasChild("collection") {
		return ResourceKindCollection
	}
	return ResourceKindOther
}
