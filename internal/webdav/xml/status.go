package xml

import (
	"strconv"
	"strings"

	"github.com/webdav-client/internal/types"
)

// ParseStatusLine 解析propstat中的状态行，形如"HTTP/1.1 200 OK"。
// 无法识别的文本不视为错误：返回Code为0、原始文本作为描述的状态，
// 让整体解析继续进行。
func ParseStatusLine(line string) types.Status {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return types.Status{}
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 2 || !strings.HasPrefix(fields[0], "HTTP/") {
		return types.Status{Description: trimmed}
	}

	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return types.Status{Description: trimmed}
	}

	return types.Status{
		Code:        code,
		Description: strings.Join(fields[2:], " "),
	}
}
