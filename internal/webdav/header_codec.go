package webdav

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/webdav-client/internal/types"
)

// ========================================
// Header Codec - 操作参数到头部值的纯映射
// ========================================

// DepthValueForPropfind PROPFIND的Depth值："0"仅资源本身，"1"资源及子级
func DepthValueForPropfind(applyTo types.ApplyTo) (string, error) {
	switch applyTo {
	case types.ApplyToResourceOnly:
		return "0", nil
	case types.ApplyToResourceAndChildren:
		return "1", nil
	default:
		return "", types.NewArgumentError("applyTo", fmt.Sprintf("unsupported PROPFIND depth %q", applyTo))
	}
}

// DepthValueForCopy COPY的Depth值："0"或"infinity"
func DepthValueForCopy(applyTo types.ApplyTo) (string, error) {
	switch applyTo {
	case types.ApplyToResourceOnly:
		return "0", nil
	case types.ApplyToResourceAndDescendants:
		return "infinity", nil
	default:
		return "", types.NewArgumentError("applyTo", fmt.Sprintf("unsupported COPY depth %q", applyTo))
	}
}

// DepthValueForLock LOCK的Depth值：协议只允许"0"和"infinity"，
// 资源及子级（"1"）对锁定非法
func DepthValueForLock(applyTo types.ApplyTo) (string, error) {
	switch applyTo {
	case types.ApplyToResourceOnly:
		return "0", nil
	case types.ApplyToResourceAndDescendants:
		return "infinity", nil
	default:
		return "", types.NewArgumentError("applyTo", fmt.Sprintf("unsupported LOCK depth %q", applyTo))
	}
}

// OverwriteValue COPY/MOVE的Overwrite值
func OverwriteValue(overwrite bool) string {
	if overwrite {
		return "T"
	}
	return "F"
}

// TranslateValue Translate值："t"取原始文件，"f"取处理后内容
func TranslateValue(raw bool) string {
	if raw {
		return "t"
	}
	return "f"
}

// DestinationValue 目标地址：相对地址基于base解析为绝对地址，
// 两者都不是绝对地址时返回前置条件错误
func DestinationValue(destination string, base *url.URL) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", types.NewArgumentError("destination", "must not be empty")
	}
	parsed, err := url.Parse(destination)
	if err != nil {
		return "", types.NewArgumentError("destination", fmt.Sprintf("not a valid address: %v", err))
	}
	if parsed.IsAbs() {
		return parsed.String(), nil
	}
	if base == nil || !base.IsAbs() {
		return "", types.NewArgumentError("destination", "relative address requires an absolute base address")
	}
	return base.ResolveReference(parsed).String(), nil
}

// IfValue 条件头部的锁令牌值，包装为"(<token>)"；
// 多个令牌作为多个If头部条目分别发送
func IfValue(lockToken string) (string, error) {
	if strings.TrimSpace(lockToken) == "" {
		return "", types.NewArgumentError("lockToken", "must not be empty")
	}
	return "(<" + lockToken + ">)", nil
}

// TimeoutValue LOCK的Timeout值：Second-N，N为整秒数
func TimeoutValue(timeout time.Duration) string {
	return fmt.Sprintf("Second-%d", int64(timeout.Seconds()))
}

// LockTokenValue UNLOCK的Lock-Token值，包装为"<token>"
func LockTokenValue(lockToken string) (string, error) {
	if strings.TrimSpace(lockToken) == "" {
		return "", types.NewArgumentError("lockToken", "must not be empty")
	}
	return "<" + lockToken + ">", nil
}
