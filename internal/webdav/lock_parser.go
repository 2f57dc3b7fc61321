package webdav

import (
	"strconv"
	"strings"
	"time"

	"github.com/webdav-client/internal/types"
	davxml "github.com/webdav-client/internal/webdav/xml"
)

// ========================================
// Lock Parser - lockdiscovery片段解析
// ========================================

// ParseLockDiscovery 从lockdiscovery片段提取活动锁描述符。
// 输入既可以是LOCK响应的完整文档（prop>lockdiscovery>activelock），
// 也可以是PROPFIND属性的内部标记（直接以activelock开头）。
// 子元素缺失只让对应字段缺失，不导致整体失败。
func ParseLockDiscovery(body []byte) []types.ActiveLock {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	// 属性内部标记可能包含多个顶层activelock，先包一层解析；
	// 带XML声明的完整文档包裹后不再合法，退回直接解析
	wrapped := append([]byte("<lockdiscovery>"), body...)
	wrapped = append(wrapped, []byte("</lockdiscovery>")...)
	root, err := davxml.Parse(wrapped)
	if err != nil || root == nil {
		root, err = davxml.Parse(body)
		if err != nil || root == nil {
			return nil
		}
	}

	nodes := root.FindDescendants("activelock")
	if davxml.LocalNameEquals(root.Name, "activelock") {
		nodes = append([]*davxml.Node{root}, nodes...)
	}

	var locks []types.ActiveLock
	for _, node := range nodes {
		locks = append(locks, parseActiveLock(node))
	}
	return locks
}

// parseActiveLock 提取单个activelock元素的字段
func parseActiveLock(node *davxml.Node) types.ActiveLock {
	lock := types.ActiveLock{
		Scope:   parseLockScope(node.Find("lockscope")),
		Type:    parseLockType(node.Find("locktype")),
		Owner:   parseLockOwner(node.Find("owner")),
		ApplyTo: parseLockDepth(node.Find("depth").Text()),
		Timeout: parseLockTimeout(node.Find("timeout").Text()),
	}
	if token := node.Find("locktoken"); token != nil {
		lock.Token = token.Find("href").Text()
	}
	if lockRoot := node.Find("lockroot"); lockRoot != nil {
		lock.Root = lockRoot.Find("href").Text()
	}
	return lock
}

func parseLockScope(node *davxml.Node) types.LockScope {
	marker := node.FirstElement()
	if marker == nil {
		return ""
	}
	switch {
	case davxml.LocalNameEquals(marker.Name, "exclusive"):
		return types.LockScopeExclusive
	case davxml.LocalNameEquals(marker.Name, "shared"):
		return types.LockScopeShared
	}
	return ""
}

func parseLockType(node *davxml.Node) types.LockType {
	marker := node.FirstElement()
	if marker != nil && davxml.LocalNameEquals(marker.Name, "write") {
		return types.LockTypeWrite
	}
	return ""
}

// parseLockOwner owner既可能是纯文本，也可能是嵌套标记；
// 嵌套时原样保留内部标记
func parseLockOwner(node *davxml.Node) string {
	if node == nil {
		return ""
	}
	if len(node.Children) > 0 {
		return strings.TrimSpace(node.Inner)
	}
	return node.Text()
}

// parseLockDepth 锁深度映射与头部编码同一套0/infinity规则；
// 解析方向对服务器返回的"1"保持宽容
func parseLockDepth(text string) types.ApplyTo {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "0":
		return types.ApplyToResourceOnly
	case "1":
		return types.ApplyToResourceAndChildren
	case "infinity":
		return types.ApplyToResourceAndDescendants
	}
	return ""
}

// parseLockTimeout 超时文本解析："Second-N"为时长，"Infinite"为无限期（nil）
func parseLockTimeout(text string) *time.Duration {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, "Infinite") {
		return nil
	}
	const prefix = "Second-"
	if len(trimmed) <= len(prefix) || !strings.EqualFold(trimmed[:len(prefix)], prefix) {
		return nil
	}
	seconds, err := strconv.ParseInt(trimmed[len(prefix):], 10, 64)
	if err != nil {
		return nil
	}
	timeout := time.Duration(seconds) * time.Second
	return &timeout
}
