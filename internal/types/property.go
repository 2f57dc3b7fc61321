package types

import (
	"fmt"
	"strings"
)

// ========================================
// Property Types - 共享的属性类型定义
// ========================================

// ArgumentError 参数前置条件错误，在调用边界立即返回
type ArgumentError struct {
	Argument string `json:"argument"`
	Reason   string `json:"reason"`
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}

// NewArgumentError 创建参数错误
func NewArgumentError(argument, reason string) *ArgumentError {
	return &ArgumentError{Argument: argument, Reason: reason}
}

// PropertyName 全限定属性名（命名空间URI + 本地名）
type PropertyName struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

// IsZero 判断属性名是否为空
func (n PropertyName) IsZero() bool {
	return strings.TrimSpace(n.Name) == ""
}

// IsDAV 判断是否属于协议保留命名空间
func (n PropertyName) IsDAV() bool {
	return n.Namespace == NamespaceDAV
}

func (n PropertyName) String() string {
	return n.Namespace + ":" + n.Name
}

// Property 属性定义：全限定名与原始值。
// Value保留服务器返回的原始文本/标记，类型化失败时也不丢弃。
type Property struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	Value     string `json:"value"`
}

// QualifiedName 返回属性的全限定名
func (p Property) QualifiedName() PropertyName {
	return PropertyName{Namespace: p.Namespace, Name: p.Name}
}

// Matches 按命名空间+本地名精确匹配
func (p Property) Matches(namespace, name string) bool {
	return p.Namespace == namespace && p.Name == name
}

// PropertyStatus 属性级状态：属性更新部分失败时按属性报告
type PropertyStatus struct {
	Name        string `json:"name"`
	Namespace   string `json:"namespace"`
	StatusCode  int    `json:"status_code"`
	Description string `json:"description"`
}

// IsSuccessful 判断属性操作是否成功
func (s PropertyStatus) IsSuccessful() bool {
	return s.StatusCode >= 200 && s.StatusCode < 300
}
