package types

import "time"

// LockType 定义锁定类型
type LockType string

const (
	LockTypeWrite LockType = "write"
)

// LockScope 定义锁定范围
type LockScope string

const (
	LockScopeExclusive LockScope = "exclusive"
	LockScopeShared    LockScope = "shared"
)

// ApplyTo 操作作用范围：仅资源本身、资源及子级、资源及全部后代
type ApplyTo string

const (
	ApplyToResourceOnly           ApplyTo = "resource-only"
	ApplyToResourceAndChildren    ApplyTo = "resource-and-children"
	ApplyToResourceAndDescendants ApplyTo = "resource-and-descendants"
)

// ActiveLock 活动锁描述符，从lockdiscovery片段解析得到。
// Timeout为nil表示无限期锁（服务器返回"Infinite"）或超时信息缺失。
type ActiveLock struct {
	Scope   LockScope      `json:"scope"`
	Type    LockType       `json:"type"`
	Owner   string         `json:"owner"`
	ApplyTo ApplyTo        `json:"apply_to"`
	Timeout *time.Duration `json:"timeout,omitempty"`
	Token   string         `json:"token"`
	Root    string         `json:"root"`
}

// LockParameters LOCK请求参数
type LockParameters struct {
	Scope   LockScope      `json:"scope"`
	Owner   string         `json:"owner"`
	ApplyTo ApplyTo        `json:"apply_to"`
	Timeout *time.Duration `json:"timeout,omitempty"`
}
