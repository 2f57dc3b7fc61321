package types

import "time"

// Resource 单个资源条目，由multistatus响应中的一个response装配而成。
// 集合资源的Href保证以"/"结尾（构造时归一化，调用方无需处理）。
type Resource struct {
	Href             string           `json:"href"`
	IsCollection     bool             `json:"is_collection"`
	IsHidden         bool             `json:"is_hidden"`
	DisplayName      string           `json:"display_name,omitempty"`
	ContentType      string           `json:"content_type,omitempty"`
	ContentLanguage  string           `json:"content_language,omitempty"`
	ContentLength    *int64           `json:"content_length,omitempty"`
	ETag             string           `json:"etag,omitempty"`
	CreationDate     *time.Time       `json:"creation_date,omitempty"`
	LastModifiedDate *time.Time       `json:"last_modified_date,omitempty"`
	Properties       []Property       `json:"properties,omitempty"`
	PropertyStatuses []PropertyStatus `json:"property_statuses,omitempty"`
	ActiveLocks      []ActiveLock     `json:"active_locks,omitempty"`
}

// FindProperty 按命名空间+本地名精确查找属性
func (r Resource) FindProperty(namespace, name string) (Property, bool) {
	for _, p := range r.Properties {
		if p.Matches(namespace, name) {
			return p, true
		}
	}
	return Property{}, false
}
