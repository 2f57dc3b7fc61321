package webdav

import (
	"strings"
	"time"

	"github.com/webdav-client/internal/types"
)

// ========================================
// Resource Builder - 资源装配
// ========================================

// ResourceBuilder 可变的装配中间结构，链式设置后一次性转为不可变Resource。
// 半成品不对外暴露，集合地址归一化在Build中收口。
type ResourceBuilder struct {
	href             string
	isCollection     bool
	isHidden         bool
	displayName      string
	contentType      string
	contentLanguage  string
	contentLength    *int64
	etag             string
	creationDate     *time.Time
	lastModifiedDate *time.Time
	properties       []types.Property
	propertyStatuses []types.PropertyStatus
	activeLocks      []types.ActiveLock
}

// NewResourceBuilder 创建资源装配器
func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{}
}

// WithHref 设置资源地址
func (b *ResourceBuilder) WithHref(href string) *ResourceBuilder {
	b.href = href
	return b
}

// WithIsCollection 标记为集合资源
func (b *ResourceBuilder) WithIsCollection(isCollection bool) *ResourceBuilder {
	b.isCollection = isCollection
	return b
}

// WithIsHidden 标记为隐藏资源
func (b *ResourceBuilder) WithIsHidden(isHidden bool) *ResourceBuilder {
	b.isHidden = isHidden
	return b
}

// WithDisplayName 设置显示名
func (b *ResourceBuilder) WithDisplayName(name string) *ResourceBuilder {
	b.displayName = name
	return b
}

// WithContentType 设置内容类型
func (b *ResourceBuilder) WithContentType(contentType string) *ResourceBuilder {
	b.contentType = contentType
	return b
}

// WithContentLanguage 设置内容语言
func (b *ResourceBuilder) WithContentLanguage(language string) *ResourceBuilder {
	b.contentLanguage = language
	return b
}

// WithContentLength 设置内容长度
func (b *ResourceBuilder) WithContentLength(length *int64) *ResourceBuilder {
	b.contentLength = length
	return b
}

// WithETag 设置实体标签
func (b *ResourceBuilder) WithETag(etag string) *ResourceBuilder {
	b.etag = etag
	return b
}

// WithCreationDate 设置创建时间
func (b *ResourceBuilder) WithCreationDate(date *time.Time) *ResourceBuilder {
	b.creationDate = date
	return b
}

// WithLastModifiedDate 设置修改时间
func (b *ResourceBuilder) WithLastModifiedDate(date *time.Time) *ResourceBuilder {
	b.lastModifiedDate = date
	return b
}

// WithProperties 设置完整属性列表
func (b *ResourceBuilder) WithProperties(properties []types.Property) *ResourceBuilder {
	b.properties = properties
	return b
}

// WithPropertyStatuses 设置属性级状态列表
func (b *ResourceBuilder) WithPropertyStatuses(statuses []types.PropertyStatus) *ResourceBuilder {
	b.propertyStatuses = statuses
	return b
}

// WithActiveLocks 设置活动锁列表
func (b *ResourceBuilder) WithActiveLocks(locks []types.ActiveLock) *ResourceBuilder {
	b.activeLocks = locks
	return b
}

// Build 生成不可变的Resource。集合资源的地址补齐末尾"/"，
// 只在缺失时追加，重复装配不会叠加。
func (b *ResourceBuilder) Build() types.Resource {
	href := b.href
	if b.isCollection && !strings.HasSuffix(href, "/") {
		href += "/"
	}
	return types.Resource{
		Href:             href,
		IsCollection:     b.isCollection,
		IsHidden:         b.isHidden,
		DisplayName:      b.displayName,
		ContentType:      b.contentType,
		ContentLanguage:  b.contentLanguage,
		ContentLength:    b.contentLength,
		ETag:             b.etag,
		CreationDate:     b.creationDate,
		LastModifiedDate: b.lastModifiedDate,
		Properties:       b.properties,
		PropertyStatuses: b.propertyStatuses,
		ActiveLocks:      b.activeLocks,
	}
}

// AssembleResource 把multistatus条目装配成Resource：
// 公认属性按命名空间+本地名精确匹配后做类型化，匹配不到的字段保持缺失；
// 完整属性列表与属性级状态原样保留供调用方检视。
func AssembleResource(entry types.MultiStatusEntry) types.Resource {
	var properties []types.Property
	var statuses []types.PropertyStatus
	for _, propstat := range entry.Propstats {
		for _, property := range propstat.Properties {
			properties = append(properties, property)
			statuses = append(statuses, types.PropertyStatus{
				Name:        property.Name,
				Namespace:   property.Namespace,
				StatusCode:  propstat.Status.Code,
				Description: propstat.Status.Description,
			})
		}
	}

	builder := NewResourceBuilder().
		WithHref(entry.Href).
		WithProperties(properties).
		WithPropertyStatuses(statuses).
		WithIsCollection(classifyCollection(properties))

	for _, property := range properties {
		if property.Namespace != types.NamespaceDAV {
			continue
		}
		switch property.Name {
		case types.PropDisplayName:
			builder.WithDisplayName(CoerceString(property.Value))
		case types.PropContentType:
			builder.WithContentType(CoerceString(property.Value))
		case types.PropContentLanguage:
			builder.WithContentLanguage(CoerceString(property.Value))
		case types.PropContentLength:
			builder.WithContentLength(CoerceInteger(property.Value))
		case types.PropETag:
			builder.WithETag(CoerceString(property.Value))
		case types.PropCreationDate:
			builder.WithCreationDate(CoerceDateTime(property.Value))
		case types.PropLastModified:
			builder.WithLastModifiedDate(CoerceDateTime(property.Value))
		case types.PropIsHidden:
			if hidden := CoerceInteger(property.Value); hidden != nil && *hidden > 0 {
				builder.WithIsHidden(true)
			}
		case types.PropLockDiscovery:
			builder.WithActiveLocks(ParseLockDiscovery([]byte(property.Value)))
		}
	}

	return builder.Build()
}

// classifyCollection 集合判定：iscollection整数为正，
// 或resourcetype类型化结果为Collection
func classifyCollection(properties []types.Property) bool {
	for _, property := range properties {
		if !property.Matches(types.NamespaceDAV, types.PropIsCollection) {
			continue
		}
		if flag := CoerceInteger(property.Value); flag != nil && *flag > 0 {
			return true
		}
	}
	for _, property := range properties {
		if !property.Matches(types.NamespaceDAV, types.PropResourceType) {
			continue
		}
		if CoerceResourceKind(property.Value) == ResourceKindCollection {
			return true
		}
	}
	return false
}
