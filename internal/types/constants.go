package types

// ========================================
// Protocol Constants - 协议常量定义
// ========================================

// WebDAV命名空间
const (
	// NamespaceDAV 协议保留命名空间，核心属性都在这个命名空间下
	NamespaceDAV = "DAV:"
	// PrefixDAV 保留命名空间使用的固定前缀
	PrefixDAV = "D"
)

// WebDAV扩展HTTP方法
const (
	MethodPropfind  = "PROPFIND"
	MethodProppatch = "PROPPATCH"
	MethodMkcol     = "MKCOL"
	MethodCopy      = "COPY"
	MethodMove      = "MOVE"
	MethodLock      = "LOCK"
	MethodUnlock    = "UNLOCK"
)

// WebDAV协议头部
const (
	HeaderDepth       = "Depth"
	HeaderDestination = "Destination"
	HeaderOverwrite   = "Overwrite"
	HeaderIf          = "If"
	HeaderLockToken   = "Lock-Token"
	HeaderTimeout     = "Timeout"
	HeaderTranslate   = "Translate"
)

// WebDAV扩展状态码
const (
	StatusMultiStatus         = 207
	StatusUnprocessableEntity = 422
	StatusLocked              = 423
	StatusFailedDependency    = 424
	StatusInsufficientStorage = 507
)

// DAV:命名空间下的公认属性名
const (
	PropDisplayName     = "displayname"
	PropContentType     = "getcontenttype"
	PropContentLength   = "getcontentlength"
	PropContentLanguage = "getcontentlanguage"
	PropETag            = "getetag"
	PropCreationDate    = "creationdate"
	PropLastModified    = "getlastmodified"
	PropResourceType    = "resourcetype"
	PropIsHidden        = "ishidden"
	PropIsCollection    = "iscollection"
	PropLockDiscovery   = "lockdiscovery"
	PropSupportedLock   = "supportedlock"
)
