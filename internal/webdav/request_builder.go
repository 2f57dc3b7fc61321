package webdav

import (
	"fmt"
	"strings"

	"github.com/webdav-client/internal/types"
)

// ========================================
// Request Builder - 请求体构建
// ========================================

// RequestBuilder XML请求体构建器。
// 保留命名空间固定绑定到前缀D；调用方命名空间逐个分配互不冲突的前缀，
// 相同URI复用同一前缀，保证请求中每个属性名都能无歧义还原。
type RequestBuilder struct {
	prefixHints map[string]string
}

// NewRequestBuilder 创建请求构建器
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		prefixHints: make(map[string]string),
	}
}

// WithPrefixHint 为命名空间指定期望的前缀；
// 与已有前缀冲突时回落到自动分配
func (b *RequestBuilder) WithPrefixHint(namespace, prefix string) *RequestBuilder {
	if namespace != "" && prefix != "" {
		b.prefixHints[namespace] = prefix
	}
	return b
}

// BuildPropfind 构建属性查询请求体。
// 未指定任何属性时表示查询全部属性（allprop标记）。
func (b *RequestBuilder) BuildPropfind(names []types.PropertyName) ([]byte, error) {
	if err := validatePropertyNames(names); err != nil {
		return nil, err
	}

	prefixes := b.allocatePrefixes(namespacesOf(names))
	var buf strings.Builder
	buf.WriteString(xmlDeclaration)
	buf.WriteString("<" + types.PrefixDAV + ":propfind")
	writeNamespaceDeclarations(&buf, prefixes)
	buf.WriteString(">")

	if len(names) == 0 {
		buf.WriteString("<" + types.PrefixDAV + ":allprop/>")
	} else {
		buf.WriteString("<" + types.PrefixDAV + ":prop>")
		for _, name := range names {
			buf.WriteString("<" + prefixes.qualify(name) + "/>")
		}
		buf.WriteString("</" + types.PrefixDAV + ":prop>")
	}

	buf.WriteString("</" + types.PrefixDAV + ":propfind>")
	return []byte(buf.String()), nil
}

// BuildProppatch 构建属性更新请求体（set/remove操作）
func (b *RequestBuilder) BuildProppatch(set []types.Property, remove []types.PropertyName) ([]byte, error) {
	if len(set) == 0 && len(remove) == 0 {
		return nil, types.NewArgumentError("set", "at least one property to set or remove is required")
	}
	setNames := make([]types.PropertyName, 0, len(set))
	for _, property := range set {
		setNames = append(setNames, property.QualifiedName())
	}
	if err := validatePropertyNames(setNames); err != nil {
		return nil, err
	}
	if err := validatePropertyNames(remove); err != nil {
		return nil, err
	}

	prefixes := b.allocatePrefixes(append(namespacesOf(setNames), namespacesOf(remove)...))
	var buf strings.Builder
	buf.WriteString(xmlDeclaration)
	buf.WriteString("<" + types.PrefixDAV + ":propertyupdate")
	writeNamespaceDeclarations(&buf, prefixes)
	buf.WriteString(">")

	if len(set) > 0 {
		buf.WriteString("<" + types.PrefixDAV + ":set><" + types.PrefixDAV + ":prop>")
		for _, property := range set {
			qualified := prefixes.qualify(property.QualifiedName())
			buf.WriteString("<" + qualified + ">" + escapeXML(property.Value) + "</" + qualified + ">")
		}
		buf.WriteString("</" + types.PrefixDAV + ":prop></" + types.PrefixDAV + ":set>")
	}
	if len(remove) > 0 {
		buf.WriteString("<" + types.PrefixDAV + ":remove><" + types.PrefixDAV + ":prop>")
		for _, name := range remove {
			buf.WriteString("<" + prefixes.qualify(name) + "/>")
		}
		buf.WriteString("</" + types.PrefixDAV + ":prop></" + types.PrefixDAV + ":remove>")
	}

	buf.WriteString("</" + types.PrefixDAV + ":propertyupdate>")
	return []byte(buf.String()), nil
}

// BuildLock 构建锁定请求体
func (b *RequestBuilder) BuildLock(parameters types.LockParameters) ([]byte, error) {
	var scope string
	switch parameters.Scope {
	case types.LockScopeExclusive:
		scope = "exclusive"
	case types.LockScopeShared:
		scope = "shared"
	default:
		return nil, types.NewArgumentError("scope", fmt.Sprintf("unsupported lock scope %q", parameters.Scope))
	}

	var buf strings.Builder
	buf.WriteString(xmlDeclaration)
	buf.WriteString("<" + types.PrefixDAV + ":lockinfo xmlns:" + types.PrefixDAV + "=\"" + types.NamespaceDAV + "\">")
	buf.WriteString("<" + types.PrefixDAV + ":lockscope><" + types.PrefixDAV + ":" + scope + "/></" + types.PrefixDAV + ":lockscope>")
	buf.WriteString("<" + types.PrefixDAV + ":locktype><" + types.PrefixDAV + ":write/></" + types.PrefixDAV + ":locktype>")
	if parameters.Owner != "" {
		buf.WriteString("<" + types.PrefixDAV + ":owner>" + escapeXML(parameters.Owner) + "</" + types.PrefixDAV + ":owner>")
	}
	buf.WriteString("</" + types.PrefixDAV + ":lockinfo>")
	return []byte(buf.String()), nil
}

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>`

// prefixTable 命名空间到前缀的分配结果，保持声明顺序稳定
type prefixTable struct {
	byNamespace map[string]string
	order       []string
}

// allocatePrefixes 为调用方命名空间分配前缀：提示优先，冲突或缺失时
// 生成P1、P2等递增前缀；同一URI只分配一次
func (b *RequestBuilder) allocatePrefixes(namespaces []string) *prefixTable {
	table := &prefixTable{byNamespace: make(map[string]string)}
	used := map[string]bool{types.PrefixDAV: true}
	next := 1

	for _, namespace := range namespaces {
		if namespace == "" || namespace == types.NamespaceDAV {
			continue
		}
		if _, assigned := table.byNamespace[namespace]; assigned {
			continue
		}
		prefix := b.prefixHints[namespace]
		if prefix == "" || used[prefix] {
			for {
				prefix = fmt.Sprintf("P%d", next)
				next++
				if !used[prefix] {
					break
				}
			}
		}
		used[prefix] = true
		table.byNamespace[namespace] = prefix
		table.order = append(table.order, namespace)
	}
	return table
}

// qualify 把属性名转成带前缀的元素名
func (t *prefixTable) qualify(name types.PropertyName) string {
	if name.Namespace == types.NamespaceDAV {
		return types.PrefixDAV + ":" + name.Name
	}
	if prefix, ok := t.byNamespace[name.Namespace]; ok {
		return prefix + ":" + name.Name
	}
	return name.Name
}

// writeNamespaceDeclarations 在根元素上声明保留命名空间与全部调用方命名空间
func writeNamespaceDeclarations(buf *strings.Builder, prefixes *prefixTable) {
	buf.WriteString(" xmlns:" + types.PrefixDAV + "=\"" + types.NamespaceDAV + "\"")
	for _, namespace := range prefixes.order {
		buf.WriteString(" xmlns:" + prefixes.byNamespace[namespace] + "=\"" + escapeXML(namespace) + "\"")
	}
}

// namespacesOf 收集属性名中的命名空间URI
func namespacesOf(names []types.PropertyName) []string {
	namespaces := make([]string, 0, len(names))
	for _, name := range names {
		namespaces = append(namespaces, name.Namespace)
	}
	return namespaces
}

// validatePropertyNames 属性名前置检查：本地名不能为空
func validatePropertyNames(names []types.PropertyName) error {
	for _, name := range names {
		if name.IsZero() {
			return types.NewArgumentError("names", "property name must not be empty")
		}
	}
	return nil
}

// escapeXML 转义XML特殊字符
func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
