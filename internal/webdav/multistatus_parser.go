package webdav

import (
	"github.com/webdav-client/internal/types"
	davxml "github.com/webdav-client/internal/webdav/xml"
)

// ========================================
// MultiStatus Parser - multistatus信封解析
// ========================================

// ParseMultiStatus 从响应体提取multistatus信封。
// 响应体可能为空或不是合法XML：任何解析失败都退化为空信封，
// 不产生错误，传输层报告的状态码保持不变。
func ParseMultiStatus(body []byte) types.MultiStatus {
	if len(body) == 0 {
		return types.MultiStatus{}
	}
	root, err := davxml.Parse(body)
	if err != nil || root == nil {
		return types.MultiStatus{}
	}

	var entries []types.MultiStatusEntry
	for _, response := range root.FindAll("response") {
		entry := types.MultiStatusEntry{
			Href: response.Find("href").Text(),
		}
		for _, propstat := range response.FindAll("propstat") {
			entry.Propstats = append(entry.Propstats, parsePropstat(propstat))
		}
		entries = append(entries, entry)
	}
	return types.MultiStatus{Entries: entries}
}

// parsePropstat 提取单个propstat组：属性列表与共享的状态行
func parsePropstat(node *davxml.Node) types.Propstat {
	var group types.Propstat
	if prop := node.Find("prop"); prop != nil {
		for _, element := range prop.Children {
			group.Properties = append(group.Properties, types.Property{
				Name:      element.Name.Local,
				Namespace: element.Name.Space,
				Value:     element.Inner,
			})
		}
	}
	if status := node.Find("status"); status != nil {
		group.Status = davxml.ParseStatusLine(status.Text())
	}
	return group
}
