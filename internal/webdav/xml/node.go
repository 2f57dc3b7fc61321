package xml

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// ========================================
// Node - 宽容的XML节点树解析
// ========================================

// Node 解析后的XML元素节点。
// Inner保留元素的原始内部标记，owner等不透明内容依赖它原样传递。
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	Inner    string

	innerStart int64
	text       strings.Builder
}

// Parse 解析XML文档并返回根节点。
// 与标准的结构体反序列化不同，节点树保留所有元素，
// 后续查找只按本地名匹配，不理会服务器各异的命名空间前缀。
func Parse(data []byte) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false

	var root *Node
	var stack []*Node

	for {
		offset := decoder.InputOffset()
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name, Attrs: t.Attr, innerStart: decoder.InputOffset()}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if node.innerStart >= 0 && node.innerStart <= offset && int(offset) <= len(data) {
				node.Inner = string(data[node.innerStart:offset])
			}
			if len(stack) == 0 {
				return root, nil
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
}

// Text 返回节点自身的字符内容（去除首尾空白）
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.text.String())
}

// LocalNameEquals 按本地名比较，忽略大小写与命名空间前缀。
// 服务器的前缀各不相同，所有解析器统一使用这个判断。
func LocalNameEquals(name xml.Name, local string) bool {
	return strings.EqualFold(name.Local, local)
}

// FindAll 返回本地名匹配的直接子节点
func (n *Node) FindAll(local string) []*Node {
	if n == nil {
		return nil
	}
	var matched []*Node
	for _, child := range n.Children {
		if LocalNameEquals(child.Name, local) {
			matched = append(matched, child)
		}
	}
	return matched
}

// Find 返回本地名匹配的第一个直接子节点，没有则返回nil
func (n *Node) Find(local string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if LocalNameEquals(child.Name, local) {
			return child
		}
	}
	return nil
}

// FindDescendants 深度优先收集本地名匹配的全部后代节点
func (n *Node) FindDescendants(local string) []*Node {
	if n == nil {
		return nil
	}
	var matched []*Node
	for _, child := range n.Children {
		if LocalNameEquals(child.Name, local) {
			matched = append(matched, child)
		}
		matched = append(matched, child.FindDescendants(local)...)
	}
	return matched
}

// FirstElement 返回第一个子元素，用于取lockscope/locktype下的标记元素
func (n *Node) FirstElement() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// HasChild 判断是否存在本地名匹配的直接子节点
func (n *Node) HasChild(local string) bool {
	return n.Find(local) != nil
}
