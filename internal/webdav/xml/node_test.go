package xml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdav-client/internal/types"
)

// ========================================
// Node 解析测试
// ========================================

func TestParse_PrefixAndCaseInsensitiveLookup(t *testing.T) {
	body := []byte(`<?xml version="1.0"?>
<ns0:multistatus xmlns:ns0="DAV:">
  <ns0:Response>
    <ns0:href>/docs/</ns0:href>
  </ns0:Response>
  <ns0:response>
    <ns0:href>/docs/a.txt</ns0:href>
  </ns0:response>
</ns0:multistatus>`)

	root, err := Parse(body)
	require.NoError(t, err)
	require.NotNil(t, root)

	// 本地名匹配：忽略前缀与大小写
	responses := root.FindAll("response")
	require.Len(t, responses, 2)
	assert.Equal(t, "/docs/", responses[0].Find("HREF").Text())
	assert.Equal(t, "/docs/a.txt", responses[1].Find("href").Text())
}

func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "空输入", input: ""},
		{name: "非XML文本", input: "<not-xml"},
		{name: "纯文本", input: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse([]byte(tt.input))
			assert.Error(t, err)
			assert.Nil(t, root)
		})
	}
}

func TestParse_EmptyRoot(t *testing.T) {
	root, err := Parse([]byte("<multistatus xmlns=\"DAV:\"/>"))
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Empty(t, root.FindAll("response"))
	assert.Empty(t, root.Text())
}

func TestParse_InnerMarkupPreserved(t *testing.T) {
	body := []byte(`<owner><href>http://example.com/~alice</href></owner>`)
	root, err := Parse(body)
	require.NoError(t, err)
	assert.Equal(t, "<href>http://example.com/~alice</href>", root.Inner)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "http://example.com/~alice", root.Children[0].Text())
}

func TestFindDescendants(t *testing.T) {
	body := []byte(`<prop><lockdiscovery><activelock/><activelock/></lockdiscovery></prop>`)
	root, err := Parse(body)
	require.NoError(t, err)
	assert.Len(t, root.FindDescendants("activelock"), 2)
}

func TestNilNodeAccessors(t *testing.T) {
	var node *Node
	assert.Empty(t, node.Text())
	assert.Nil(t, node.Find("any"))
	assert.Empty(t, node.FindAll("any"))
	assert.Nil(t, node.FirstElement())
}

// ========================================
// 状态行解析测试
// ========================================

func TestParseStatusLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected types.Status
	}{
		{
			name:     "标准状态行",
			line:     "HTTP/1.1 200 OK",
			expected: types.Status{Code: 200, Description: "OK"},
		},
		{
			name:     "多词描述",
			line:     "HTTP/1.1 424 Failed Dependency",
			expected: types.Status{Code: 424, Description: "Failed Dependency"},
		},
		{
			name:     "无描述",
			line:     "HTTP/1.0 404",
			expected: types.Status{Code: 404, Description: ""},
		},
		{
			name:     "首尾空白",
			line:     "  HTTP/1.1 207 Multi-Status  ",
			expected: types.Status{Code: 207, Description: "Multi-Status"},
		},
		{
			name:     "无法识别的文本保留为描述",
			line:     "garbage",
			expected: types.Status{Code: 0, Description: "garbage"},
		},
		{
			name:     "状态码不是数字",
			line:     "HTTP/1.1 abc OK",
			expected: types.Status{Code: 0, Description: "HTTP/1.1 abc OK"},
		},
		{
			name:     "空字符串",
			line:     "",
			expected: types.Status{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStatusLine(tt.line))
		})
	}
}
