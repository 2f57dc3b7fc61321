package webdav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdav-client/internal/types"
)

func TestParseLockDiscovery_FullDocument(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8"?>
<D:prop xmlns:D="DAV:">
  <D:lockdiscovery>
    <D:activelock>
      <D:lockscope><D:exclusive/></D:lockscope>
      <D:locktype><D:write/></D:locktype>
      <D:depth>infinity</D:depth>
      <D:owner>alice</D:owner>
      <D:timeout>Second-600</D:timeout>
      <D:locktoken><D:href>urn:uuid:123</D:href></D:locktoken>
      <D:lockroot><D:href>/store/docs/</D:href></D:lockroot>
    </D:activelock>
  </D:lockdiscovery>
</D:prop>`)

	locks := ParseLockDiscovery(body)
	require.Len(t, locks, 1)

	lock := locks[0]
	assert.Equal(t, types.LockScopeExclusive, lock.Scope)
	assert.Equal(t, types.LockTypeWrite, lock.Type)
	assert.Equal(t, "alice", lock.Owner)
	assert.Equal(t, types.ApplyToResourceAndDescendants, lock.ApplyTo)
	require.NotNil(t, lock.Timeout)
	assert.Equal(t, 600*time.Second, *lock.Timeout)
	assert.Equal(t, "urn:uuid:123", lock.Token)
	assert.Equal(t, "/store/docs/", lock.Root)
}

func TestParseLockDiscovery_PropertyFragment(t *testing.T) {
	// PROPFIND属性的内部标记：多个顶层activelock，无XML声明
	fragment := []byte(`<activelock>
  <lockscope><shared/></lockscope>
  <locktype><write/></locktype>
  <depth>0</depth>
  <timeout>Infinite</timeout>
  <locktoken><href>opaquelocktoken:aaa</href></locktoken>
</activelock><activelock>
  <lockscope><exclusive/></lockscope>
  <locktype><write/></locktype>
  <depth>1</depth>
  <locktoken><href>opaquelocktoken:bbb</href></locktoken>
</activelock>`)

	locks := ParseLockDiscovery(fragment)
	require.Len(t, locks, 2)

	assert.Equal(t, types.LockScopeShared, locks[0].Scope)
	assert.Equal(t, types.ApplyToResourceOnly, locks[0].ApplyTo)
	assert.Nil(t, locks[0].Timeout, "Infinite映射为无限期")
	assert.Equal(t, "opaquelocktoken:aaa", locks[0].Token)

	// 解析方向对服务器返回的depth "1"保持宽容
	assert.Equal(t, types.ApplyToResourceAndChildren, locks[1].ApplyTo)
	assert.Nil(t, locks[1].Timeout)
}

func TestParseLockDiscovery_StructuredOwner(t *testing.T) {
	body := []byte(`<activelock>
  <lockscope><exclusive/></lockscope>
  <locktype><write/></locktype>
  <owner><href>http://example.com/~alice</href></owner>
</activelock>`)

	locks := ParseLockDiscovery(body)
	require.Len(t, locks, 1)
	assert.Equal(t, "<href>http://example.com/~alice</href>", locks[0].Owner)
}

func TestParseLockDiscovery_AbsentFields(t *testing.T) {
	locks := ParseLockDiscovery([]byte("<activelock/>"))
	require.Len(t, locks, 1)

	lock := locks[0]
	assert.Empty(t, lock.Scope)
	assert.Empty(t, lock.Type)
	assert.Empty(t, lock.Owner)
	assert.Empty(t, lock.ApplyTo)
	assert.Nil(t, lock.Timeout)
	assert.Empty(t, lock.Token)
	assert.Empty(t, lock.Root)
}

func TestParseLockDiscovery_Degradation(t *testing.T) {
	assert.Empty(t, ParseLockDiscovery(nil))
	assert.Empty(t, ParseLockDiscovery([]byte("   ")))
	assert.Empty(t, ParseLockDiscovery([]byte("<<<")))
	assert.Empty(t, ParseLockDiscovery([]byte(`<prop xmlns="DAV:"/>`)))
}

func TestParseLockTimeoutText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *time.Duration
	}{
		{name: "Second格式", text: "Second-3600", expected: durationPtr(time.Hour)},
		{name: "大小写不敏感", text: "second-60", expected: durationPtr(time.Minute)},
		{name: "Infinite", text: "Infinite", expected: nil},
		{name: "空文本", text: "", expected: nil},
		{name: "非法数字", text: "Second-abc", expected: nil},
		{name: "无法识别的格式", text: "3600", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLockTimeout(tt.text))
		})
	}
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
