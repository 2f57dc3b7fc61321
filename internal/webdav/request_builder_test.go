package webdav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdav-client/internal/types"
	davxml "github.com/webdav-client/internal/webdav/xml"
)

func TestBuildPropfind_RoundTripNaming(t *testing.T) {
	names := []types.PropertyName{
		{Namespace: types.NamespaceDAV, Name: "displayname"},
		{Namespace: "urn:example:custom", Name: "color"},
		{Namespace: "urn:example:custom", Name: "shape"},
		{Namespace: "urn:example:other", Name: "color"},
	}

	body, err := NewRequestBuilder().BuildPropfind(names)
	require.NoError(t, err)

	root, err := davxml.Parse(body)
	require.NoError(t, err)
	require.True(t, davxml.LocalNameEquals(root.Name, "propfind"))
	assert.Equal(t, types.NamespaceDAV, root.Name.Space)

	prop := root.Find("prop")
	require.NotNil(t, prop)
	require.Len(t, prop.Children, len(names))

	// 解析产物还原出完全相同的限定名集合
	recovered := make([]types.PropertyName, 0, len(names))
	for _, child := range prop.Children {
		recovered = append(recovered, types.PropertyName{
			Namespace: child.Name.Space,
			Name:      child.Name.Local,
		})
	}
	assert.Equal(t, names, recovered)

	// 相同URI复用同一前缀，不同URI前缀互不冲突
	raw := string(body)
	assert.Equal(t, 1, strings.Count(raw, `xmlns:P1="urn:example:custom"`))
	assert.Equal(t, 1, strings.Count(raw, `xmlns:P2="urn:example:other"`))
}

func TestBuildPropfind_DefaultsToAllprop(t *testing.T) {
	body, err := NewRequestBuilder().BuildPropfind(nil)
	require.NoError(t, err)

	root, err := davxml.Parse(body)
	require.NoError(t, err)
	assert.True(t, root.HasChild("allprop"))
	assert.Nil(t, root.Find("prop"))
}

func TestBuildPropfind_EmptyNameRejected(t *testing.T) {
	_, err := NewRequestBuilder().BuildPropfind([]types.PropertyName{{Namespace: "urn:x", Name: "  "}})
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestBuildPropfind_PrefixHint(t *testing.T) {
	builder := NewRequestBuilder().WithPrefixHint("urn:example:custom", "c")
	body, err := builder.BuildPropfind([]types.PropertyName{{Namespace: "urn:example:custom", Name: "color"}})
	require.NoError(t, err)
	assert.Contains(t, string(body), `xmlns:c="urn:example:custom"`)
	assert.Contains(t, string(body), "<c:color/>")
}

func TestBuildProppatch(t *testing.T) {
	set := []types.Property{
		{Namespace: "urn:example:custom", Name: "color", Value: "blue & <green>"},
		{Namespace: types.NamespaceDAV, Name: "displayname", Value: "Docs"},
	}
	remove := []types.PropertyName{
		{Namespace: "urn:example:custom", Name: "shape"},
	}

	body, err := NewRequestBuilder().BuildProppatch(set, remove)
	require.NoError(t, err)

	root, err := davxml.Parse(body)
	require.NoError(t, err)
	require.True(t, davxml.LocalNameEquals(root.Name, "propertyupdate"))

	setProp := root.Find("set").Find("prop")
	require.NotNil(t, setProp)
	require.Len(t, setProp.Children, 2)
	assert.Equal(t, "color", setProp.Children[0].Name.Local)
	assert.Equal(t, "urn:example:custom", setProp.Children[0].Name.Space)
	// 值中的特殊字符被转义后可无损还原
	assert.Equal(t, "blue & <green>", setProp.Children[0].Text())

	removeProp := root.Find("remove").Find("prop")
	require.NotNil(t, removeProp)
	require.Len(t, removeProp.Children, 1)
	assert.Equal(t, "shape", removeProp.Children[0].Name.Local)
}

func TestBuildProppatch_RequiresOperations(t *testing.T) {
	_, err := NewRequestBuilder().BuildProppatch(nil, nil)
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestBuildLock(t *testing.T) {
	body, err := NewRequestBuilder().BuildLock(types.LockParameters{
		Scope: types.LockScopeExclusive,
		Owner: "alice",
	})
	require.NoError(t, err)

	root, err := davxml.Parse(body)
	require.NoError(t, err)
	require.True(t, davxml.LocalNameEquals(root.Name, "lockinfo"))
	assert.True(t, root.Find("lockscope").HasChild("exclusive"))
	assert.True(t, root.Find("locktype").HasChild("write"))
	assert.Equal(t, "alice", root.Find("owner").Text())
}

func TestBuildLock_SharedWithoutOwner(t *testing.T) {
	body, err := NewRequestBuilder().BuildLock(types.LockParameters{Scope: types.LockScopeShared})
	require.NoError(t, err)

	root, err := davxml.Parse(body)
	require.NoError(t, err)
	assert.True(t, root.Find("lockscope").HasChild("shared"))
	assert.Nil(t, root.Find("owner"))
}

func TestBuildLock_InvalidScope(t *testing.T) {
	_, err := NewRequestBuilder().BuildLock(types.LockParameters{Scope: "advisory"})
	var argErr *types.ArgumentError
	require.ErrorAs(t, err, &argErr)
}
