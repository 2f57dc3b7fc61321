package webdav

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdav-client/internal/types"
)

func TestDepthValues(t *testing.T) {
	tests := []struct {
		name      string
		encode    func(types.ApplyTo) (string, error)
		applyTo   types.ApplyTo
		expected  string
		expectErr bool
	}{
		{name: "PROPFIND 仅资源", encode: DepthValueForPropfind, applyTo: types.ApplyToResourceOnly, expected: "0"},
		{name: "PROPFIND 资源及子级", encode: DepthValueForPropfind, applyTo: types.ApplyToResourceAndChildren, expected: "1"},
		{name: "PROPFIND 不支持全部后代", encode: DepthValueForPropfind, applyTo: types.ApplyToResourceAndDescendants, expectErr: true},
		{name: "COPY 仅资源", encode: DepthValueForCopy, applyTo: types.ApplyToResourceOnly, expected: "0"},
		{name: "COPY 资源及全部后代", encode: DepthValueForCopy, applyTo: types.ApplyToResourceAndDescendants, expected: "infinity"},
		{name: "COPY 不支持仅子级", encode: DepthValueForCopy, applyTo: types.ApplyToResourceAndChildren, expectErr: true},
		{name: "LOCK 仅资源", encode: DepthValueForLock, applyTo: types.ApplyToResourceOnly, expected: "0"},
		{name: "LOCK 资源及全部后代", encode: DepthValueForLock, applyTo: types.ApplyToResourceAndDescendants, expected: "infinity"},
		{name: "LOCK 资源及子级非法", encode: DepthValueForLock, applyTo: types.ApplyToResourceAndChildren, expectErr: true},
		{name: "LOCK 空值非法", encode: DepthValueForLock, applyTo: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.encode(tt.applyTo)
			if tt.expectErr {
				require.Error(t, err)
				var argErr *types.ArgumentError
				assert.ErrorAs(t, err, &argErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestOverwriteValue(t *testing.T) {
	assert.Equal(t, "T", OverwriteValue(true))
	assert.Equal(t, "F", OverwriteValue(false))
}

func TestTranslateValue(t *testing.T) {
	assert.Equal(t, "t", TranslateValue(true))
	assert.Equal(t, "f", TranslateValue(false))
}

func TestDestinationValue(t *testing.T) {
	base, err := url.Parse("https://dav.example.com/store/")
	require.NoError(t, err)

	t.Run("绝对地址原样使用", func(t *testing.T) {
		value, err := DestinationValue("https://other.example.com/file.txt", base)
		require.NoError(t, err)
		assert.Equal(t, "https://other.example.com/file.txt", value)
	})

	t.Run("相对地址基于base解析", func(t *testing.T) {
		value, err := DestinationValue("docs/file.txt", base)
		require.NoError(t, err)
		assert.Equal(t, "https://dav.example.com/store/docs/file.txt", value)
	})

	t.Run("根相对地址", func(t *testing.T) {
		value, err := DestinationValue("/archive/file.txt", base)
		require.NoError(t, err)
		assert.Equal(t, "https://dav.example.com/archive/file.txt", value)
	})

	t.Run("两者都不是绝对地址时报前置条件错误", func(t *testing.T) {
		_, err := DestinationValue("docs/file.txt", nil)
		var argErr *types.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "destination", argErr.Argument)
	})

	t.Run("空地址", func(t *testing.T) {
		_, err := DestinationValue("   ", base)
		assert.Error(t, err)
	})
}

func TestIfValue(t *testing.T) {
	value, err := IfValue("opaquelocktoken:123")
	require.NoError(t, err)
	assert.Equal(t, "(<opaquelocktoken:123>)", value)

	_, err = IfValue("")
	var argErr *types.ArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestTimeoutValue(t *testing.T) {
	assert.Equal(t, "Second-600", TimeoutValue(10*time.Minute))
	assert.Equal(t, "Second-1", TimeoutValue(1500*time.Millisecond))
}

func TestLockTokenValue(t *testing.T) {
	value, err := LockTokenValue("urn:uuid:123")
	require.NoError(t, err)
	assert.Equal(t, "<urn:uuid:123>", value)

	_, err = LockTokenValue(" ")
	assert.Error(t, err)
}
