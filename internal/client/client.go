package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/webdav-client/internal/config"
	"github.com/webdav-client/internal/types"
	"github.com/webdav-client/internal/webdav"
)

// ========================================
// Client - 高层操作封装
// ========================================

const contentTypeXML = "application/xml; charset=utf-8"

// Client WebDAV客户端：参数校验 → 编码头部/请求体 → 传输 → 解析响应
type Client struct {
	base               *url.URL
	transport          Transport
	builder            *webdav.RequestBuilder
	logger             *logrus.Logger
	defaultLockTimeout time.Duration
}

// New 按配置创建客户端，使用默认的net/http传输
func New(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	base, err := cfg.BaseURL()
	if err != nil {
		return nil, err
	}
	transport := NewHTTPTransport(HTTPTransportOptions{
		Timeout:  cfg.Client.Timeout,
		Username: cfg.Client.Username,
		Password: cfg.Client.Password,
		Logger:   logger,
	})
	return NewWithTransport(base, transport, logger, cfg.Client.DefaultLockTimeout), nil
}

// NewWithTransport 使用自定义传输创建客户端
func NewWithTransport(base *url.URL, transport Transport, logger *logrus.Logger, defaultLockTimeout time.Duration) *Client {
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		base:               base,
		transport:          transport,
		builder:            webdav.NewRequestBuilder(),
		logger:             logger,
		defaultLockTimeout: defaultLockTimeout,
	}
}

// resolve 字符串地址解析：绝对地址直接使用，相对地址基于base解析
func (c *Client) resolve(path string) (*url.URL, error) {
	if strings.TrimSpace(path) == "" {
		return nil, types.NewArgumentError("path", "must not be empty")
	}
	parsed, err := url.Parse(path)
	if err != nil {
		return nil, types.NewArgumentError("path", err.Error())
	}
	if parsed.IsAbs() {
		return parsed, nil
	}
	if c.base == nil {
		return nil, types.NewArgumentError("path", "relative address requires a configured base address")
	}
	return c.base.ResolveReference(parsed), nil
}

// Propfind 属性查询。names为空时查询全部属性。
func (c *Client) Propfind(ctx context.Context, path string, applyTo types.ApplyTo, names ...types.PropertyName) (*types.PropfindResponse, error) {
	address, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	depth, err := webdav.DepthValueForPropfind(applyTo)
	if err != nil {
		return nil, err
	}
	body, err := c.builder.BuildPropfind(names)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set(types.HeaderDepth, depth)
	header.Set("Content-Type", contentTypeXML)

	raw, err := c.transport.Send(ctx, address, types.MethodPropfind, header, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	response := webdav.PropfindResponseParser{}.Parse(raw.Body, raw.StatusCode, raw.Description)
	return &response, nil
}

// Proppatch 属性更新（设置与移除），持有锁时附带锁令牌
func (c *Client) Proppatch(ctx context.Context, path string, set []types.Property, remove []types.PropertyName, lockTokens ...string) (*types.ProppatchResponse, error) {
	address, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	body, err := c.builder.BuildProppatch(set, remove)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set("Content-Type", contentTypeXML)
	if err := addLockTokens(header, lockTokens); err != nil {
		return nil, err
	}

	raw, err := c.transport.Send(ctx, address, types.MethodProppatch, header, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	response := webdav.ProppatchResponseParser{}.Parse(raw.Body, raw.StatusCode, raw.Description)
	return &response, nil
}

// Mkcol 创建集合资源
func (c *Client) Mkcol(ctx context.Context, path string) (*types.OperationResponse, error) {
	return c.simple(ctx, types.MethodMkcol, path, nil, nil)
}

// Delete 删除资源
func (c *Client) Delete(ctx context.Context, path string, lockTokens ...string) (*types.OperationResponse, error) {
	header := http.Header{}
	if err := addLockTokens(header, lockTokens); err != nil {
		return nil, err
	}
	return c.simple(ctx, http.MethodDelete, path, header, nil)
}

// Copy 复制资源。applyTo只支持资源本身或资源及全部后代。
func (c *Client) Copy(ctx context.Context, source, destination string, applyTo types.ApplyTo, overwrite bool) (*types.OperationResponse, error) {
	depth, err := webdav.DepthValueForCopy(applyTo)
	if err != nil {
		return nil, err
	}
	destinationValue, err := webdav.DestinationValue(destination, c.base)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set(types.HeaderDepth, depth)
	header.Set(types.HeaderDestination, destinationValue)
	header.Set(types.HeaderOverwrite, webdav.OverwriteValue(overwrite))
	return c.simple(ctx, types.MethodCopy, source, header, nil)
}

// Move 移动资源
func (c *Client) Move(ctx context.Context, source, destination string, overwrite bool, lockTokens ...string) (*types.OperationResponse, error) {
	destinationValue, err := webdav.DestinationValue(destination, c.base)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set(types.HeaderDestination, destinationValue)
	header.Set(types.HeaderOverwrite, webdav.OverwriteValue(overwrite))
	if err := addLockTokens(header, lockTokens); err != nil {
		return nil, err
	}
	return c.simple(ctx, types.MethodMove, source, header, nil)
}

// FileResponse GET响应：状态信息加原始内容
type FileResponse struct {
	types.OperationResponse
	Body []byte
}

// Get 获取资源内容。raw为true时请求未经处理的原始文件（Translate: t）。
func (c *Client) Get(ctx context.Context, path string, raw bool) (*FileResponse, error) {
	address, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set(types.HeaderTranslate, webdav.TranslateValue(raw))

	result, err := c.transport.Send(ctx, address, http.MethodGet, header, nil)
	if err != nil {
		return nil, err
	}
	return &FileResponse{
		OperationResponse: webdav.NewOperationResponse(result.StatusCode, result.Description),
		Body:              result.Body,
	}, nil
}

// Put 上传资源内容
func (c *Client) Put(ctx context.Context, path string, body io.Reader, lockTokens ...string) (*types.OperationResponse, error) {
	header := http.Header{}
	if err := addLockTokens(header, lockTokens); err != nil {
		return nil, err
	}
	return c.simple(ctx, http.MethodPut, path, header, body)
}

// Lock 锁定资源。作用范围只允许资源本身或资源及全部后代。
func (c *Client) Lock(ctx context.Context, path string, parameters types.LockParameters) (*types.LockResponse, error) {
	address, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	applyTo := parameters.ApplyTo
	if applyTo == "" {
		applyTo = types.ApplyToResourceOnly
	}
	depth, err := webdav.DepthValueForLock(applyTo)
	if err != nil {
		return nil, err
	}
	body, err := c.builder.BuildLock(parameters)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set(types.HeaderDepth, depth)
	header.Set("Content-Type", contentTypeXML)
	if timeout := c.lockTimeout(parameters.Timeout); timeout != nil {
		header.Set(types.HeaderTimeout, webdav.TimeoutValue(*timeout))
	}

	raw, err := c.transport.Send(ctx, address, types.MethodLock, header, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	response := webdav.LockResponseParser{}.Parse(raw.Body, raw.StatusCode, raw.Description)
	return &response, nil
}

// RefreshLock 刷新既有锁：不带请求体的LOCK加If条件头部
func (c *Client) RefreshLock(ctx context.Context, path, lockToken string, timeout *time.Duration) (*types.LockResponse, error) {
	address, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	condition, err := webdav.IfValue(lockToken)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set(types.HeaderIf, condition)
	if resolved := c.lockTimeout(timeout); resolved != nil {
		header.Set(types.HeaderTimeout, webdav.TimeoutValue(*resolved))
	}

	raw, err := c.transport.Send(ctx, address, types.MethodLock, header, nil)
	if err != nil {
		return nil, err
	}
	response := webdav.LockResponseParser{}.Parse(raw.Body, raw.StatusCode, raw.Description)
	return &response, nil
}

// Unlock 解除锁定
func (c *Client) Unlock(ctx context.Context, path, lockToken string) (*types.OperationResponse, error) {
	value, err := webdav.LockTokenValue(lockToken)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set(types.HeaderLockToken, value)
	return c.simple(ctx, types.MethodUnlock, path, header, nil)
}

// simple 无载荷操作的公共路径
func (c *Client) simple(ctx context.Context, method, path string, header http.Header, body io.Reader) (*types.OperationResponse, error) {
	address, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	if header == nil {
		header = http.Header{}
	}

	raw, err := c.transport.Send(ctx, address, method, header, body)
	if err != nil {
		return nil, err
	}
	c.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": raw.StatusCode,
	}).Debug("operation finished")

	response := webdav.NewOperationResponse(raw.StatusCode, raw.Description)
	return &response, nil
}

// lockTimeout 解析锁超时：参数优先，其次配置默认值，都没有则不发送Timeout
func (c *Client) lockTimeout(timeout *time.Duration) *time.Duration {
	if timeout != nil {
		return timeout
	}
	if c.defaultLockTimeout > 0 {
		resolved := c.defaultLockTimeout
		return &resolved
	}
	return nil
}

// addLockTokens 逐个令牌追加独立的If头部条目
func addLockTokens(header http.Header, lockTokens []string) error {
	for _, lockToken := range lockTokens {
		value, err := webdav.IfValue(lockToken)
		if err != nil {
			return err
		}
		header.Add(types.HeaderIf, value)
	}
	return nil
}
