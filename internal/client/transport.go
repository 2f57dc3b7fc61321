package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ========================================
// Transport - 传输协作者
// ========================================

// Response 传输层返回的原始结果
type Response struct {
	StatusCode  int
	Description string
	Body        []byte
}

// Transport 传输协作者契约：发送一次请求，返回状态码、描述与响应体。
// 取消信号已触发时直接失败，不发起网络调用；
// 传输层故障原样向上传递，编解码核心不感知。
type Transport interface {
	Send(ctx context.Context, address *url.URL, method string, header http.Header, body io.Reader) (*Response, error)
}

// HTTPTransport 基于net/http的默认传输实现
type HTTPTransport struct {
	client   *http.Client
	username string
	password string
}

// HTTPTransportOptions 传输配置
type HTTPTransportOptions struct {
	Timeout  time.Duration
	Username string
	Password string
	Logger   *logrus.Logger
}

// NewHTTPTransport 创建默认传输，配置了日志器时挂上请求日志
func NewHTTPTransport(options HTTPTransportOptions) *HTTPTransport {
	var rt http.RoundTripper = http.DefaultTransport
	if options.Logger != nil {
		rt = newLoggingRoundTripper(rt, options.Logger)
	}
	return &HTTPTransport{
		client: &http.Client{
			Timeout:   options.Timeout,
			Transport: rt,
		},
		username: options.Username,
		password: options.Password,
	}
}

// Send 发送请求并读取完整响应体
func (t *HTTPTransport) Send(ctx context.Context, address *url.URL, method string, header http.Header, body io.Reader) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, method, address.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for key, values := range header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	if t.username != "" {
		request.SetBasicAuth(t.username, t.password)
	}

	response, err := t.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode:  response.StatusCode,
		Description: statusDescription(response),
		Body:        data,
	}, nil
}

// statusDescription 从状态行提取描述部分，"207 Multi-Status"中取"Multi-Status"
func statusDescription(response *http.Response) string {
	description := strings.TrimSpace(strings.TrimPrefix(response.Status, strconv.Itoa(response.StatusCode)))
	if description == "" {
		description = http.StatusText(response.StatusCode)
	}
	return description
}
