package webdav

import (
	"github.com/webdav-client/internal/types"
)

// ========================================
// Response Facade - 终端包装
// ========================================

// ResponseParser 三种响应载荷共享的解析形态：
// 每种载荷一个实现，由调用方按操作选择，不做运行时类型判断。
type ResponseParser[T any] interface {
	Parse(body []byte, statusCode int, description string) T
}

// PropfindResponseParser PROPFIND响应解析
type PropfindResponseParser struct{}

func (PropfindResponseParser) Parse(body []byte, statusCode int, description string) types.PropfindResponse {
	response := types.PropfindResponse{
		OperationResponse: types.OperationResponse{StatusCode: statusCode, Description: description},
	}
	for _, entry := range ParseMultiStatus(body).Entries {
		response.Resources = append(response.Resources, AssembleResource(entry))
	}
	return response
}

// ProppatchResponseParser PROPPATCH响应解析，资源携带属性级状态
type ProppatchResponseParser struct{}

func (ProppatchResponseParser) Parse(body []byte, statusCode int, description string) types.ProppatchResponse {
	response := types.ProppatchResponse{
		OperationResponse: types.OperationResponse{StatusCode: statusCode, Description: description},
	}
	for _, entry := range ParseMultiStatus(body).Entries {
		response.Resources = append(response.Resources, AssembleResource(entry))
	}
	return response
}

// LockResponseParser LOCK响应解析。
// 失败的LOCK不携带锁信息，即便响应体里有内容。
type LockResponseParser struct{}

func (LockResponseParser) Parse(body []byte, statusCode int, description string) types.LockResponse {
	response := types.LockResponse{
		OperationResponse: types.OperationResponse{StatusCode: statusCode, Description: description},
	}
	if response.IsSuccessful() {
		response.ActiveLocks = ParseLockDiscovery(body)
	}
	return response
}

// NewOperationResponse 无载荷操作的响应包装
func NewOperationResponse(statusCode int, description string) types.OperationResponse {
	return types.OperationResponse{StatusCode: statusCode, Description: description}
}
