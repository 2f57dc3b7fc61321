package types

// ========================================
// Response Types - 响应模型定义
// ========================================

// Status HTTP状态行解析结果。解析失败时Code为0，原始文本保留在Description中。
type Status struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// IsSuccessful 判断状态是否为2xx
func (s Status) IsSuccessful() bool {
	return s.Code >= 200 && s.Code < 300
}

// Propstat 属性组与状态的配对（一个response内共享同一状态的属性集合）
type Propstat struct {
	Properties []Property `json:"properties"`
	Status     Status     `json:"status"`
}

// MultiStatusEntry multistatus响应中的单个response条目
type MultiStatusEntry struct {
	Href      string     `json:"href"`
	Propstats []Propstat `json:"propstats"`
}

// MultiStatus multistatus响应信封：装配成Resource之前的原始形态。
// 内容缺失或XML格式错误时退化为空信封，不报错。
type MultiStatus struct {
	Entries []MultiStatusEntry `json:"entries"`
}

// OperationResponse 操作响应基础部分：状态码、描述与成功标记
type OperationResponse struct {
	StatusCode  int    `json:"status_code"`
	Description string `json:"description"`
}

// IsSuccessful 判断操作是否成功（200 <= code < 300）
func (r OperationResponse) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// PropfindResponse PROPFIND操作响应
type PropfindResponse struct {
	OperationResponse
	Resources []Resource `json:"resources,omitempty"`
}

// ProppatchResponse PROPPATCH操作响应，Resources携带属性级状态
type ProppatchResponse struct {
	OperationResponse
	Resources []Resource `json:"resources,omitempty"`
}

// LockResponse LOCK操作响应。失败的LOCK不携带锁信息。
type LockResponse struct {
	OperationResponse
	ActiveLocks []ActiveLock `json:"active_locks,omitempty"`
}
