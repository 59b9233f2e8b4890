package model

import "encoding/json"

// LogRequest 前端服务输入请求
// Data 使用指针以区分缺失字段与空字符串
type LogRequest struct {
	Data           *string `json:"data" binding:"required"`
	ForwardToModel *bool   `json:"forward_to_model,omitempty"`
}

// ShouldForward 是否转发到预测服务（默认 true）
func (r LogRequest) ShouldForward() bool {
	return r.ForwardToModel == nil || *r.ForwardToModel
}

// Text 输入文本
func (r LogRequest) Text() string {
	if r.Data == nil {
		return ""
	}
	return *r.Data
}

// ForwardRequest 转发到预测服务的请求
type ForwardRequest struct {
	Input *string `json:"input" binding:"required"`
}

// PredictionResult 预测结果
type PredictionResult struct {
	Class       string  `json:"class"`
	Confidence  float64 `json:"confidence"`
	InputLength int     `json:"input_length"`
}

// PredictionResponse 预测响应
type PredictionResponse struct {
	Prediction PredictionResult `json:"prediction"`
	Message    string           `json:"message"`
}

// ProcessResponse 前端服务处理响应
type ProcessResponse struct {
	Status          string          `json:"status"`
	ModelPrediction json.RawMessage `json:"model_prediction,omitempty"`
}

// ServiceStatus 服务状态
type ServiceStatus struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Detail string `json:"detail"`
}
