package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrBackUnavailable 预测服务不可用（连接失败、超时或响应无法解析）
var ErrBackUnavailable = errors.New("Service B is unavailable")

const (
	// RequestIDHeader 请求 ID 头，转发时透传
	RequestIDHeader = "X-Request-ID"
	// DefaultTimeout 默认转发超时
	DefaultTimeout = 3 * time.Second
)

// BackClient 预测服务客户端
type BackClient struct {
	predictURL string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewBackClient 创建预测服务客户端，timeout 为整个请求的超时时间
func NewBackClient(predictURL string, timeout time.Duration, logger *zap.Logger) *BackClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BackClient{
		predictURL: predictURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type predictRequest struct {
	Input string `json:"input"`
}

// Predict 调用预测接口，返回预测服务原始 JSON 响应体
// 所有失败均包装为 ErrBackUnavailable，不做重试
func (c *BackClient) Predict(ctx context.Context, input, requestID string) (json.RawMessage, error) {
	jsonData, err := json.Marshal(predictRequest{Input: input})
	if err != nil {
		return nil, fmt.Errorf("%w: 序列化请求失败: %v", ErrBackUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	c.logger.Debug("调用预测服务", zap.String("url", c.predictURL), zap.String("requestId", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: 读取响应失败: %v", ErrBackUnavailable, err)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: 解析响应失败: %v", ErrBackUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("预测服务返回非 200 状态",
			zap.Int("status", resp.StatusCode),
			zap.String("requestId", requestID))
	}

	return raw, nil
}
