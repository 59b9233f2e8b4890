package service

import (
	"context"
	"encoding/json"

	"github.com/mllab/mllab-go/internal/model"
	"go.uber.org/zap"
)

// StatusLogged 输入记录成功状态
const StatusLogged = "Input logged successfully"

// Predicter 预测服务调用接口
type Predicter interface {
	Predict(ctx context.Context, input, requestID string) (json.RawMessage, error)
}

// ProcessService 输入记录服务
type ProcessService struct {
	predicter Predicter
	logger    *zap.Logger
}

// NewProcessService 创建输入记录服务
func NewProcessService(predicter Predicter, logger *zap.Logger) *ProcessService {
	return &ProcessService{
		predicter: predicter,
		logger:    logger,
	}
}

// Process 记录输入，按需同步转发到预测服务
func (s *ProcessService) Process(ctx context.Context, req model.LogRequest, requestID string) (*model.ProcessResponse, error) {
	s.logger.Info("收到输入",
		zap.String("data", req.Text()),
		zap.String("requestId", requestID))

	if !req.ShouldForward() {
		return &model.ProcessResponse{Status: StatusLogged}, nil
	}

	prediction, err := s.predicter.Predict(ctx, req.Text(), requestID)
	if err != nil {
		s.logger.Error("调用预测服务失败",
			zap.String("requestId", requestID),
			zap.Error(err))
		return nil, err
	}

	return &model.ProcessResponse{
		Status:          StatusLogged,
		ModelPrediction: prediction,
	}, nil
}
