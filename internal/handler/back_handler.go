package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mllab/mllab-go/internal/middleware"
	"github.com/mllab/mllab-go/internal/model"
	"github.com/mllab/mllab-go/internal/service"
	"go.uber.org/zap"
)

// BackHandler 预测处理器（Service B）
type BackHandler struct {
	predictor *service.Predictor
	logger    *zap.Logger
}

// NewBackHandler 创建预测处理器
func NewBackHandler(predictor *service.Predictor, logger *zap.Logger) *BackHandler {
	return &BackHandler{
		predictor: predictor,
		logger:    logger,
	}
}

// Predict 预测接口
func (h *BackHandler) Predict(c *gin.Context) {
	var req model.ForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("请求参数无效", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.logger.Info("收到预测请求",
		zap.String("input", *req.Input),
		zap.String("requestId", middleware.GetRequestID(c)))

	c.JSON(http.StatusOK, h.predictor.Predict(*req.Input))
}

// RegisterRoutes 注册路由
func (h *BackHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/predict", h.Predict)
}
