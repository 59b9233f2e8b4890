package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mllab/mllab-go/internal/client"
	"github.com/mllab/mllab-go/internal/middleware"
	"github.com/mllab/mllab-go/internal/model"
	"github.com/mllab/mllab-go/internal/service"
	"go.uber.org/zap"
)

// FrontHandler 输入记录处理器（Service A）
type FrontHandler struct {
	processService *service.ProcessService
	logger         *zap.Logger
}

// NewFrontHandler 创建输入记录处理器
func NewFrontHandler(processService *service.ProcessService, logger *zap.Logger) *FrontHandler {
	return &FrontHandler{
		processService: processService,
		logger:         logger,
	}
}

// Process 记录输入并按需转发
func (h *FrontHandler) Process(c *gin.Context) {
	var req model.LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("请求参数无效", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.processService.Process(c.Request.Context(), req, middleware.GetRequestID(c))
	if err != nil {
		if errors.Is(err, client.ErrBackUnavailable) {
			c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{Detail: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RegisterRoutes 注册路由
func (h *FrontHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/process", h.Process)
}
