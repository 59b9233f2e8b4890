package server

import (
	"github.com/gin-gonic/gin"
	"github.com/mllab/mllab-go/internal/config"
	"github.com/mllab/mllab-go/internal/handler"
	"github.com/mllab/mllab-go/internal/middleware"
	"go.uber.org/zap"
)

const (
	frontTitle = "Service A - Input Logger"
	frontName  = "Service A"
	backTitle  = "Service B - ML Prediction"
	backName   = "Service B"
)

// newEngine 创建带公共中间件的 gin 引擎
func newEngine(cfg config.ServerConfig, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.CORS(),
		middleware.BodyLimit(cfg.MaxBodyBytes),
	)
	return r
}

// NewFrontEngine 组装输入记录服务路由
func NewFrontEngine(cfg config.ServerConfig, h *handler.FrontHandler, logger *zap.Logger) *gin.Engine {
	r := newEngine(cfg, logger)
	handler.NewStatusHandler(frontTitle, frontName).RegisterRoutes(r)
	h.RegisterRoutes(r)
	return r
}

// NewBackEngine 组装预测服务路由
func NewBackEngine(cfg config.ServerConfig, h *handler.BackHandler, logger *zap.Logger) *gin.Engine {
	r := newEngine(cfg, logger)
	handler.NewStatusHandler(backTitle, backName).RegisterRoutes(r)
	h.RegisterRoutes(r)
	return r
}
