package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mllab/mllab-go/internal/client"
	"github.com/mllab/mllab-go/internal/config"
	"github.com/mllab/mllab-go/internal/handler"
	"github.com/mllab/mllab-go/internal/server"
	"github.com/mllab/mllab-go/internal/service"
	"github.com/mllab/mllab-go/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/front-service.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(*configPath, config.DefaultFront())
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.Named(cfg.Log.Level, cfg.Server.Name)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("front-service 服务启动中...",
		zap.String("backService", cfg.Services.BackService),
		zap.Duration("forwardTimeout", cfg.Services.ForwardTimeout))

	// 初始化服务
	backClient := client.NewBackClient(cfg.Services.BackService, cfg.Services.ForwardTimeout, zapLogger)
	processService := service.NewProcessService(backClient, zapLogger)
	frontHandler := handler.NewFrontHandler(processService, zapLogger)

	// 初始化路由
	gin.SetMode(gin.ReleaseMode)
	r := server.NewFrontEngine(cfg.Server, frontHandler, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Server.Addr(), r, cfg.Server.ShutdownTimeout, zapLogger); err != nil {
		zapLogger.Fatal("服务运行失败", zap.Error(err))
	}
}
