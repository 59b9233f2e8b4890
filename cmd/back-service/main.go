package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mllab/mllab-go/internal/config"
	"github.com/mllab/mllab-go/internal/handler"
	"github.com/mllab/mllab-go/internal/server"
	"github.com/mllab/mllab-go/internal/service"
	"github.com/mllab/mllab-go/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/back-service.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(*configPath, config.DefaultBack())
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.Named(cfg.Log.Level, cfg.Server.Name)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("back-service 服务启动中...")

	// 初始化模型，标签列表启动后不再修改
	predictor, err := service.NewPredictor(service.DefaultClasses, nil, zapLogger)
	if err != nil {
		zapLogger.Fatal("初始化模型失败", zap.Error(err))
	}
	backHandler := handler.NewBackHandler(predictor, zapLogger)

	// 初始化路由
	gin.SetMode(gin.ReleaseMode)
	r := server.NewBackEngine(cfg.Server, backHandler, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Server.Addr(), r, cfg.Server.ShutdownTimeout, zapLogger); err != nil {
		zapLogger.Fatal("服务运行失败", zap.Error(err))
	}
}
