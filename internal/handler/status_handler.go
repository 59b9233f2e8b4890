package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mllab/mllab-go/internal/model"
)

const (
	statusRunning = "running"
	statusHealthy = "healthy"
)

// StatusHandler 根路径与健康检查
type StatusHandler struct {
	title string // GET / 返回的服务名
	name  string // GET /health 返回的服务名
}

// NewStatusHandler 创建状态处理器
func NewStatusHandler(title, name string) *StatusHandler {
	return &StatusHandler{title: title, name: name}
}

// Root 服务信息
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.ServiceStatus{Service: h.title, Status: statusRunning})
}

// Health 健康检查，始终返回 healthy
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.ServiceStatus{Service: h.name, Status: statusHealthy})
}

// RegisterRoutes 注册路由
func (h *StatusHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}
