package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Services ServicesConfig `yaml:"services"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Name            string        `yaml:"name"`
	MaxBodyBytes    int64         `yaml:"maxBodyBytes"` // 0 表示不限制
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// ServicesConfig 下游服务配置
type ServicesConfig struct {
	BackService    string        `yaml:"backService"`
	ForwardTimeout time.Duration `yaml:"forwardTimeout"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DefaultFront 前端服务（Service A）默认配置
func DefaultFront() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Name:            "front-service",
			ShutdownTimeout: 10 * time.Second,
		},
		Services: ServicesConfig{
			BackService:    "http://localhost:8001/predict",
			ForwardTimeout: 3 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultBack 后端服务（Service B）默认配置
func DefaultBack() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8001,
			Name:            "back-service",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig 在默认配置之上加载配置文件，文件不存在时直接返回默认配置
func LoadConfig(path string, defaults Config) (*Config, error) {
	cfg := defaults

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("无效的端口: %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("maxBodyBytes 不能为负数: %d", c.Server.MaxBodyBytes)
	}
	if c.Services.ForwardTimeout < 0 {
		return fmt.Errorf("forwardTimeout 不能为负数: %s", c.Services.ForwardTimeout)
	}
	return nil
}
