package service

import (
	"fmt"
	"math"
	"math/rand/v2"
	"unicode/utf8"

	"github.com/mllab/mllab-go/internal/model"
	"go.uber.org/zap"
)

const (
	minConfidence = 0.70
	maxConfidence = 0.99
)

// DefaultClasses 默认分类标签
var DefaultClasses = []string{"cat", "dog", "bird", "fish", "rabbit"}

// RandSource 随机数来源
type RandSource interface {
	IntN(n int) int
	Float64() float64
}

// globalRand 使用 math/rand/v2 的全局随机源，并发安全
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Predictor 演示用的“模型”：随机选择分类并给出置信度
// 标签列表在创建后不再修改，可被并发请求共享
type Predictor struct {
	classes []string
	rnd     RandSource
	logger  *zap.Logger
}

// NewPredictor 创建预测器，rnd 为 nil 时使用全局随机源
func NewPredictor(classes []string, rnd RandSource, logger *zap.Logger) (*Predictor, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("分类标签不能为空")
	}
	if rnd == nil {
		rnd = globalRand{}
	}

	p := &Predictor{
		classes: append([]string(nil), classes...),
		rnd:     rnd,
		logger:  logger,
	}
	logger.Info("模型初始化完成", zap.Strings("classes", p.classes))
	return p, nil
}

// Classes 返回标签列表副本
func (p *Predictor) Classes() []string {
	return append([]string(nil), p.classes...)
}

// Predict 对输入给出随机预测
func (p *Predictor) Predict(input string) model.PredictionResponse {
	p.logger.Info("开始预测", zap.String("input", input))

	result := model.PredictionResult{
		Class:       p.classes[p.rnd.IntN(len(p.classes))],
		Confidence:  roundTo(minConfidence+p.rnd.Float64()*(maxConfidence-minConfidence), 2),
		InputLength: utf8.RuneCountInString(input),
	}

	return model.PredictionResponse{
		Prediction: result,
		Message:    FormatMessage(result),
	}
}

// FormatMessage 生成预测结果描述
func FormatMessage(r model.PredictionResult) string {
	return fmt.Sprintf("Predicted class: %s with %.1f%% confidence", r.Class, r.Confidence*100)
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
