package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPredictWithinBounds(t *testing.T) {
	p, err := NewPredictor(DefaultClasses, rand.New(rand.NewPCG(1, 2)), zap.NewNop())
	require.NoError(t, err)

	inputs := []string{"", "hello", "a longer sentence with spaces", "猫和狗", "🐟🐇"}
	for i := 0; i < 500; i++ {
		input := inputs[i%len(inputs)]
		resp := p.Predict(input)

		assert.Contains(t, DefaultClasses, resp.Prediction.Class)
		assert.GreaterOrEqual(t, resp.Prediction.Confidence, 0.70)
		assert.LessOrEqual(t, resp.Prediction.Confidence, 0.99)
		assert.InDelta(t, resp.Prediction.Confidence*100, float64(int(resp.Prediction.Confidence*100+0.5)), 1e-9,
			"置信度保留两位小数")
	}
}

func TestPredictInputLengthCountsCharacters(t *testing.T) {
	p, err := NewPredictor(DefaultClasses, nil, zap.NewNop())
	require.NoError(t, err)

	tests := map[string]int{
		"":      0,
		"hello": 5,
		"猫和狗":   3,
		"🐟🐇":    2,
	}
	for input, want := range tests {
		assert.Equal(t, want, p.Predict(input).Prediction.InputLength, "input %q", input)
	}
}

func TestPredictMessage(t *testing.T) {
	p, err := NewPredictor(DefaultClasses, nil, zap.NewNop())
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		resp := p.Predict("hello")
		want := fmt.Sprintf("%.1f%%", resp.Prediction.Confidence*100)

		assert.True(t, strings.HasPrefix(resp.Message, "Predicted class: "+resp.Prediction.Class+" with "))
		assert.Contains(t, resp.Message, want)
		assert.True(t, strings.HasSuffix(resp.Message, "% confidence"))
	}
}

func TestFormatMessage(t *testing.T) {
	p, err := NewPredictor([]string{"dog"}, fixedRand{n: 0, f: 0.5206896551724138}, zap.NewNop())
	require.NoError(t, err)

	resp := p.Predict("hi")
	assert.Equal(t, "dog", resp.Prediction.Class)
	assert.Equal(t, 0.85, resp.Prediction.Confidence)
	assert.Equal(t, "Predicted class: dog with 85.0% confidence", resp.Message)
}

func TestPredictConfidenceEdges(t *testing.T) {
	low, err := NewPredictor(DefaultClasses, fixedRand{f: 0}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0.70, low.Predict("x").Prediction.Confidence)

	high, err := NewPredictor(DefaultClasses, fixedRand{f: 0.999999}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0.99, high.Predict("x").Prediction.Confidence)
}

func TestNewPredictorRejectsEmptyClasses(t *testing.T) {
	_, err := NewPredictor(nil, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestPredictorClassesImmutable(t *testing.T) {
	classes := []string{"cat", "dog"}
	p, err := NewPredictor(classes, nil, zap.NewNop())
	require.NoError(t, err)

	classes[0] = "lion"
	got := p.Classes()
	got[1] = "wolf"

	assert.Equal(t, []string{"cat", "dog"}, p.Classes())
}

func TestPredictConcurrent(t *testing.T) {
	p, err := NewPredictor(DefaultClasses, nil, zap.NewNop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				resp := p.Predict("concurrent")
				assert.Contains(t, DefaultClasses, resp.Prediction.Class)
			}
		}()
	}
	wg.Wait()
}

type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) IntN(int) int     { return r.n }
func (r fixedRand) Float64() float64 { return r.f }
