package matcher

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider derives a vector from the text via vec; errors when err is set.
type stubProvider struct {
	vec func(text string) []float32
	err error
}

func (s *stubProvider) Embed(_ context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vec(text), nil
}

func (s *stubProvider) ModelVersion() string {
	return "stub-embedder-001"
}

// constantVectorProvider embeds every text to the same vector, so any two
// texts have cosine similarity 1.
func constantVectorProvider() *stubProvider {
	return &stubProvider{vec: func(string) []float32 {
		return []float32{0.6, 0.8}
	}}
}

// topicVectorProvider separates texts about design from texts about backend
// infrastructure into orthogonal vectors.
func topicVectorProvider() *stubProvider {
	return &stubProvider{vec: func(text string) []float32 {
		if strings.Contains(text, "design") {
			return []float32{1, 0}
		}
		return []float32{0, 1}
	}}
}

func failingProvider(err error) *stubProvider {
	return &stubProvider{err: err}
}

// stubModel applies fn to the feature vector.
type stubModel struct {
	fn func(features []float64) float64
}

func (m *stubModel) Predict(features []float64) (float64, error) {
	if len(features) != FeatureCount {
		return 0, errors.New("unexpected feature count")
	}
	return m.fn(features), nil
}

// averagingModel predicts the plain mean of the four features.
func averagingModel() *stubModel {
	return &stubModel{fn: func(features []float64) float64 {
		sum := 0.0
		for _, f := range features {
			sum += f
		}
		return sum / float64(len(features))
	}}
}

func fixedModel(score float64) *stubModel {
	return &stubModel{fn: func([]float64) float64 { return score }}
}

func newTestEngine(t *testing.T, provider *stubProvider, model RegressionModel) *Engine {
	t.Helper()

	engine, err := NewEngine(provider, model)
	require.NoError(t, err)
	return engine
}

func TestNewEngine_RequiresDependencies(t *testing.T) {
	_, err := NewEngine(nil, averagingModel())
	assert.Error(t, err)

	_, err = NewEngine(constantVectorProvider(), nil)
	assert.Error(t, err)
}

func TestScore_StrongMatch(t *testing.T) {
	engine := newTestEngine(t, constantVectorProvider(), averagingModel())

	cv := "Senior Python developer, 5 years experience, Master's degree in Computer Science, skilled in machine learning and docker"
	jd := "Looking for Python developer with 3+ years experience, Bachelor's required, machine learning skills"

	record, err := engine.Score(context.Background(), cv, jd)
	require.NoError(t, err)

	// JD mentions python and machine learning; the CV covers both.
	assert.InDelta(t, 100.0, record.SkillMatch, 1e-9)

	// 5 years against 3 caps the ratio at 1; identical embeddings give
	// relevance 1; default boost.
	assert.InDelta(t, 90.0, record.ExperienceMatch, 1e-9)

	// Master meets a Bachelor requirement.
	assert.InDelta(t, 100.0, record.EducationMatch, 1e-9)

	assert.InDelta(t, 100.0, record.SemanticSimilarity, 1e-9)

	// No guardrail: overall equals the regression output.
	assert.InDelta(t, 97.5, record.OverallMatch, 1e-9)
}

func TestScore_DomainMismatchClamped(t *testing.T) {
	// Regression insists on a high score; the guardrail must override it.
	engine := newTestEngine(t, topicVectorProvider(), fixedModel(85))

	cv := "Creative professional focused on graphic design and Adobe Photoshop"
	jd := "Backend Java development role, Kubernetes and AWS required"

	record, err := engine.Score(context.Background(), cv, jd)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, record.SkillMatch, 1e-9)
	assert.Less(t, record.SemanticSimilarity, 30.0)
	assert.LessOrEqual(t, record.OverallMatch, 30.0)
}

func TestScore_EmbeddingFailurePropagates(t *testing.T) {
	engine := newTestEngine(t, failingProvider(errors.New("model offline")), averagingModel())

	_, err := engine.Score(context.Background(), "experienced python developer cv", "python developer jd with experience")
	assert.ErrorContains(t, err, "model offline")
}

func TestApplyDomainGuardrail(t *testing.T) {
	tests := []struct {
		name     string
		skill    float64
		semantic float64
		raw      float64
		want     float64
	}{
		{"healthy match untouched", 60, 80, 88, 88},
		{"low skill but high semantic untouched", 10, 70, 75, 75},
		{"high skill but low semantic untouched", 50, 20, 65, 65},
		{"broad mismatch capped at 45", 15, 35, 72, 45},
		{"broad mismatch below cap untouched", 15, 35, 40, 40},
		{"extreme mismatch capped at 30", 0, 25, 80, 30},
		{"zero skill but moderate semantic gets broad cap", 0, 35, 80, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, applyDomainGuardrail(tt.skill, tt.semantic, tt.raw), 1e-9)
		})
	}
}

func TestApplyDomainGuardrail_Monotonicity(t *testing.T) {
	// With semantic similarity fixed below 40, lowering skill match below
	// the threshold never raises the final score above the unguarded one.
	const semantic = 35.0
	const raw = 90.0

	unguarded := applyDomainGuardrail(25, semantic, raw)
	for _, skill := range []float64{19.99, 15, 10, 5, 0} {
		guarded := applyDomainGuardrail(skill, semantic, raw)
		assert.LessOrEqual(t, guarded, unguarded, "skill=%v", skill)
	}
}

func TestScore_Rounding(t *testing.T) {
	engine := newTestEngine(t, constantVectorProvider(), &stubModel{fn: func([]float64) float64 {
		return 66.666666
	}})

	record, err := engine.Score(context.Background(),
		"worked 1 year as python developer with experience",
		"python role, 1 year experience expected")
	require.NoError(t, err)

	assert.InDelta(t, 66.67, record.OverallMatch, 1e-9)
}
