package matcher

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeatureCount is the arity of the regression input vector. The order
// [skill, experience, education, semantic] is what the model was trained on
// and must never change without retraining.
const FeatureCount = 4

// RegressionModel maps the 4-element feature vector to a raw overall score.
type RegressionModel interface {
	Predict(features []float64) (float64, error)
}

// LinearModel is a trained linear regression consumed as an opaque artifact.
// Training happens offline; this code only applies the learned weights.
type LinearModel struct {
	ModelType    string    `json:"model_type"`
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	TrainedAt    string    `json:"trained_at,omitempty"`
}

// LoadLinearModel reads the regression artifact from disk. Any problem here
// is a fatal startup error: the process must not serve without the model.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regression model artifact: %w", err)
	}

	var model LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse regression model artifact: %w", err)
	}

	if len(model.Coefficients) != FeatureCount {
		return nil, fmt.Errorf("regression model expects %d coefficients, artifact has %d",
			FeatureCount, len(model.Coefficients))
	}

	return &model, nil
}

// Predict implements RegressionModel.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("regression model expects %d features, got %d",
			len(m.Coefficients), len(features))
	}

	score := m.Intercept
	for i, f := range features {
		score += m.Coefficients[i] * f
	}

	return score, nil
}
