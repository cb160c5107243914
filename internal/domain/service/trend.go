package service

// TrendModel is the pre-trained classification model port. Implementations
// must be safe for concurrent read access; the model is loaded once at
// startup and never mutated afterwards.
type TrendModel interface {
	// Predict returns the predicted class index for a feature vector.
	Predict(features []float64) int
	// PredictProba returns the per-class probability distribution.
	PredictProba(features []float64) []float64
}
