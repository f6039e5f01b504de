package usecase

import (
	"github.com/secmon-lab/constrisk/pkg/domain/types"
	"github.com/secmon-lab/constrisk/pkg/service/scorer"
)

// Recorder receives operational counters from the use cases
type Recorder interface {
	ObservePrediction(level types.RiskLevel, score float64)
	ObserveRejection(field string)
	ObserveContact()
}

type nopRecorder struct{}

func (nopRecorder) ObservePrediction(types.RiskLevel, float64) {}
func (nopRecorder) ObserveRejection(string)                    {}
func (nopRecorder) ObserveContact()                            {}

type UseCases struct {
	scorer     *scorer.Scorer
	recorder   Recorder
	Prediction *PredictionUseCase
	Contact    *ContactUseCase
}

type Option func(*UseCases)

func WithScorer(s *scorer.Scorer) Option {
	return func(uc *UseCases) {
		uc.scorer = s
	}
}

func WithRecorder(r Recorder) Option {
	return func(uc *UseCases) {
		uc.recorder = r
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		scorer:   scorer.Default(),
		recorder: nopRecorder{},
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Prediction = NewPredictionUseCase(uc.scorer, uc.recorder)
	uc.Contact = NewContactUseCase(uc.recorder)

	return uc
}
