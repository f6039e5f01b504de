package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/constrisk/pkg/domain/model"
	"github.com/secmon-lab/constrisk/pkg/service/scorer"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
)

type PredictionUseCase struct {
	scorer   *scorer.Scorer
	recorder Recorder
}

func NewPredictionUseCase(s *scorer.Scorer, recorder Recorder) *PredictionUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &PredictionUseCase{
		scorer:   s,
		recorder: recorder,
	}
}

// Predict validates the input and scores it
func (uc *PredictionUseCase) Predict(ctx context.Context, input model.PredictionInput) (*model.Assessment, error) {
	if uc.scorer == nil {
		return nil, goerr.Wrap(ErrScorerNotConfigured, "cannot predict")
	}

	if err := input.Validate(); err != nil {
		uc.Reject(ctx, err)
		return nil, goerr.Wrap(err, "invalid prediction input")
	}

	result := uc.scorer.Predict(input)
	uc.recorder.ObservePrediction(result.RiskLevel, result.Score)

	logging.From(ctx).Debug("prediction computed",
		"input", input,
		"score", result.Score,
		"risk_level", result.RiskLevel,
		"probability", result.Probability,
		"recommendations", len(result.Recommendations),
	)

	return &result, nil
}

// Reject records a prediction request refused for invalid input. Callers
// that validate the request shape themselves report their errors here so
// every rejection is counted by field.
func (uc *PredictionUseCase) Reject(ctx context.Context, err error) {
	field, _, _ := model.ValidationDetail(err)
	uc.recorder.ObserveRejection(field)

	logging.From(ctx).Debug("prediction rejected",
		"field", field,
		"error", err,
	)
}

// Options returns the accepted input values and the default form state
func (uc *PredictionUseCase) Options(ctx context.Context) model.PredictionOptions {
	return model.NewPredictionOptions()
}
