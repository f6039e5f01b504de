package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/constrisk/pkg/domain/model"
	"github.com/secmon-lab/constrisk/pkg/domain/types"
	"github.com/secmon-lab/constrisk/pkg/service/scorer"
	"github.com/secmon-lab/constrisk/pkg/usecase"
)

func TestPredictionUseCase_Predict(t *testing.T) {
	ctx := context.Background()

	t.Run("scores valid input and records metrics", func(t *testing.T) {
		rec := &fakeRecorder{}
		uc := usecase.New(usecase.WithRecorder(rec))

		input := model.PredictionInput{
			ProjectSize:            types.ProjectSizeLarge,
			Duration:               24,
			WorkforceAvailability:  50,
			SupplyChainStability:   types.LevelLow,
			MaterialCostVolatility: types.LevelHigh,
			ProjectComplexity:      types.LevelHigh,
		}

		got, err := uc.Prediction.Predict(ctx, input)
		gt.NoError(t, err).Required()
		gt.Value(t, got.RiskLevel).Equal(types.RiskLevelHigh)
		gt.Value(t, got.Probability).Equal(100)
		gt.Value(t, got.Score).Equal(180.0)
		gt.Array(t, got.Recommendations).Length(5)

		gt.Array(t, rec.predictions).Length(1)
		gt.Value(t, rec.predictions[0]).Equal(types.RiskLevelHigh)
		gt.Value(t, rec.scores[0]).Equal(180.0)
		gt.Array(t, rec.rejections).Length(0)
	})

	t.Run("rejects invalid input and records the field", func(t *testing.T) {
		rec := &fakeRecorder{}
		uc := usecase.New(usecase.WithRecorder(rec))

		input := model.DefaultPredictionInput()
		input.WorkforceAvailability = 150

		got, err := uc.Prediction.Predict(ctx, input)
		gt.Value(t, got).Nil()
		gt.Error(t, err).Is(model.ErrInvalidInput)

		field, expected, ok := model.ValidationDetail(err)
		gt.B(t, ok).True()
		gt.Value(t, field).Equal(model.FieldWorkforceAvailability)
		gt.Value(t, expected).Equal("0..100")

		gt.Value(t, rec.rejections).Equal([]string{model.FieldWorkforceAvailability})
		gt.Array(t, rec.predictions).Length(0)
	})

	t.Run("uses the configured scorer", func(t *testing.T) {
		p := scorer.DefaultProfile()
		p.Classification.MediumThreshold = 20
		p.Classification.HighThreshold = 30
		uc := usecase.New(usecase.WithScorer(scorer.New(p)))

		got, err := uc.Prediction.Predict(ctx, model.DefaultPredictionInput())
		gt.NoError(t, err).Required()
		gt.Value(t, got.RiskLevel).Equal(types.RiskLevelHigh)
	})

	t.Run("fails without a scorer", func(t *testing.T) {
		uc := usecase.NewPredictionUseCase(nil, nil)
		_, err := uc.Predict(ctx, model.DefaultPredictionInput())
		gt.Error(t, err).Is(usecase.ErrScorerNotConfigured)
	})
}

func TestPredictionUseCase_Options(t *testing.T) {
	uc := usecase.New()
	opts := uc.Prediction.Options(context.Background())

	gt.Array(t, opts.ProjectSize).Length(3)
	gt.Value(t, opts.ProjectSize[0]).Equal(model.FormOption{Value: "small", Label: "Small"})
	gt.Array(t, opts.SupplyChainStability).Length(3)
	gt.Value(t, opts.WorkforceAvailability.Max).Equal(100)
	gt.Value(t, opts.Duration.Unit).Equal("months")
	gt.Value(t, opts.Defaults).Equal(model.DefaultPredictionInput())
}

func TestPredictionUseCase_Reject(t *testing.T) {
	ctx := context.Background()
	rec := &fakeRecorder{}
	uc := usecase.New(usecase.WithRecorder(rec))

	uc.Prediction.Reject(ctx, model.MissingField(model.FieldDuration, model.DurationDomain))
	uc.Prediction.Reject(ctx, goerr.Wrap(model.ErrInvalidInput, "malformed JSON body"))

	gt.Value(t, rec.rejections).Equal([]string{model.FieldDuration, ""})
	gt.Array(t, rec.predictions).Length(0)
}
