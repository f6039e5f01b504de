package http

import (
	"context"
	"net/http"

	"github.com/secmon-lab/constrisk/pkg/domain/model"
	"github.com/secmon-lab/constrisk/pkg/domain/types"
)

// predictRequest mirrors model.PredictionInput with pointers so that absent
// fields can be told apart from zero values.
type predictRequest struct {
	ProjectSize            *string `json:"projectSize"`
	Duration               *int    `json:"duration"`
	WorkforceAvailability  *int    `json:"workforceAvailability"`
	SupplyChainStability   *string `json:"supplyChainStability"`
	MaterialCostVolatility *string `json:"materialCostVolatility"`
	ProjectComplexity      *string `json:"projectComplexity"`
}

func (req *predictRequest) toInput() (model.PredictionInput, error) {
	switch {
	case req.ProjectSize == nil:
		return model.PredictionInput{}, model.MissingField(model.FieldProjectSize, model.ProjectSizeDomain())
	case req.Duration == nil:
		return model.PredictionInput{}, model.MissingField(model.FieldDuration, model.DurationDomain)
	case req.WorkforceAvailability == nil:
		return model.PredictionInput{}, model.MissingField(model.FieldWorkforceAvailability, model.WorkforceAvailabilityDomain)
	case req.SupplyChainStability == nil:
		return model.PredictionInput{}, model.MissingField(model.FieldSupplyChainStability, model.LevelDomain())
	case req.MaterialCostVolatility == nil:
		return model.PredictionInput{}, model.MissingField(model.FieldMaterialCostVolatility, model.LevelDomain())
	case req.ProjectComplexity == nil:
		return model.PredictionInput{}, model.MissingField(model.FieldProjectComplexity, model.LevelDomain())
	}

	return model.PredictionInput{
		ProjectSize:            types.ProjectSize(*req.ProjectSize),
		Duration:               *req.Duration,
		WorkforceAvailability:  *req.WorkforceAvailability,
		SupplyChainStability:   types.Level(*req.SupplyChainStability),
		MaterialCostVolatility: types.Level(*req.MaterialCostVolatility),
		ProjectComplexity:      types.Level(*req.ProjectComplexity),
	}, nil
}

func predictHandler(uc PredictionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req predictRequest
		if err := decodeJSON(r, w, &req); err != nil {
			rejectPrediction(ctx, w, uc, err)
			return
		}

		input, err := req.toInput()
		if err != nil {
			rejectPrediction(ctx, w, uc, err)
			return
		}

		result, err := uc.Predict(ctx, input)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, result)
	}
}

// rejectPrediction counts a request refused before it reached the use case
// and writes the error response.
func rejectPrediction(ctx context.Context, w http.ResponseWriter, uc PredictionUseCase, err error) {
	if model.IsValidationError(err) {
		uc.Reject(ctx, err)
	}
	writeError(ctx, w, err)
}

func predictOptionsHandler(uc PredictionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, uc.Options(r.Context()))
	}
}
