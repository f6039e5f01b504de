package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/constrisk/pkg/domain/model"
	"github.com/secmon-lab/constrisk/pkg/utils/errutil"
	"github.com/secmon-lab/constrisk/pkg/utils/safe"
)

var errBodyTooLarge = errors.New("request body too large")

// decodeJSON reads a single JSON object from the request body into v.
// Unknown fields are rejected. Decoder failures are returned as validation
// errors naming the field when one can be identified.
func decodeJSON(r *http.Request, w http.ResponseWriter, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer safe.Close(r.Context(), body)

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return goerr.Wrap(errBodyTooLarge, "failed to read request", goerr.V("limit", maxErr.Limit))
		case errors.As(err, &typeErr):
			expected := model.FieldDomain(typeErr.Field)
			if expected == "" {
				expected = typeErr.Type.String()
			}
			return model.InvalidField(typeErr.Field, expected, typeErr.Value)
		case errors.Is(err, io.EOF):
			return goerr.Wrap(model.ErrInvalidInput, "request body is empty")
		}
		if field, ok := unknownFieldName(err); ok {
			return model.UnknownField(field)
		}
		return goerr.Wrap(model.ErrInvalidInput, "malformed JSON body", goerr.V("cause", err.Error()))
	}

	if dec.More() {
		return goerr.Wrap(model.ErrInvalidInput, "request body must contain a single JSON object")
	}

	return nil
}

// unknownFieldName extracts the key from the decoder's unknown field error,
// which has no exported type.
func unknownFieldName(err error) (string, bool) {
	quoted, found := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !found {
		return "", false
	}
	name, err := strconv.Unquote(quoted)
	if err != nil {
		return "", false
	}
	return name, true
}

// writeError maps validation errors to 400, oversized bodies to 413 and
// everything else to 500
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errBodyTooLarge):
		errutil.WriteHTTPError(ctx, w, err, http.StatusRequestEntityTooLarge,
			errutil.ErrorResponse{Error: errBodyTooLarge.Error()})
	case model.IsValidationError(err):
		field, expected, _ := model.ValidationDetail(err)
		errutil.WriteHTTPError(ctx, w, err, http.StatusBadRequest, errutil.ErrorResponse{
			Error:    err.Error(),
			Field:    field,
			Expected: expected,
		})
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}
