package http

import (
	"net/http"

	"github.com/secmon-lab/constrisk/pkg/domain/model"
)

func contactHandler(uc ContactUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var msg model.ContactMessage
		if err := decodeJSON(r, w, &msg); err != nil {
			writeError(ctx, w, err)
			return
		}

		receipt, err := uc.Submit(ctx, msg)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusAccepted, receipt)
	}
}
