package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/constrisk/pkg/domain/model"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
)

type ContactUseCase struct {
	recorder Recorder
	newID    func() string
}

func NewContactUseCase(recorder Recorder) *ContactUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ContactUseCase{
		recorder: recorder,
		newID:    uuid.NewString,
	}
}

// Submit accepts a contact form message. The message is only logged; the
// email address is expected to be redacted by the logger.
func (uc *ContactUseCase) Submit(ctx context.Context, msg model.ContactMessage) (*model.ContactReceipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid contact message")
	}

	receipt := &model.ContactReceipt{ID: uc.newID()}
	uc.recorder.ObserveContact()

	logging.From(ctx).Info("contact message received",
		slog.String(ContactIDKey, receipt.ID),
		slog.Any("contact", msg),
	)

	return receipt, nil
}
