package usecase_test

import (
	"sync"

	"github.com/secmon-lab/constrisk/pkg/domain/types"
)

type fakeRecorder struct {
	mu          sync.Mutex
	predictions []types.RiskLevel
	scores      []float64
	rejections  []string
	contacts    int
}

func (r *fakeRecorder) ObservePrediction(level types.RiskLevel, score float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predictions = append(r.predictions, level)
	r.scores = append(r.scores, score)
}

func (r *fakeRecorder) ObserveRejection(field string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejections = append(r.rejections, field)
}

func (r *fakeRecorder) ObserveContact() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts++
}
