package service_test

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/Astemirdum/librarypro/library/internal/repository"
	"github.com/Astemirdum/librarypro/library/internal/service"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

const (
	activeRecord   = "6f1c2a8e-0b51-4d8a-9a4e-6c2b1f0e9a01"
	overdueRecord  = "6f1c2a8e-0b51-4d8a-9a4e-6c2b1f0e9a02"
	returnedRecord = "6f1c2a8e-0b51-4d8a-9a4e-6c2b1f0e9a03"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []model.Notification
	err  error
}

func (n *fakeNotifier) Notify(_ context.Context, msg model.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func (n *fakeNotifier) outcomes() []model.Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]model.Outcome, 0, len(n.sent))
	for _, m := range n.sent {
		out = append(out, m.Outcome)
	}
	return out
}

func newTestService(t *testing.T, seed repository.Seed, opts ...service.Option) (*service.Service, repository.Repository) {
	t.Helper()
	log := zap.NewExample().Named("test")
	repo := repository.NewMemoryRepository(seed, log)
	var seq atomic.Int64
	opts = append([]service.Option{
		service.WithClock(func() time.Time { return testNow }),
		service.WithIDGenerator(func() string {
			return "id-" + strconv.FormatInt(seq.Add(1), 10)
		}),
	}, opts...)
	return service.NewService(repo, log, opts...), repo
}

var errNotifier = errors.New("broker down")
