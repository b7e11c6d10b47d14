// golos-labs/golos-bot/worker/worker_test.go
package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/golos-labs/golos-bot/pipeline"
)

type recordingRunner struct {
	mu   sync.Mutex
	ids  []int64
	slow time.Duration
}

func (r *recordingRunner) Run(_ context.Context, msg pipeline.InboundMessage) {
	if r.slow > 0 {
		time.Sleep(r.slow)
	}
	r.mu.Lock()
	r.ids = append(r.ids, msg.ID)
	r.mu.Unlock()
}

func (r *recordingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

func TestPoolProcessesAllSubmittedJobs(t *testing.T) {
	runner := &recordingRunner{}
	pool := New(runner, 4, 64)
	pool.Start()

	for i := int64(1); i <= 20; i++ {
		ok := pool.Submit(Job{Ctx: context.Background(), Message: pipeline.InboundMessage{ID: i, ChatID: 42}})
		assert.True(t, ok)
	}
	pool.Stop()

	assert.Equal(t, 20, runner.count())
}

func TestSubmitDropsWhenQueueFull(t *testing.T) {
	runner := &recordingRunner{slow: time.Second}
	pool := New(runner, 1, 1)
	// Pool not started: the queue holds exactly one job.

	assert.True(t, pool.Submit(Job{Ctx: context.Background(), Message: pipeline.InboundMessage{ID: 1}}))
	assert.False(t, pool.Submit(Job{Ctx: context.Background(), Message: pipeline.InboundMessage{ID: 2}}))
}

func TestCancelledJobsAreSkipped(t *testing.T) {
	runner := &recordingRunner{}
	pool := New(runner, 2, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pool.Submit(Job{Ctx: ctx, Message: pipeline.InboundMessage{ID: 1}})
	pool.Submit(Job{Ctx: context.Background(), Message: pipeline.InboundMessage{ID: 2}})

	pool.Start()
	pool.Stop()

	assert.Equal(t, []int64{2}, runner.ids)
}
