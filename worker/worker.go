// golos-labs/golos-bot/worker/worker.go
package worker

import (
	"context"
	"fmt"
	"sync"

	logger "github.com/golos-labs/golos-bot/log"
	"github.com/golos-labs/golos-bot/pipeline"
)

// Job holds all the necessary data for a single pipeline run.
type Job struct {
	Ctx     context.Context
	Message pipeline.InboundMessage
}

// Runner executes one pipeline run to completion.
type Runner interface {
	Run(ctx context.Context, msg pipeline.InboundMessage)
}

// Pool manages a pool of workers and a queue of pipeline jobs. Each chat
// message becomes one job; a full queue drops the job rather than blocking
// the update poller.
type Pool struct {
	jobQueue   chan Job
	maxWorkers int
	runner     Runner
	wg         sync.WaitGroup
}

// New creates a new Pool.
func New(runner Runner, maxWorkers, queueSize int) *Pool {
	return &Pool{
		jobQueue:   make(chan Job, queueSize),
		maxWorkers: maxWorkers,
		runner:     runner,
	}
}

// Start creates and starts the worker goroutines.
func (p *Pool) Start() {
	for i := 1; i <= p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit adds a new job to the job queue. It reports false when the queue
// is full and the job was dropped.
func (p *Pool) Submit(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.Error(fmt.Sprintf("dropping message %d for chat %d", job.Message.ID, job.Message.ChatID),
			fmt.Errorf("job queue full (%d)", cap(p.jobQueue)))
		return false
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	close(p.jobQueue)
	p.wg.Wait()
}

// worker is a goroutine that continuously processes jobs from the queue.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if job.Ctx.Err() != nil {
			continue
		}
		p.runner.Run(job.Ctx, job.Message)
	}
}
