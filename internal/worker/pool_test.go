package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcampos/notedeck/internal/worker"
)

type countingJob struct {
	mu   sync.Mutex
	runs int
	done chan struct{}
	err  error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(context.Context) error {
	j.mu.Lock()
	j.runs++
	j.mu.Unlock()
	if j.done != nil {
		j.done <- struct{}{}
	}
	return j.err
}

func (j *countingJob) Runs() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.runs
}

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := worker.NewPool(2, 8)
	pool.Start(context.Background())
	defer pool.Stop()

	job := &countingJob{done: make(chan struct{}, 3)}
	for i := 0; i < 3; i++ {
		require.NoError(t, pool.Submit(job))
	}
	for i := 0; i < 3; i++ {
		select {
		case <-job.done:
		case <-time.After(2 * time.Second):
			t.Fatal("job did not run")
		}
	}
	assert.Equal(t, 3, job.Runs())
}

func TestPool_SubmitNeverBlocks(t *testing.T) {
	pool := worker.NewPool(1, 2)

	require.NoError(t, pool.Submit(&countingJob{}))
	require.NoError(t, pool.Submit(&countingJob{}))
	assert.Equal(t, 2, pool.QueueSize())

	err := pool.Submit(&countingJob{})
	assert.ErrorIs(t, err, worker.ErrQueueFull)
}

func TestPool_FailedJobDoesNotStopWorkers(t *testing.T) {
	pool := worker.NewPool(1, 8)
	pool.Start(context.Background())
	defer pool.Stop()

	failing := &countingJob{done: make(chan struct{}, 1), err: assert.AnError}
	require.NoError(t, pool.Submit(failing))
	select {
	case <-failing.done:
	case <-time.After(2 * time.Second):
		t.Fatal("failing job did not run")
	}

	ok := &countingJob{done: make(chan struct{}, 1)}
	require.NoError(t, pool.Submit(ok))
	select {
	case <-ok.done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stopped after a failed job")
	}
}

func TestPool_StopWaitsForWorkers(t *testing.T) {
	pool := worker.NewPool(2, 8)
	pool.Start(context.Background())
	pool.Stop()
	// Stop returned, so all workers have exited and Submit after close
	// would be a programming error; nothing left to assert beyond no hang.
}
