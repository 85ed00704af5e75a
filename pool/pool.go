// ABOUTME: Worker pool for parallel batch work such as tag extraction
// ABOUTME: Submit-and-wait pattern with bounded task queueing

// Package pool provides a small fixed-size worker pool.
package pool

import (
	"runtime"
	"sync"
)

// WorkerPool runs submitted tasks on a fixed set of goroutines.
// Reading tags for a large queue is I/O bound, so the pool keeps the work
// off the caller's goroutine without spawning one goroutine per file.
type WorkerPool struct {
	tasks    chan func()
	workerWg sync.WaitGroup // tracks worker goroutine lifetime
	taskWg   sync.WaitGroup // tracks submitted task completion
}

// NewWorkerPool starts a pool with the given worker count and task queue
// capacity. A worker count of zero or less defaults to the CPU count.
func NewWorkerPool(workers, queueSize int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &WorkerPool{
		tasks: make(chan func(), queueSize),
	}

	for i := 0; i < workers; i++ {
		p.workerWg.Add(1)

		go func() {
			defer p.workerWg.Done()

			for task := range p.tasks {
				task()
				p.taskWg.Done()
			}
		}()
	}

	return p
}

// Submit queues a task for execution
// Blocks when the task queue is full
func (p *WorkerPool) Submit(task func()) {
	p.taskWg.Add(1)
	p.tasks <- task
}

// Wait blocks until every submitted task has finished
func (p *WorkerPool) Wait() {
	p.taskWg.Wait()
}

// Close shuts the pool down and waits for the workers to exit
func (p *WorkerPool) Close() {
	close(p.tasks)
	p.workerWg.Wait()
}
