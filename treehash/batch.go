package treehash

import (
	"fmt"
	"runtime"
	"sync"
)

// NodeJob is a single internal-node digest computation.
type NodeJob[H NodeValue] struct {
	Children []H
	Result   H
	Err      error
}

// LeafJob is a single leaf digest computation.
type LeafJob[E Element, I Index, H NodeValue] struct {
	Pos    I
	Elem   E
	Result H
	Err    error
}

// BatchOptions holds the tunables of a BatchDigester.
type BatchOptions struct {
	// MaxWorkers caps the number of worker goroutines. Defaults to
	// runtime.NumCPU().
	MaxWorkers int
}

// BatchOption configures a BatchDigester.
type BatchOption func(*BatchOptions)

// MaxWorkers caps the number of worker goroutines.
func MaxWorkers(n int) BatchOption {
	return func(o *BatchOptions) {
		o.MaxWorkers = n
	}
}

// BatchDigester fans independent digest computations out over a worker
// pool. Digest calls are pure functions confined to their own stack, so
// jobs need no coordination beyond the final join.
type BatchDigester[E Element, I Index, H NodeValue] struct {
	alg        DigestAlgorithm[E, I, H]
	maxWorkers int
}

// NewBatchDigester returns a batch digester around the given algorithm.
func NewBatchDigester[E Element, I Index, H NodeValue](alg DigestAlgorithm[E, I, H], opts ...BatchOption) *BatchDigester[E, I, H] {
	options := BatchOptions{MaxWorkers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxWorkers < 1 {
		options.MaxWorkers = 1
	}
	return &BatchDigester[E, I, H]{
		alg:        alg,
		maxWorkers: options.MaxWorkers,
	}
}

// DigestNodes computes every node job, in parallel for larger batches. Each
// job records its own result and error; the first error is also returned
// after all jobs ran.
func (b *BatchDigester[E, I, H]) DigestNodes(jobs []*NodeJob[H]) error {
	// For small batches the goroutine overhead outweighs the parallelism.
	if len(jobs) <= 2 {
		for _, job := range jobs {
			job.Result, job.Err = b.alg.Digest(job.Children)
		}
		return firstNodeErr(jobs)
	}

	jobChan := make(chan *NodeJob[H], len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < b.workerCount(len(jobs)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				job.Result, job.Err = b.alg.Digest(job.Children)
			}
		}()
	}
	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)
	wg.Wait()

	return firstNodeErr(jobs)
}

// DigestLeaves computes every leaf job, in parallel for larger batches. Each
// job records its own result and error; the first error is also returned
// after all jobs ran.
func (b *BatchDigester[E, I, H]) DigestLeaves(jobs []*LeafJob[E, I, H]) error {
	if len(jobs) <= 2 {
		for _, job := range jobs {
			job.Result, job.Err = b.alg.DigestLeaf(job.Pos, job.Elem)
		}
		return firstLeafErr(jobs)
	}

	jobChan := make(chan *LeafJob[E, I, H], len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < b.workerCount(len(jobs)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				job.Result, job.Err = b.alg.DigestLeaf(job.Pos, job.Elem)
			}
		}()
	}
	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)
	wg.Wait()

	return firstLeafErr(jobs)
}

func (b *BatchDigester[E, I, H]) workerCount(jobs int) int {
	if b.maxWorkers > jobs {
		return jobs
	}
	return b.maxWorkers
}

func firstNodeErr[H NodeValue](jobs []*NodeJob[H]) error {
	for _, job := range jobs {
		if job.Err != nil {
			return fmt.Errorf("batch digest failed: %w", job.Err)
		}
	}
	return nil
}

func firstLeafErr[E Element, I Index, H NodeValue](jobs []*LeafJob[E, I, H]) error {
	for _, job := range jobs {
		if job.Err != nil {
			return fmt.Errorf("batch leaf digest failed: %w", job.Err)
		}
	}
	return nil
}
