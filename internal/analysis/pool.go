package analysis

import "sync"

// WorkerPool bounds concurrent market scoring so a batch of locations does
// not open one upstream AI call per location all at once.
type WorkerPool struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

func NewWorkerPool(workers int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	p := &WorkerPool{jobs: make(chan func())}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	for job := range p.jobs {
		job()
	}
}

// Submit schedules a job and blocks while all workers are busy.
func (p *WorkerPool) Submit(job func()) {
	p.wg.Add(1)
	p.jobs <- func() {
		defer p.wg.Done()
		job()
	}
}

// Wait blocks until every submitted job has finished.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

// Close stops the workers. Pending jobs already submitted still run.
func (p *WorkerPool) Close() {
	p.once.Do(func() { close(p.jobs) })
}
