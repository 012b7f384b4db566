// Package parallel renders glyph images on a pool of workers.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/glyphs/text"
)

// ErrClosed is reported for keys submitted to a closed pool.
var ErrClosed = errors.New("parallel: pool is closed")

// Result is the outcome of rendering one cache key.
type Result struct {
	Key   text.CacheKey
	Image *text.GlyphImage
	Err   error
}

// job is one queued key and where its result goes.
type job struct {
	key  text.CacheKey
	out  *Result
	done *sync.WaitGroup
}

// ImagePool renders glyph images on a fixed set of workers.
//
// Each worker owns an ImageSource, and with it a ScaleContext, so no
// rasterization state is shared between goroutines. Keys are queued round
// robin; a worker whose queue is empty steals from the others.
//
// Thread safety: ImagePool is safe for concurrent use.
type ImagePool struct {
	workers int

	// queues holds per-worker job queues.
	queues []chan job

	// done signals workers to stop.
	done chan struct{}

	wg      sync.WaitGroup
	running atomic.Bool

	// mu orders submissions against Close. RenderAll holds it for reading
	// while it enqueues; Close takes it for writing before stopping workers.
	mu sync.RWMutex
}

// NewImagePool starts a pool. newSource is called once per worker.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewImagePool(workers int, newSource func() *text.ImageSource) *ImagePool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &ImagePool{
		workers: workers,
		queues:  make([]chan job, workers),
		done:    make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.queues[i] = make(chan job, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i, newSource())
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *ImagePool) worker(id int, src *text.ImageSource) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own, src)
			return

		case j := <-own:
			run(src, j)

		default:
			if j, ok := p.steal(id); ok {
				run(src, j)
				continue
			}
			select {
			case <-p.done:
				p.drain(own, src)
				return
			case j := <-own:
				run(src, j)
			}
		}
	}
}

func run(src *text.ImageSource, j job) {
	img, err := src.Image(j.key)
	*j.out = Result{Key: j.key, Image: img, Err: err}
	j.done.Done()
}

// drain renders whatever is left in a queue.
func (p *ImagePool) drain(queue chan job, src *text.ImageSource) {
	for {
		select {
		case j := <-queue:
			run(src, j)
		default:
			return
		}
	}
}

// steal takes a job from another worker's queue.
func (p *ImagePool) steal(myID int) (job, bool) {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case j := <-p.queues[i]:
			return j, true
		default:
		}
	}
	return job{}, false
}

// RenderAll renders keys and waits for all of them. Results are in the
// order of keys. Keys submitted to a closed pool report ErrClosed.
func (p *ImagePool) RenderAll(keys []text.CacheKey) []Result {
	results := make([]Result, len(keys))
	if len(keys) == 0 {
		return results
	}
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for i, k := range keys {
			results[i] = Result{Key: k, Err: ErrClosed}
		}
		return results
	}

	// Workers cannot stop while the read lock is held, so a full queue
	// always drains.
	var wg sync.WaitGroup
	wg.Add(len(keys))
	for i, k := range keys {
		p.queues[i%p.workers] <- job{key: k, out: &results[i], done: &wg}
	}
	p.mu.RUnlock()

	wg.Wait()
	return results
}

// Close stops the pool after the queued keys are rendered.
// Close is safe to call multiple times.
func (p *ImagePool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *ImagePool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts keys.
func (p *ImagePool) IsRunning() bool {
	return p.running.Load()
}
