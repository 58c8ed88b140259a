package services

import (
	"log"
	"sync"

	"cvmatcher/internal/models"
	"cvmatcher/internal/repositories"
)

// Recorder persists match results off the request path, so a slow database
// write never delays a scoring response. History is best effort: when the
// queue is full or the recorder is stopped, the result is dropped with a log
// line rather than blocking the caller.
type Recorder interface {
	Start()
	Stop()
	Record(result *models.MatchResult)
}

type recorder struct {
	repo        repositories.MatchResultRepository
	queue       chan *models.MatchResult
	concurrency int
	wg          sync.WaitGroup
	stopOnce    sync.Once

	mu      sync.RWMutex
	stopped bool
}

func NewRecorder(repo repositories.MatchResultRepository, concurrency int) Recorder {
	return &recorder{
		repo:        repo,
		queue:       make(chan *models.MatchResult, 100),
		concurrency: concurrency,
	}
}

// Start implements Recorder.
func (r *recorder) Start() {
	log.Printf("🚀 Starting result recorder with %d writers\n", r.concurrency)

	for i := 0; i < r.concurrency; i++ {
		r.wg.Add(1)
		go r.drain(i + 1)
	}
}

// Stop implements Recorder. Queued results are flushed before returning.
func (r *recorder) Stop() {
	r.stopOnce.Do(func() {
		log.Println("🛑 Stopping result recorder...")
		r.mu.Lock()
		r.stopped = true
		close(r.queue)
		r.mu.Unlock()
		r.wg.Wait()
		log.Println("✅ Result recorder stopped")
	})
}

// Record implements Recorder.
func (r *recorder) Record(result *models.MatchResult) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		log.Println("⚠️  Recorder stopped, dropping match result")
		return
	}

	select {
	case r.queue <- result:
	default:
		log.Println("⚠️  Recorder queue full, dropping match result")
	}
}

func (r *recorder) drain(writerID int) {
	defer r.wg.Done()

	for result := range r.queue {
		if err := r.repo.Create(result); err != nil {
			log.Printf("❌ Writer #%d failed to persist match result: %v\n", writerID, err)
		}
	}
}
