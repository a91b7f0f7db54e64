package main

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/kikiraihan/brazil-e-commerce-analysis/internal/logger"
)

// usage is the peak resource use observed during one report run.
type usage struct {
	Goroutines int
	HeapMB     uint64
	Samples    int
}

// usageSampler polls the runtime until its context ends.
type usageSampler struct {
	interval  time.Duration
	appLogger *logger.Logger

	mu   sync.Mutex
	peak usage
	done chan struct{}
}

func newUsageSampler(interval time.Duration, appLogger *logger.Logger) *usageSampler {
	return &usageSampler{interval: interval, appLogger: appLogger, done: make(chan struct{})}
}

// Run samples in the background. Wait returns once ctx is cancelled and
// the final sample is taken.
func (s *usageSampler) Run(ctx context.Context) {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sample()
		for {
			select {
			case <-ticker.C:
				s.sample()
			case <-ctx.Done():
				s.sample()
				return
			}
		}
	}()
}

func (s *usageSampler) Wait() usage {
	<-s.done
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peak
}

func (s *usageSampler) sample() {
	const component = "UsageSampler"

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	heapMB := mem.HeapInuse / 1024 / 1024
	goroutines := runtime.NumGoroutine()

	s.mu.Lock()
	s.peak.Samples++
	s.peak.Goroutines = max(s.peak.Goroutines, goroutines)
	s.peak.HeapMB = max(s.peak.HeapMB, heapMB)
	peak := s.peak
	s.mu.Unlock()

	s.appLogger.Debug(component, "goroutines=%d heapMB=%d peakGoroutines=%d peakHeapMB=%d",
		goroutines, heapMB, peak.Goroutines, peak.HeapMB)
}
