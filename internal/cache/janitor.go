package cache

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Cleaner is implemented by caches that can drop expired entries.
type Cleaner interface {
	CleanExpired() int
}

// Janitor periodically sweeps registered caches.
type Janitor struct {
	logger   *logrus.Logger
	caches   []Cleaner
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewJanitor(logger *logrus.Logger, caches ...Cleaner) *Janitor {
	return &Janitor{
		logger: logger,
		caches: caches,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (j *Janitor) Start(interval time.Duration) {
	go j.run(interval)
}

func (j *Janitor) run(interval time.Duration) {
	defer close(j.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Sweep()
		case <-j.stop:
			return
		}
	}
}

// Sweep cleans every registered cache once.
func (j *Janitor) Sweep() int {
	cleaned := 0
	for _, c := range j.caches {
		cleaned += c.CleanExpired()
	}
	if cleaned > 0 && j.logger != nil {
		j.logger.WithField("cleaned", cleaned).Debug("Cache.Janitor.Sweep")
	}
	return cleaned
}

// Stop is safe to call more than once, but only after Start.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stop)
		<-j.done
	})
}
