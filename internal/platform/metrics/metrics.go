package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	calculations    uint64
	samplePoints    uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordCalculations counts engine invocations served by a handler.
func (c *Collector) RecordCalculations(n int) {
	if c == nil || n <= 0 {
		return
	}
	atomic.AddUint64(&c.calculations, uint64(n))
}

func (c *Collector) RecordSample(points int) {
	if c == nil || points <= 0 {
		return
	}
	atomic.AddUint64(&c.samplePoints, uint64(points))
	atomic.AddUint64(&c.calculations, uint64(points*2))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       errs,
		"rateLimitedTotal":  limited,
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"calculationsTotal": atomic.LoadUint64(&c.calculations),
		"samplePointsTotal": atomic.LoadUint64(&c.samplePoints),
	}
}
