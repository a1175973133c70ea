package internal

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/expenditure-ledger/utils/collections"
	"github.com/tuannh982/expenditure-ledger/utils/math"
	"github.com/tuannh982/expenditure-ledger/utils/timer"
)

const DefaultRecentOperations = 100

type OperationRecord struct {
	Name     string
	Duration time.Duration
	At       time.Time
}

type Stats struct {
	Operations int
	Total      time.Duration
	Min        time.Duration
	Max        time.Duration
}

func (s Stats) Average() time.Duration {
	if s.Operations == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Operations)
}

// Monitor keeps the most recent operation timings and running totals.
type Monitor struct {
	recent collections.Queue[OperationRecord]
	limit  int
	stats  Stats
	log    *log.Entry
}

func NewMonitor(limit int, logger *log.Entry) *Monitor {
	if limit <= 0 {
		limit = DefaultRecentOperations
	}
	return &Monitor{
		recent: collections.NewQueueWithCapacity[OperationRecord](limit),
		limit:  limit,
		log:    logger,
	}
}

// Measure runs f under a stopwatch and records its duration.
func (m *Monitor) Measure(name string, f func()) time.Duration {
	sw := timer.StartNew(name)
	f()
	d, _ := sw.Stop()
	m.Record(name, d)
	return d
}

func (m *Monitor) Record(name string, d time.Duration) {
	if m.recent.Size() == m.limit {
		_, _ = m.recent.Dequeue()
	}
	m.recent.Enqueue(OperationRecord{Name: name, Duration: d, At: time.Now()})
	if m.stats.Operations == 0 {
		m.stats.Min, m.stats.Max = d, d
	} else {
		m.stats.Min = math.Min(m.stats.Min, d)
		m.stats.Max = math.Max(m.stats.Max, d)
	}
	m.stats.Operations++
	m.stats.Total += d
	m.log.WithFields(log.Fields{"operation": name, "duration": d}).Debug("operation recorded")
}

// Recent returns up to n records, newest first.
func (m *Monitor) Recent(n int) []OperationRecord {
	all := m.recent.ToSlice()
	ret := make([]OperationRecord, 0, n)
	for i := len(all) - 1; i >= 0 && len(ret) < n; i-- {
		ret = append(ret, all[i])
	}
	return ret
}

func (m *Monitor) Stats() Stats {
	return m.stats
}
