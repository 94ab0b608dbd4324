package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Cutoff    int
	Heuristic string
	Pruning   bool
	Nodes     int
	Prunes    int
	Score     int
	Duration  time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string // "" on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes one search configuration taking part in an experiment
type AgentConfig struct {
	ID        int
	Cutoff    int
	Heuristic string
	Pruning   bool
}

type Collector interface {
	Start(cutoff int, heuristic string, pruning bool)
	AddNode()
	AddPrune()
	Complete(score int) SearchMetric
}

type collector struct {
	cutoff    int
	heuristic string
	pruning   bool
	startTime time.Time
	nodes     atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(cutoff int, heuristic string, pruning bool) {
	m.startTime = time.Now()
	m.cutoff = cutoff
	m.heuristic = heuristic
	m.pruning = pruning
	m.nodes.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Cutoff:    m.cutoff,
		Heuristic: m.heuristic,
		Pruning:   m.pruning,
		Nodes:     int(m.nodes.Load()),
		Prunes:    int(m.prunes.Load()),
		Score:     score,
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cutoff int, heuristic string, pruning bool) {}
func (m *dummyCollector) AddNode()                                          {}
func (m *dummyCollector) AddPrune()                                         {}
func (m *dummyCollector) Complete(score int) SearchMetric                   { return SearchMetric{Score: score} }
