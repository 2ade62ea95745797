package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/beancount-household/output"
)

// TimingCollector builds a tree of timed operations. The first timer started
// becomes the root; later timers nest under the innermost one still running.
type TimingCollector struct {
	mu      sync.Mutex
	root    *timerNode
	current *timerNode
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	parent   *timerNode
	children []*timerNode
}

func (n *timerNode) duration() time.Duration {
	if n.end.IsZero() {
		return 0
	}
	return n.end.Sub(n.start)
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{name: name, start: time.Now()}
	if c.root == nil {
		c.root = node
	} else {
		node.parent = c.current
		c.current.children = append(c.current.children, node)
	}
	c.current = node

	return &timingTimer{collector: c, node: node}
}

func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}
	writeTree(w, c.root, styles)
}

// Durations returns the duration of every ended timer by name. Timers that
// share a name are summed.
func (c *TimingCollector) Durations() map[string]time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	durations := make(map[string]time.Duration)
	var walk func(*timerNode)
	walk = func(n *timerNode) {
		if !n.end.IsZero() {
			durations[n.name] += n.duration()
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	if c.root != nil {
		walk(c.root)
	}
	return durations
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()
	if t.collector.current == t.node && t.node.parent != nil {
		t.collector.current = t.node.parent
	}
}

// Child starts a timer nested directly under this one, regardless of which
// timer is innermost.
func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	node := &timerNode{name: name, start: time.Now(), parent: t.node}
	t.node.children = append(t.node.children, node)

	return &timingTimer{collector: t.collector, node: node}
}
