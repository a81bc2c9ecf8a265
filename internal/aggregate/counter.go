package aggregate

// Counter counts occurrences of string keys. A key that was never counted reads as zero.
// Keys are reported in first-seen order, which is the tie order of every ranking built
// from the counter.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Inc adds one to key.
func (c *Counter) Inc(key string) {
	c.Add(key, 1)
}

// Add adds n to key.
func (c *Counter) Add(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// Get returns the count for key, or zero.
func (c *Counter) Get(key string) int {
	if c == nil {
		return 0
	}
	return c.counts[key]
}

// Keys returns every counted key in first-seen order.
func (c *Counter) Keys() []string {
	if c == nil {
		return nil
	}
	return c.order
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// GroupedCounter is a two-level counter: group, then key. Missing groups and keys read as zero.
type GroupedCounter struct {
	groups map[string]*Counter
	order  []string
}

// NewGroupedCounter creates an empty grouped counter.
func NewGroupedCounter() *GroupedCounter {
	return &GroupedCounter{groups: make(map[string]*Counter)}
}

// Inc adds one to key within group.
func (g *GroupedCounter) Inc(group, key string) {
	c, ok := g.groups[group]
	if !ok {
		c = NewCounter()
		g.groups[group] = c
		g.order = append(g.order, group)
	}
	c.Inc(key)
}

// Get returns the count for key within group, or zero.
func (g *GroupedCounter) Get(group, key string) int {
	return g.Group(group).Get(key)
}

// Group returns the counter for a group. A missing group returns nil, which reads as empty.
func (g *GroupedCounter) Group(group string) *Counter {
	if g == nil {
		return nil
	}
	return g.groups[group]
}

// Groups returns every group in first-seen order.
func (g *GroupedCounter) Groups() []string {
	if g == nil {
		return nil
	}
	return g.order
}
