package gaze

// Cell holds the latest published Move. The loop is the only writer;
// readers either poll Get or subscribe. All calls happen on the UI loop.
type Cell struct {
	value    Move
	version  uint64
	nextID   uint64
	bindings []binding
}

type binding struct {
	id uint64
	fn func(Move)
}

// Unsubscribe removes a subscription. Calling it twice is a no-op.
type Unsubscribe func()

func NewCell(initial Move) *Cell {
	return &Cell{value: initial}
}

// Get returns the current value and its version. Version 0 means nothing
// has been published yet.
func (c *Cell) Get() (Move, uint64) {
	return c.value, c.version
}

// Publish stores m and notifies subscribers in subscription order.
func (c *Cell) Publish(m Move) {
	c.value = m
	c.version++

	bs := make([]binding, len(c.bindings))
	copy(bs, c.bindings)
	for _, b := range bs {
		b.fn(m)
	}
}

func (c *Cell) Subscribe(fn func(Move)) Unsubscribe {
	c.nextID++
	id := c.nextID
	c.bindings = append(c.bindings, binding{id: id, fn: fn})
	return func() {
		for i, b := range c.bindings {
			if b.id == id {
				c.bindings = append(c.bindings[:i], c.bindings[i+1:]...)
				return
			}
		}
	}
}
