package grid

import "sync/atomic"

// bytesPerElement is the payload size of one int64 element.
const bytesPerElement = 8

// Stats counts the traffic of one World.
type Stats struct {
	Messages int64 // point-to-point messages delivered to a link
	Bytes    int64 // payload bytes in those messages
	Barriers int64 // completed barrier episodes
}

// counters is the concurrent accumulator behind Stats.
type counters struct {
	messages atomic.Int64
	bytes    atomic.Int64
	barriers atomic.Int64
}

func (c *counters) message(elems int) {
	c.messages.Add(1)
	c.bytes.Add(int64(elems) * bytesPerElement)
}

func (c *counters) snapshot() Stats {
	return Stats{
		Messages: c.messages.Load(),
		Bytes:    c.bytes.Load(),
		Barriers: c.barriers.Load(),
	}
}
