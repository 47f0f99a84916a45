package event

// Sender is the send side of the event stream. Channels are reference
// types, so handing out a Sender is just copying the value — every node
// task gets its own copy of the same underlying channel.
type Sender = chan<- Event

// NewStream creates the grid's single unbounded event channel. Go has no
// built-in unbounded channel, so this runs a goroutine that buffers
// pending events in a growable slice, forwarding to out as capacity (the
// receiver's attention) allows. This is deliberately unbounded: under
// extreme throughput it is the memory sink, and a bounded drop-or-block
// replacement is left as a future decision, not implemented here.
//
// Closing in (the returned Sender) drains any buffered events, then closes
// out.
func NewStream() (Sender, <-chan Event) {
	in := make(chan Event)
	out := make(chan Event)

	go func() {
		defer close(out)

		var queue []Event
		closed := false

		for {
			var sendCh chan Event
			var front Event
			if len(queue) > 0 {
				sendCh = out
				front = queue[0]
			} else if closed {
				return
			}

			select {
			case v, ok := <-in:
				if !ok {
					closed = true
					in = nil
					continue
				}
				queue = append(queue, v)

			case sendCh <- front:
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
