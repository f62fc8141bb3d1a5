package canvas

// Buffer queues draw commands so independent layers can render concurrently
// and still flush to the real backend in back-to-front order.
type Buffer struct {
	objs []*Object
}

// Add appends a command to the buffer. It never fails.
func (b *Buffer) Add(obj *Object) error {
	b.objs = append(b.objs, obj)
	return nil
}

// Objects exposes the queued commands in insertion order.
func (b *Buffer) Objects() []*Object {
	return b.objs
}

// FlushTo replays the queued commands into sink in order and empties the
// buffer. It stops at the first sink error.
func (b *Buffer) FlushTo(sink Sink) error {
	for _, o := range b.objs {
		if err := sink.Add(o); err != nil {
			return err
		}
	}
	b.objs = b.objs[:0]
	return nil
}
