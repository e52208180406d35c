package pipeline

import (
	"context"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// fanout broadcasts classified plays to a fixed set of subscriber
// channels. Each reducer consumes its own channel, so the reducers
// never share accumulators and need no locking; the only join point is
// the WaitGroup in Run.
type fanout struct {
	outs []chan model.ClassifiedPlay
}

func newFanout(subscribers, buffer int) *fanout {
	f := &fanout{outs: make([]chan model.ClassifiedPlay, subscribers)}
	for i := range f.outs {
		f.outs[i] = make(chan model.ClassifiedPlay, buffer)
	}
	return f
}

// subscribe returns the receive side of subscriber i's channel.
func (f *fanout) subscribe(i int) <-chan model.ClassifiedPlay {
	return f.outs[i]
}

// publish delivers p to every subscriber, blocking on a full buffer.
// Returns false if ctx is canceled mid-delivery.
func (f *fanout) publish(ctx context.Context, p model.ClassifiedPlay) bool {
	if ctx.Err() != nil {
		return false
	}
	for _, out := range f.outs {
		select {
		case out <- p:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// close signals end of stream to all subscribers.
func (f *fanout) close() {
	for _, out := range f.outs {
		close(out)
	}
}
