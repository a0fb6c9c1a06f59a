package runner

import (
	"context"
	"sync"

	"github.com/ytget/office-converter/internal/model"
)

// Launcher starts batches one at a time
type Launcher struct {
	resolver Resolver
	defaults []Option

	mu     sync.Mutex
	active *Runner
}

// NewLauncher creates a launcher whose runners use resolver and the default options
func NewLauncher(resolver Resolver, opts ...Option) *Launcher {
	return &Launcher{
		resolver: resolver,
		defaults: opts,
	}
}

// Launch starts batch in the background. It returns ErrBusy while another
// batch is running. The launcher becomes idle again before cb's terminal
// callback runs, so a new batch may be launched from inside it.
func (l *Launcher) Launch(ctx context.Context, batch model.Batch, cb Callbacks, opts ...Option) (*Runner, error) {
	l.mu.Lock()
	if l.active != nil {
		l.mu.Unlock()
		return nil, ErrBusy
	}

	var r *Runner
	wrapped := Callbacks{
		OnProgress: cb.OnProgress,
		OnCompleted: func() {
			l.release(r)
			if cb.OnCompleted != nil {
				cb.OnCompleted()
			}
		},
		OnFailed: func(message string) {
			l.release(r)
			if cb.OnFailed != nil {
				cb.OnFailed(message)
			}
		},
	}

	all := make([]Option, 0, len(l.defaults)+len(opts)+1)
	all = append(all, l.defaults...)
	all = append(all, opts...)
	all = append(all, WithCallbacks(wrapped))

	r = New(batch, l.resolver, all...)
	l.active = r
	l.mu.Unlock()

	if err := r.Start(ctx); err != nil {
		l.release(r)
		return nil, err
	}
	return r, nil
}

// Busy reports whether a batch is running
func (l *Launcher) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active != nil
}

// Active returns the running batch's runner, or nil
func (l *Launcher) Active() *Runner {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

func (l *Launcher) release(r *Runner) {
	l.mu.Lock()
	if l.active == r {
		l.active = nil
	}
	l.mu.Unlock()
}
