package runner

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/office-converter/internal/convert"
	"github.com/ytget/office-converter/internal/model"
)

// DefaultPacing is the pause between announcing a file and converting it
const DefaultPacing = 300 * time.Millisecond

// Progress label prefixes, followed by the file's display name
const (
	LabelStarting  = "Starting "
	LabelConverted = "Converted: "
)

// Callbacks receive run notifications. They are called on the runner's
// goroutine, one at a time and in order. Any of them may be nil.
type Callbacks struct {
	OnProgress  func(model.ProgressEvent)
	OnCompleted func()
	OnFailed    func(message string)
}

// Resolver returns the converter for a mode
type Resolver interface {
	ConverterFor(mode model.ConversionMode) (convert.Converter, error)
}

// Option configures a Runner
type Option func(*Runner)

// WithPacing sets the pause before each conversion. Zero disables it.
func WithPacing(d time.Duration) Option {
	return func(r *Runner) {
		if d < 0 {
			d = 0
		}
		r.pacing = d
	}
}

// WithCallbacks sets the progress and outcome callbacks
func WithCallbacks(cb Callbacks) Option {
	return func(r *Runner) {
		r.callbacks = cb
	}
}

// Runner converts the files of one batch in order
type Runner struct {
	batch     model.Batch
	resolver  Resolver
	pacing    time.Duration
	callbacks Callbacks

	mu      sync.RWMutex
	state   model.RunState
	outcome model.Outcome
	done    chan struct{}
}

// New creates an idle runner for batch
func New(batch model.Batch, resolver Resolver, opts ...Option) *Runner {
	r := &Runner{
		batch:    batch,
		resolver: resolver,
		pacing:   DefaultPacing,
		state:    model.RunStateIdle,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Batch returns the batch this runner executes
func (r *Runner) Batch() model.Batch {
	return r.batch
}

// State returns the current run state
func (r *Runner) State() model.RunState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Done is closed after the terminal callback has returned
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Start begins the run on a new goroutine and returns immediately.
// ctx bounds the pacing pause and each converter call; it is not a cancel
// button, a cancelled context simply fails the current file.
func (r *Runner) Start(ctx context.Context) error {
	if r.batch.Len() == 0 {
		return model.ErrEmptyBatch
	}

	r.mu.Lock()
	if r.state.IsActive() || r.state.IsFinished() {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyStarted, r.state)
	}
	r.state = model.RunStateRunning
	r.mu.Unlock()

	go r.run(ctx)
	return nil
}

// Wait blocks until the run has finished and returns its outcome
func (r *Runner) Wait() model.Outcome {
	<-r.done

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.outcome
}

// Run starts the runner and waits for the outcome
func (r *Runner) Run(ctx context.Context) (model.Outcome, error) {
	if err := r.Start(ctx); err != nil {
		return model.Outcome{}, err
	}
	return r.Wait(), nil
}

// run is the worker loop
func (r *Runner) run(ctx context.Context) {
	mode := r.batch.Mode()
	files := r.batch.Files()
	total := len(files)

	log.Printf("Batch %s started: %d file(s), mode %s", r.batch.ID(), total, mode)

	converter, err := r.resolver.ConverterFor(mode)
	if err != nil {
		log.Printf("Batch %s failed: %v", r.batch.ID(), err)
		r.finish(model.Failed("", err))
		return
	}

	for i, file := range files {
		r.emit(model.ProgressEvent{
			Percent: percentOf(i, total),
			Label:   LabelStarting + file.Name,
		})

		if err := r.pause(ctx); err != nil {
			r.fail(file, err)
			return
		}

		output := mode.OutputLocation(file.Path, r.batch.OutputDir())
		if err := converter.Convert(ctx, file.Path, output); err != nil {
			r.fail(file, err)
			return
		}

		r.emit(model.ProgressEvent{
			Percent: percentOf(i+1, total),
			Label:   LabelConverted + file.Name,
		})
	}

	log.Printf("Batch %s completed in %s", r.batch.ID(), time.Since(r.batch.CreatedAt()).Round(time.Millisecond))
	r.finish(model.Completed())
}

// pause waits for the pacing delay or until ctx is done
func (r *Runner) pause(ctx context.Context) error {
	if r.pacing <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.pacing)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// fail ends the run on the file that could not be converted
func (r *Runner) fail(file model.FileEntry, err error) {
	convErr := &ConversionError{File: file.Path, Mode: r.batch.Mode(), Err: err}
	log.Printf("Batch %s failed: %v", r.batch.ID(), convErr)
	r.finish(model.Failed(err.Error(), convErr))
}

// finish records the outcome, notifies the listener, then releases waiters
func (r *Runner) finish(outcome model.Outcome) {
	r.mu.Lock()
	r.state = outcome.State
	r.outcome = outcome
	r.mu.Unlock()

	if outcome.Succeeded() {
		if r.callbacks.OnCompleted != nil {
			r.callbacks.OnCompleted()
		}
	} else if r.callbacks.OnFailed != nil {
		r.callbacks.OnFailed(outcome.Message)
	}

	close(r.done)
}

func (r *Runner) emit(event model.ProgressEvent) {
	if r.callbacks.OnProgress != nil {
		r.callbacks.OnProgress(event)
	}
}

// percentOf returns floor(done*100/total)
func percentOf(done, total int) int {
	if total <= 0 {
		return 0
	}
	return done * 100 / total
}
