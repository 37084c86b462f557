// Package sampler reads the screen color under the cursor when the user
// right-clicks anywhere on the display.
//
// The global input hook runs on its own thread and only enqueues the click
// coordinates. A pump goroutine hands each pair to the UI scheduler, and the
// pixel read and state update happen on the UI goroutine.
package sampler

import (
	"context"
	"errors"
	"image"
	"log"
	"sync"

	"colorpicker/pkg/colorutils"
	"colorpicker/pkg/logger"
	"colorpicker/pkg/pickerstate"
	"colorpicker/pkg/uithread"
)

// DefaultQueueSize is used when New is given a non-positive size.
const DefaultQueueSize = 16

var ErrStopped = errors.New("sampler stopped")

// Button of a pointer event
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonTertiary
)

// Source tells which surface a pointer event was reported on.
type Source int

const (
	SourceWheel Source = iota
	SourceSlider
	SourceScreen
)

// PointerEvent is a button press in canvas-local or screen-global pixels.
type PointerEvent struct {
	X, Y   int
	Button Button
	Source Source
}

// Hook delivers button presses from anywhere on the display. Start must not
// block; onPress is called from the hook's own goroutine.
type Hook interface {
	Start(onPress func(PointerEvent)) error
	Stop()
}

// PixelReader returns the color currently shown at a global screen position.
type PixelReader interface {
	ReadPixel(x, y int) (colorutils.RGB, error)
}

type Sampler struct {
	state    *pickerstate.State
	hook     Hook
	reader   PixelReader
	schedule uithread.Scheduler
	logger   *log.Logger

	queue    chan image.Point
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
}

func New(state *pickerstate.State, hook Hook, reader PixelReader, schedule uithread.Scheduler, queueSize int, l *log.Logger) *Sampler {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if l == nil {
		l = logger.Discard()
	}
	return &Sampler{
		state:    state,
		hook:     hook,
		reader:   reader,
		schedule: schedule,
		logger:   l,
		queue:    make(chan image.Point, queueSize),
		done:     make(chan struct{}),
	}
}

// Run starts the hook and the pump. It returns once both are running; the
// sampler keeps going until ctx is cancelled or Stop is called.
func (s *Sampler) Run(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	if s.started {
		return nil
	}

	if err := s.hook.Start(s.onPress); err != nil {
		return err
	}
	s.started = true

	s.wg.Add(1)
	go s.pump(ctx)
	return nil
}

// Stop ends the hook and the pump. Safe to call more than once.
func (s *Sampler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		started := s.started
		s.mu.Unlock()

		close(s.done)
		if started {
			s.hook.Stop()
		}
		s.wg.Wait()
	})
}

func (s *Sampler) onPress(ev PointerEvent) {
	if ev.Button != ButtonSecondary || ev.Source != SourceScreen {
		return
	}
	s.Enqueue(ev.X, ev.Y)
}

// Enqueue records a sample request without blocking. It reports false when
// the request was dropped because the queue is full or the sampler stopped.
func (s *Sampler) Enqueue(x, y int) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.queue <- image.Pt(x, y):
		return true
	default:
		s.logger.Printf("Sample queue full, dropping click at %d,%d", x, y)
		return false
	}
}

func (s *Sampler) pump(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case p := <-s.queue:
			s.schedule(func() { s.sample(p) })
		}
	}
}

// sample runs on the UI goroutine.
func (s *Sampler) sample(p image.Point) {
	rgb, err := s.reader.ReadPixel(p.X, p.Y)
	if err != nil {
		s.logger.Println("Failed to read pixel:", err)
		return
	}
	s.state.SetFromRGBFrom(pickerstate.OriginScreen, rgb)
}
