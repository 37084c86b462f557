package sampler

import (
	"sync"

	hook "github.com/robotn/gohook"
)

// GoHook listens for mouse presses system wide through libuiohook.
type GoHook struct {
	mu   sync.Mutex
	done chan struct{}
}

var _ Hook = (*GoHook)(nil)

func NewGoHook() *GoHook {
	return &GoHook{}
}

func (g *GoHook) Start(onPress func(PointerEvent)) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done != nil {
		return nil
	}

	done := make(chan struct{})
	g.done = done
	events := hook.Start()

	go func() {
		for {
			select {
			case <-done:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if pe, ok := fromHookEvent(ev); ok {
					onPress(pe)
				}
			}
		}
	}()
	return nil
}

func (g *GoHook) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done == nil {
		return
	}
	close(g.done)
	g.done = nil
	hook.End()
}

// fromHookEvent keeps button presses only. gohook reports the press itself as
// MouseHold; MouseDown arrives with the release.
func fromHookEvent(ev hook.Event) (PointerEvent, bool) {
	if ev.Kind != hook.MouseHold {
		return PointerEvent{}, false
	}
	pe := PointerEvent{X: int(ev.X), Y: int(ev.Y), Source: SourceScreen}
	switch ev.Button {
	case hook.MouseMap["left"]:
		pe.Button = ButtonPrimary
	case hook.MouseMap["right"]:
		pe.Button = ButtonSecondary
	case hook.MouseMap["center"]:
		pe.Button = ButtonTertiary
	default:
		return PointerEvent{}, false
	}
	return pe, true
}
