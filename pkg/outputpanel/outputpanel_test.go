package outputpanel

import (
	"image/color"
	"testing"
	"time"

	"colorpicker/pkg/pickerstate"
	"colorpicker/pkg/uithread"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCopiedFor = 150 * time.Millisecond

type fakeClipboard struct {
	content []string
}

func (f *fakeClipboard) SetContent(s string) {
	f.content = append(f.content, s)
}

func newTestPanel(t *testing.T) (*Panel, *pickerstate.State, *fakeClipboard, uithread.Queue) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	state := pickerstate.New()
	clip := &fakeClipboard{}
	q := uithread.NewQueue(8)
	p := New(state, clip, q.Schedule, testCopiedFor)
	t.Cleanup(p.Close)
	return p, state, clip, q
}

// nextTask waits for a scheduled task and runs it, like one turn of the UI loop.
func nextTask(t *testing.T, q uithread.Queue, within time.Duration) bool {
	t.Helper()
	select {
	case task := <-q:
		task()
		return true
	case <-time.After(within):
		return false
	}
}

func TestInitialWhite(t *testing.T) {
	p, _, _, _ := newTestPanel(t)
	assert.Equal(t, DefaultPrompt, p.Prompt.Text)
	assert.Equal(t, "#FFFFFF", p.HexText.Text)
	assert.Equal(t, "255", p.R.Text)
	assert.Equal(t, "255", p.G.Text)
	assert.Equal(t, "255", p.B.Text)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, p.Swatch.FillColor)
	assert.True(t, p.R.Disabled(), "RGB fields are read-only")
}

func TestFollowsState(t *testing.T) {
	p, state, _, _ := newTestPanel(t)

	state.SetFromRGB(18, 52, 86)

	assert.Equal(t, "#123456", p.HexText.Text)
	assert.Equal(t, "18", p.R.Text)
	assert.Equal(t, "52", p.G.Text)
	assert.Equal(t, "86", p.B.Text)
	assert.Equal(t, color.NRGBA{R: 18, G: 52, B: 86, A: 255}, p.Swatch.FillColor)

	state.SetValue(0)
	assert.Equal(t, "#000000", p.HexText.Text)
	assert.Equal(t, "0", p.G.Text)
}

func TestCopyShowsConfirmationThenReverts(t *testing.T) {
	p, state, clip, q := newTestPanel(t)
	state.SetFromRGB(255, 0, 0)

	test.Tap(p.Copy)

	assert.Equal(t, []string{"#FF0000"}, clip.content)
	assert.Equal(t, CopiedPrompt, p.Prompt.Text)

	require.True(t, nextTask(t, q, 2*time.Second), "revert was never scheduled")
	assert.Equal(t, DefaultPrompt, p.Prompt.Text)
}

func TestCopyTwiceRevertsAfterLastCopy(t *testing.T) {
	p, _, clip, q := newTestPanel(t)

	p.CopyHex()
	time.Sleep(testCopiedFor / 2)
	p.CopyHex()
	last := time.Now()

	require.True(t, nextTask(t, q, 2*time.Second))
	assert.GreaterOrEqual(t, time.Since(last), testCopiedFor, "prompt reverted before the last copy expired")
	assert.Equal(t, DefaultPrompt, p.Prompt.Text)
	assert.Len(t, clip.content, 2)

	assert.False(t, nextTask(t, q, testCopiedFor), "the first revert should have been cancelled")
	assert.Equal(t, DefaultPrompt, p.Prompt.Text)
}

func TestStaleRevertIgnored(t *testing.T) {
	p, _, _, _ := newTestPanel(t)

	p.CopyHex()
	p.mu.Lock()
	stale := p.generation
	p.mu.Unlock()
	p.CopyHex()

	p.restorePrompt(stale)
	assert.Equal(t, CopiedPrompt, p.Prompt.Text)
}

func TestContent(t *testing.T) {
	p, _, _, _ := newTestPanel(t)
	w := test.NewWindow(p.Content())
	defer w.Close()
	assert.NotNil(t, w.Content())
}
