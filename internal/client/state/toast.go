package state

import (
	"sync"
	"time"
)

// DefaultToastDelay is how long a notification stays visible.
const DefaultToastDelay = 2800 * time.Millisecond

// Toast is the single ephemeral notification shared by all actions.
type Toast struct {
	Text    string
	Tone    Tone
	Visible bool
}

// Notifier owns the toast. Showing while one is visible replaces the text and
// tone and restarts the hide timer; at most one toast exists at any time.
type Notifier struct {
	mu       sync.Mutex
	current  Toast
	timer    *time.Timer
	delay    time.Duration
	onChange func(Toast)
}

func NewNotifier(delay time.Duration) *Notifier {
	if delay <= 0 {
		delay = DefaultToastDelay
	}
	return &Notifier{delay: delay}
}

// OnChange registers a callback invoked after every visibility or content
// change. Used by the CLI to print toast lines as they happen.
func (n *Notifier) OnChange(fn func(Toast)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

func (n *Notifier) Show(text string, tone Tone) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = Toast{Text: text, Tone: tone, Visible: true}
	n.timer = time.AfterFunc(n.delay, n.hide)
	fn := n.onChange
	current := n.current
	n.mu.Unlock()

	if fn != nil {
		fn(current)
	}
}

func (n *Notifier) hide() {
	n.mu.Lock()
	n.current.Visible = false
	fn := n.onChange
	current := n.current
	n.mu.Unlock()

	if fn != nil {
		fn(current)
	}
}

func (n *Notifier) Current() Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
