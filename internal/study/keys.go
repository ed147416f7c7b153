package study

// Key is a discrete key-press event name, matching the DOM convention the
// client sends ("ArrowLeft", " ", "f").
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = " "
	KeyFullscreen Key = "f"
)

// Session is the subset of session behavior a key binding drives. Both
// DeckSession and QuizSession satisfy it.
type Session interface {
	Navigate(Direction) bool
	ToggleFlip()
}

// HandleResult reports what a key press did. SuppressDefault is set when
// the caller must stop the host's default handling (spacebar scroll).
type HandleResult struct {
	Handled         bool
	SuppressDefault bool
}

// KeyBinding maps key presses onto session transitions for one mounted
// view. On touch-primary devices the binding is created suspended so it
// never intercepts on-screen-keyboard input or double-handles gestures.
// Close releases the binding; it is idempotent, and a closed binding
// ignores all input. Callers pair one NewKeyBinding with one Close per
// view mount so handlers never accumulate across mounts.
type KeyBinding struct {
	session      Session
	fullscreen   func()
	touchPrimary bool
	closed       bool
}

// NewKeyBinding binds keys to session. fullscreen is invoked for the
// fullscreen toggle key and may be nil; display mode is the caller's
// concern, not the session's.
func NewKeyBinding(session Session, fullscreen func(), touchPrimary bool) *KeyBinding {
	return &KeyBinding{
		session:      session,
		fullscreen:   fullscreen,
		touchPrimary: touchPrimary,
	}
}

// Handle dispatches one key press.
func (b *KeyBinding) Handle(k Key) HandleResult {
	if b.closed || b.touchPrimary {
		return HandleResult{}
	}

	switch k {
	case KeyArrowLeft:
		b.session.Navigate(Prev)
		return HandleResult{Handled: true}
	case KeyArrowRight:
		b.session.Navigate(Next)
		return HandleResult{Handled: true}
	case KeySpace:
		b.session.ToggleFlip()
		return HandleResult{Handled: true, SuppressDefault: true}
	case KeyFullscreen:
		if b.fullscreen != nil {
			b.fullscreen()
		}
		return HandleResult{Handled: true}
	default:
		return HandleResult{}
	}
}

// Close releases the binding. Safe to call more than once.
func (b *KeyBinding) Close() {
	b.closed = true
}
