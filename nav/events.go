package nav

// Button identifies a pointer button in a ClickEvent.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// ClickEvent is a pointer press, with the position already converted to
// world space by the presentation layer.
type ClickEvent struct {
	X      float64
	Y      float64
	Button Button
}

// MoveEvent is a pointer move in world space.
type MoveEvent struct {
	X float64
	Y float64
}

// KeyEvent is a key press or release. Key carries the host's key code;
// navigation does not interpret it.
type KeyEvent struct {
	Key     int
	Pressed bool
}

// Handler receives input events from the game shell, one method per
// event kind.
type Handler interface {
	HandleClick(ev ClickEvent)
	HandleMove(ev MoveEvent)
	HandleKey(ev KeyEvent)
}
