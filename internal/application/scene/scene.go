// Package scene defines the Scene interface for game screens.
//
// Each game screen (main menu, playing, etc.) implements the Scene
// interface. The run loop calls Render once per accepted frame and acts on
// the returned Action.
package scene

// Scene represents a game screen.
type Scene interface {
	// Render updates and draws the scene for one frame.
	// elapsed is the frame time in seconds (the loop's fixed interval).
	// The context must not be retained after the call returns.
	Render(ctx *Context, elapsed float64) Action
}

// Disposer is implemented by scenes holding resources that must be released
// when the scene is replaced or the loop terminates.
type Disposer interface {
	Dispose()
}

// ActionKind is the kind of transition requested by a scene.
type ActionKind int

const (
	ActionContinue ActionKind = iota
	ActionQuit
	ActionChangeScreen
)

// String returns the string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionContinue:
		return "Continue"
	case ActionQuit:
		return "Quit"
	case ActionChangeScreen:
		return "ChangeScreen"
	default:
		return "Unknown"
	}
}

// Action tells the run loop what to do after a frame.
// The zero value continues with the current scene.
type Action struct {
	kind ActionKind
	next Scene
}

// Continue keeps the current scene.
func Continue() Action {
	return Action{kind: ActionContinue}
}

// Quit terminates the run loop.
func Quit() Action {
	return Action{kind: ActionQuit}
}

// ChangeScreen replaces the current scene with next.
// It panics if next is nil.
func ChangeScreen(next Scene) Action {
	if next == nil {
		panic("scene: ChangeScreen with nil scene")
	}
	return Action{kind: ActionChangeScreen, next: next}
}

// Kind returns the action kind.
func (a Action) Kind() ActionKind {
	return a.kind
}

// Next returns the scene to switch to, nil unless Kind is ActionChangeScreen.
func (a Action) Next() Scene {
	return a.next
}

// Func adapts a function to Scene.
type Func func(ctx *Context, elapsed float64) Action

// Render implements Scene.
func (f Func) Render(ctx *Context, elapsed float64) Action {
	return f(ctx, elapsed)
}
