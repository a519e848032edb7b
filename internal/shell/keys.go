package shell

// Action is what a key binding triggers.
type Action string

const (
	ActionNextPage       Action = "nextPage"
	ActionPrevPage       Action = "prevPage"
	ActionApproveAndNext Action = "approveAndNext"
	ActionZoomIn         Action = "zoomIn"
	ActionZoomOut        Action = "zoomOut"
	ActionOpenExport     Action = "openExport"
)

// Binding maps a key, optionally with Ctrl or Cmd held, to an action.
type Binding struct {
	Key    string `json:"key"`
	Ctrl   bool   `json:"ctrl,omitempty"`
	Action Action `json:"action"`
}

var keymap = []Binding{
	{Key: "ArrowRight", Action: ActionNextPage},
	{Key: "j", Action: ActionNextPage},
	{Key: "ArrowLeft", Action: ActionPrevPage},
	{Key: "k", Action: ActionPrevPage},
	{Key: "Enter", Ctrl: true, Action: ActionApproveAndNext},
	{Key: "+", Action: ActionZoomIn},
	{Key: "=", Action: ActionZoomIn},
	{Key: "-", Action: ActionZoomOut},
	{Key: "e", Ctrl: true, Action: ActionOpenExport},
}

// Keymap returns the keyboard bindings.
func Keymap() []Binding {
	out := make([]Binding, len(keymap))
	copy(out, keymap)
	return out
}

// ResolveKey returns the action for a key press. Presses made while typing
// in an input never trigger an action.
func ResolveKey(key string, ctrl, typing bool) (Action, bool) {
	if typing {
		return "", false
	}
	for _, b := range keymap {
		if b.Key == key && (!b.Ctrl || ctrl) {
			return b.Action, true
		}
	}
	return "", false
}

// IntentFor maps a page-navigation action onto an intent. Zoom and export
// actions stay in the view and have no intent.
func IntentFor(a Action) (Intent, bool) {
	switch a {
	case ActionNextPage:
		return Intent{Kind: IntentNextPage}, true
	case ActionPrevPage:
		return Intent{Kind: IntentPrevPage}, true
	case ActionApproveAndNext:
		return Intent{Kind: IntentApproveAndNext}, true
	}
	return Intent{}, false
}

// Zoom limits, in percent.
const (
	ZoomMin     = 50
	ZoomMax     = 200
	ZoomStep    = 25
	ZoomDefault = 100
)

// Zoom is the page image zoom level.
type Zoom struct {
	level int
}

// NewZoom returns a zoom at 100%.
func NewZoom() *Zoom {
	return &Zoom{level: ZoomDefault}
}

// ZoomAt returns a zoom at level clamped to the zoom limits. Zero means 100%.
func ZoomAt(level int) *Zoom {
	if level == 0 {
		return NewZoom()
	}
	return &Zoom{level: min(ZoomMax, max(ZoomMin, level))}
}

// Level returns the zoom in percent.
func (z *Zoom) Level() int { return z.level }

// Scale returns the zoom as a factor.
func (z *Zoom) Scale() float64 { return float64(z.level) / 100 }

// In zooms in one step, up to ZoomMax.
func (z *Zoom) In() int {
	z.level = min(ZoomMax, z.level+ZoomStep)
	return z.level
}

// Out zooms out one step, down to ZoomMin.
func (z *Zoom) Out() int {
	z.level = max(ZoomMin, z.level-ZoomStep)
	return z.level
}

// Reset returns to 100%.
func (z *Zoom) Reset() int {
	z.level = ZoomDefault
	return z.level
}

// Apply performs a zoom action and reports whether a was one.
func (z *Zoom) Apply(a Action) bool {
	switch a {
	case ActionZoomIn:
		z.In()
	case ActionZoomOut:
		z.Out()
	default:
		return false
	}
	return true
}
