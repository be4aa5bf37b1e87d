package domain

// PanPhase is the phase of a pan sample
type PanPhase string

const (
	PanStart  PanPhase = "start"
	PanMove   PanPhase = "move"
	PanEnd    PanPhase = "end"
	PanCancel PanPhase = "cancel"
)

// PointerType identifies the device that produced a gesture
type PointerType string

const (
	PointerTouch    PointerType = "touch"
	PointerPen      PointerType = "pen"
	PointerMouse    PointerType = "mouse"
	PointerKeyboard PointerType = "keyboard"
)

// PanSample is one sample of a horizontal pan gesture.
// Deltas are cumulative since the gesture began; velocity is in units per millisecond.
type PanSample struct {
	DeltaX    float64     `yaml:"dx"`
	DeltaY    float64     `yaml:"dy"`
	Phase     PanPhase    `yaml:"phase"`
	Pointer   PointerType `yaml:"pointer"`
	VelocityX float64     `yaml:"vx"`
}

// Rect is an axis aligned bounding rectangle
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Y+r.Height
}
