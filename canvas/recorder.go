package canvas

import "github.com/pthm-cable/pond/geom"

// Op identifies a recorded primitive.
type Op uint8

const (
	OpClear Op = iota
	OpLine
	OpEllipse
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Command is one recorded drawing call. Fields not used by Op are zero.
type Command struct {
	Op     Op
	From   geom.Point // line start, ellipse center
	To     geom.Point // line end
	Width  float64    // line width, ellipse width
	Height float64    // ellipse height
	Color  Color      // line color, ellipse fill, clear color
	Stroke Stroke
}

// Recorder is a Surface that keeps every call in order, so Display and
// Render can be checked without a window.
type Recorder struct {
	Commands []Command
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear(c Color) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: c})
}

func (r *Recorder) Line(start, end geom.Point, width float64, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpLine, From: start, To: end, Width: width, Color: c})
}

func (r *Recorder) Ellipse(center geom.Point, width, height float64, fill Color, stroke Stroke) {
	r.Commands = append(r.Commands, Command{
		Op:     OpEllipse,
		From:   center,
		Width:  width,
		Height: height,
		Color:  fill,
		Stroke: stroke,
	})
}

// Reset drops recorded commands but keeps the backing storage.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns how many commands of the given kind were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}
