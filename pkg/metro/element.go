package metro

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// ElementType identifies the kind of a render element.
//
// Each type is a single bit so that types combine into filter masks.
// The numeric order is also the draw order: lines are painted first,
// station names last.
type ElementType int

const (
	TypeLine ElementType = 1 << iota
	TypeTransferBackground
	TypeTransfer
	TypeStation
	TypeStationName
	TypeBackground
)

const (
	// OnlyTransport selects every type except station names.
	OnlyTransport = TypeLine | TypeTransferBackground | TypeTransfer | TypeStation

	// All selects every drawable type.
	All = OnlyTransport | TypeStationName
)

// String returns the name of a single element type.
func (t ElementType) String() string {
	switch t {
	case TypeLine:
		return "Line"
	case TypeTransferBackground:
		return "TransferBackground"
	case TypeTransfer:
		return "Transfer"
	case TypeStation:
		return "Station"
	case TypeStationName:
		return "StationName"
	case TypeBackground:
		return "Background"
	default:
		return "Unknown"
	}
}

// Canvas is the drawing surface elements paint on.
//
// *gg.Context satisfies Canvas.
type Canvas interface {
	Push()
	Pop()
	ClearWithColor(col gg.RGBA)
	SetColor(col color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	SetDash(lengths ...float64)
	ClearDash()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawCircle(x, y, r float64)
	DrawLine(x1, y1, x2, y2 float64)
	Fill() error
	Stroke() error
	RotateAbout(angle, x, y float64)
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

var _ Canvas = (*gg.Context)(nil)

// paint holds the precomputed appearance of an element.
type paint struct {
	color gg.RGBA
	width float64
	dash  []float64
}

// applyStroke configures c for stroking with p.
func (p *paint) applyStroke(c Canvas) {
	c.SetColor(p.color.Color())
	c.SetLineWidth(p.width)
	if len(p.dash) > 0 {
		c.SetDash(p.dash...)
	} else {
		c.ClearDash()
	}
}

// Element is one drawable primitive of a render program.
//
// Geometry and paints are computed once when the program is built; Draw
// only replays them. Selection switches between the normal and the
// highlighted paint and never touches geometry.
type Element struct {
	typ      ElementType
	bounds   Rect
	selected bool

	// source is the id of the originating model entity: station index for
	// stations and names, segment ID for lines, transfer index for transfers.
	source int

	normal    paint
	highlight paint

	points []Point
	radius float64
	inner  float64 // inner disc radius for stations out of service, 0 if none
	text   string
}

// Type returns the element type.
func (e *Element) Type() ElementType { return e.typ }

// Bounds returns the element bounding box in map coordinates.
func (e *Element) Bounds() Rect { return e.bounds }

// Selected reports whether the element is highlighted.
func (e *Element) Selected() bool { return e.selected }

// SetSelected switches the element between its normal and highlighted paint.
func (e *Element) SetSelected(selected bool) { e.selected = selected }

// Source returns the id of the model entity the element was built from.
func (e *Element) Source() int { return e.source }

// Draw paints the element onto c.
func (e *Element) Draw(c Canvas) {
	p := &e.normal
	if e.selected {
		p = &e.highlight
	}

	switch e.typ {
	case TypeStation:
		pt := e.points[0]
		c.SetColor(p.color.Color())
		c.DrawCircle(float64(pt.X), float64(pt.Y), e.radius)
		_ = c.Fill()
		if e.inner > 0 {
			c.SetColor(gg.White.Color())
			c.DrawCircle(float64(pt.X), float64(pt.Y), e.inner)
			_ = c.Fill()
		}

	case TypeStationName:
		cx, cy := e.bounds.Center()
		c.SetColor(p.color.Color())
		if e.bounds.Height() > e.bounds.Width() {
			c.Push()
			c.RotateAbout(-math.Pi/2, cx, cy)
			c.DrawStringAnchored(e.text, cx, cy, 0.5, 0.5)
			c.Pop()
		} else {
			c.DrawStringAnchored(e.text, cx, cy, 0.5, 0.5)
		}

	case TypeLine:
		p.applyStroke(c)
		c.SetLineCap(gg.LineCapRound)
		first := e.points[0]
		c.MoveTo(float64(first.X), float64(first.Y))
		for _, pt := range e.points[1:] {
			c.LineTo(float64(pt.X), float64(pt.Y))
		}
		_ = c.Stroke()
		c.ClearDash()

	case TypeTransfer, TypeTransferBackground:
		from, to := e.points[0], e.points[1]
		c.SetColor(p.color.Color())
		c.DrawCircle(float64(from.X), float64(from.Y), e.radius)
		c.DrawCircle(float64(to.X), float64(to.Y), e.radius)
		_ = c.Fill()
		p.applyStroke(c)
		c.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
		_ = c.Stroke()
	}
}
