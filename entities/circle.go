package entities

import (
	"math"

	"github.com/zooyer/dxf-writer/core"
)

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

func NewCircle(b Base, center core.Point, radius float64) *Circle {
	return &Circle{BaseEntity: NewBase("CIRCLE", b), Center: center, Radius: radius}
}

func (c *Circle) Encode(w *core.Writer, _ Context) {
	c.encodeHeader(w)
	w.Tag(100, "AcDbCircle")
	w.Point(10, c.Center)
	w.Float(40, c.Radius)
}

func (c *Circle) BBox() core.BBox {
	return squareBox(c.Center, c.Radius)
}

// Arc 角度单位为度，逆时针
type Arc struct {
	Circle
	StartAngle float64
	EndAngle   float64
}

func NewArc(b Base, center core.Point, radius, start, end float64) *Arc {
	return &Arc{
		Circle:     Circle{BaseEntity: NewBase("ARC", b), Center: center, Radius: radius},
		StartAngle: start,
		EndAngle:   end,
	}
}

func (a *Arc) Encode(w *core.Writer, ctx Context) {
	a.Circle.Encode(w, ctx)
	w.Tag(100, "AcDbArc")
	w.Float(50, a.StartAngle)
	w.Float(51, a.EndAngle)
}

// BBox 取两端点和落在弧上的象限点
func (a *Arc) BBox() core.BBox {
	start := normalizeDegrees(a.StartAngle)
	end := normalizeDegrees(a.EndAngle)
	if end <= start {
		end += 360
	}

	angles := []float64{start, end}
	for q := 0.0; q < 720; q += 90 {
		if q > start && q < end {
			angles = append(angles, q)
		}
	}

	box := core.BBox{
		Min: core.Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: a.Center.Z},
		Max: core.Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: a.Center.Z},
	}
	for _, deg := range angles {
		rad := deg * math.Pi / 180.0
		x := a.Center.X + a.Radius*math.Cos(rad)
		y := a.Center.Y + a.Radius*math.Sin(rad)
		box.Min.X = math.Min(box.Min.X, x)
		box.Min.Y = math.Min(box.Min.Y, y)
		box.Max.X = math.Max(box.Max.X, x)
		box.Max.Y = math.Max(box.Max.Y, y)
	}
	return box
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func squareBox(center core.Point, r float64) core.BBox {
	return core.BBox{
		Min: core.Point{X: center.X - r, Y: center.Y - r, Z: center.Z},
		Max: core.Point{X: center.X + r, Y: center.Y + r, Z: center.Z},
	}
}
