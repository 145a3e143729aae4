package entities

import (
	"math"

	"github.com/zooyer/dxf-writer/core"
)

// Ellipse MajorAxis 是长轴端点相对于圆心的向量；参数单位为弧度
type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point
	Ratio      float64 // 短轴/长轴
	StartParam float64
	EndParam   float64
}

func NewEllipse(b Base, center, majorAxis core.Point, ratio, start, end float64) *Ellipse {
	return &Ellipse{
		BaseEntity: NewBase("ELLIPSE", b),
		Center:     center,
		MajorAxis:  majorAxis,
		Ratio:      ratio,
		StartParam: start,
		EndParam:   end,
	}
}

func (e *Ellipse) Encode(w *core.Writer, _ Context) {
	e.encodeHeader(w)
	w.Tag(100, "AcDbEllipse")
	w.Point(10, e.Center)
	w.Point(11, e.MajorAxis)
	w.Float(210, 0)
	w.Float(220, 0)
	w.Float(230, 1)
	w.Float(40, e.Ratio)
	w.Float(41, e.StartParam)
	w.Float(42, e.EndParam)
}

// BBox 按整椭圆估算
func (e *Ellipse) BBox() core.BBox {
	a := math.Hypot(e.MajorAxis.X, e.MajorAxis.Y)
	b := a * e.Ratio
	theta := math.Atan2(e.MajorAxis.Y, e.MajorAxis.X)
	cos, sin := math.Cos(theta), math.Sin(theta)

	dx := math.Sqrt(a*a*cos*cos + b*b*sin*sin)
	dy := math.Sqrt(a*a*sin*sin + b*b*cos*cos)

	return core.BBox{
		Min: core.Point{X: e.Center.X - dx, Y: e.Center.Y - dy, Z: e.Center.Z},
		Max: core.Point{X: e.Center.X + dx, Y: e.Center.Y + dy, Z: e.Center.Z},
	}
}
