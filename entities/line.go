package entities

import (
	"math"

	"github.com/zooyer/dxf-writer/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func NewLine(b Base, start, end core.Point) *Line {
	return &Line{BaseEntity: NewBase("LINE", b), Start: start, End: end}
}

func (l *Line) Encode(w *core.Writer, _ Context) {
	l.encodeHeader(w)
	w.Tag(100, "AcDbLine")
	w.Point(10, l.Start)
	w.Point(11, l.End)
}

func (l *Line) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: math.Min(l.Start.X, l.End.X), Y: math.Min(l.Start.Y, l.End.Y), Z: math.Min(l.Start.Z, l.End.Z)},
		Max: core.Point{X: math.Max(l.Start.X, l.End.X), Y: math.Max(l.Start.Y, l.End.Y), Z: math.Max(l.Start.Z, l.End.Z)},
	}
}
