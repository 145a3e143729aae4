package entities

import (
	"math"

	"github.com/zooyer/dxf-writer/core"
)

type LWPolyline struct {
	BaseEntity
	Vertices  []core.Point
	Closed    bool
	Elevation float64
}

// NewLWPolyline 顶点切片会被复制，实体追加后不再变化
func NewLWPolyline(b Base, vertices []core.Point, closed bool) *LWPolyline {
	vs := make([]core.Point, len(vertices))
	copy(vs, vertices)

	var elevation float64
	if len(vs) > 0 {
		elevation = vs[0].Z
	}

	return &LWPolyline{
		BaseEntity: NewBase("LWPOLYLINE", b),
		Vertices:   vs,
		Closed:     closed,
		Elevation:  elevation,
	}
}

func (l *LWPolyline) Encode(w *core.Writer, _ Context) {
	l.encodeHeader(w)
	w.Tag(100, "AcDbPolyline")
	w.Int(90, len(l.Vertices))
	if l.Closed {
		w.Int(70, 1)
	} else {
		w.Int(70, 0)
	}
	w.Float(43, 0)
	if l.Elevation != 0 {
		w.Float(38, l.Elevation)
	}
	for _, v := range l.Vertices {
		w.Point2(10, v)
	}
}

func (l *LWPolyline) BBox() core.BBox {
	if len(l.Vertices) == 0 {
		return core.BBox{}
	}
	miX, miY, maX, maY := l.Vertices[0].X, l.Vertices[0].Y, l.Vertices[0].X, l.Vertices[0].Y
	for _, v := range l.Vertices {
		miX = math.Min(miX, v.X)
		miY = math.Min(miY, v.Y)
		maX = math.Max(maX, v.X)
		maY = math.Max(maY, v.Y)
	}
	return core.BBox{Min: core.Point{X: miX, Y: miY, Z: l.Elevation}, Max: core.Point{X: maX, Y: maY, Z: l.Elevation}}
}
