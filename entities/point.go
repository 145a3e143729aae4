package entities

import "github.com/zooyer/dxf-writer/core"

type Point struct {
	BaseEntity
	Location core.Point
}

func NewPoint(b Base, at core.Point) *Point {
	return &Point{BaseEntity: NewBase("POINT", b), Location: at}
}

func (p *Point) Encode(w *core.Writer, _ Context) {
	p.encodeHeader(w)
	w.Tag(100, "AcDbPoint")
	w.Point(10, p.Location)
}

func (p *Point) BBox() core.BBox {
	return core.BBox{Min: p.Location, Max: p.Location}
}
