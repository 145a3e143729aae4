package entities

import (
	"math"

	"github.com/zooyer/dxf-writer/core"
)

// Hatch 实体填充（SOLID），每个 Loop 是一条闭合多段线边界
type Hatch struct {
	BaseEntity
	Loops     [][]core.Point
	Elevation float64
}

func NewHatch(b Base, loops [][]core.Point) *Hatch {
	ls := make([][]core.Point, 0, len(loops))
	for _, loop := range loops {
		l := make([]core.Point, len(loop))
		copy(l, loop)
		ls = append(ls, l)
	}

	var elevation float64
	if len(ls) > 0 && len(ls[0]) > 0 {
		elevation = ls[0][0].Z
	}

	return &Hatch{BaseEntity: NewBase("HATCH", b), Loops: ls, Elevation: elevation}
}

func (h *Hatch) Encode(w *core.Writer, _ Context) {
	h.encodeHeader(w)
	w.Tag(100, "AcDbHatch")
	w.Point(10, core.Point{Z: h.Elevation})
	w.Point(210, core.Point{Z: 1})
	w.Tag(2, "SOLID")
	w.Int(70, 1) // 实体填充
	w.Int(71, 0) // 非关联
	w.Int(91, len(h.Loops))
	for i, loop := range h.Loops {
		flag := 2 // 多段线边界
		if i == 0 {
			flag |= 1 // 外边界
		}
		w.Int(92, flag)
		w.Int(72, 0)
		w.Int(73, 1)
		w.Int(93, len(loop))
		for _, p := range loop {
			w.Point2(10, p)
		}
		w.Int(97, 0)
	}
	w.Int(75, 0)
	w.Int(76, 1)
	w.Int(98, 0)
}

func (h *Hatch) BBox() core.BBox {
	box := core.BBox{
		Min: core.Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: h.Elevation},
		Max: core.Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: h.Elevation},
	}
	empty := true
	for _, loop := range h.Loops {
		for _, p := range loop {
			empty = false
			box.Min.X = math.Min(box.Min.X, p.X)
			box.Min.Y = math.Min(box.Min.Y, p.Y)
			box.Max.X = math.Max(box.Max.X, p.X)
			box.Max.Y = math.Max(box.Max.Y, p.Y)
		}
	}
	if empty {
		return core.BBox{}
	}
	return box
}
