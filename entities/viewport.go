package entities

import "github.com/zooyer/dxf-writer/core"

// Viewport 布局的图纸视口（ID 1），居中覆盖整张图纸
type Viewport struct {
	BaseEntity
	Center core.Point
	Width  float64
	Height float64
}

func NewViewport(b Base, center core.Point, width, height float64) *Viewport {
	return &Viewport{BaseEntity: NewBase("VIEWPORT", b), Center: center, Width: width, Height: height}
}

// Encode 视口状态（组码 68）在 ENTITIES 段为激活，在 BLOCKS 段为关闭
func (v *Viewport) Encode(w *core.Writer, ctx Context) {
	status := 0
	if ctx.Active {
		status = 1
	}

	v.encodeHeader(w)
	w.Tag(100, "AcDbViewport")
	w.Point(10, v.Center)
	w.Float(40, v.Width)
	w.Float(41, v.Height)
	w.Int(68, status)
	w.Int(69, 1)
	w.Point2(12, v.Center)
	w.Point2(13, core.Point{})
	w.Point2(14, core.Point{X: 10, Y: 10})
	w.Point2(15, core.Point{X: 10, Y: 10})
	w.Point(16, core.Point{Z: 1})
	w.Point(17, core.Point{})
	w.Float(42, 50)
	w.Float(43, 0)
	w.Float(44, 0)
	w.Float(45, v.Height)
	w.Float(50, 0)
	w.Float(51, 0)
	w.Int(72, 1000)
	w.Int(90, 32864)
	w.Tag(1, "")
	w.Int(281, 0)
	w.Int(71, 1)
	w.Int(74, 0)
	w.Point(110, core.Point{})
	w.Point(111, core.Point{X: 1})
	w.Point(112, core.Point{Y: 1})
	w.Int(79, 0)
	w.Float(146, 0)
}

func (v *Viewport) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: v.Center.X - v.Width/2, Y: v.Center.Y - v.Height/2, Z: v.Center.Z},
		Max: core.Point{X: v.Center.X + v.Width/2, Y: v.Center.Y + v.Height/2, Z: v.Center.Z},
	}
}
