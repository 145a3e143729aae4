package entities

import "github.com/zooyer/dxf-writer/core"

// Image 光栅图像引用，U/V 为单个像素在图形坐标中的向量
type Image struct {
	BaseEntity
	Location core.Point
	U, V     core.Point
	PixelsW  int
	PixelsH  int
	Def      core.Handle // IMAGEDEF
	Reactor  core.Handle // IMAGEDEF_REACTOR
}

// NewImage 按图形尺寸 width×height 铺满像素
func NewImage(b Base, at core.Point, width, height float64, pixelsW, pixelsH int, def, reactor core.Handle) *Image {
	if pixelsW < 1 {
		pixelsW = 1
	}
	if pixelsH < 1 {
		pixelsH = 1
	}
	return &Image{
		BaseEntity: NewBase("IMAGE", b),
		Location:   at,
		U:          core.Point{X: width / float64(pixelsW)},
		V:          core.Point{Y: height / float64(pixelsH)},
		PixelsW:    pixelsW,
		PixelsH:    pixelsH,
		Def:        def,
		Reactor:    reactor,
	}
}

func (i *Image) Encode(w *core.Writer, _ Context) {
	i.encodeHeader(w)
	w.Tag(100, "AcDbRasterImage")
	w.Int(90, 0)
	w.Point(10, i.Location)
	w.Point(11, i.U)
	w.Point(12, i.V)
	w.Float(13, float64(i.PixelsW))
	w.Float(23, float64(i.PixelsH))
	w.Handle(340, i.Def)
	w.Int(70, 7)
	w.Int(280, 0)
	w.Int(281, 50)
	w.Int(282, 50)
	w.Int(283, 0)
	w.Handle(360, i.Reactor)
	w.Int(71, 1)
	w.Int(91, 2)
	w.Point2(14, core.Point{X: -0.5, Y: -0.5})
	w.Point2(14, core.Point{X: float64(i.PixelsW) - 0.5, Y: float64(i.PixelsH) - 0.5})
}

func (i *Image) BBox() core.BBox {
	return core.BBox{
		Min: i.Location,
		Max: core.Point{
			X: i.Location.X + i.U.X*float64(i.PixelsW),
			Y: i.Location.Y + i.V.Y*float64(i.PixelsH),
			Z: i.Location.Z,
		},
	}
}

// ImageDef 图像定义对象，归 ACAD_IMAGE_DICT 所有
type ImageDef struct {
	ID       core.Handle
	Owner    core.Handle
	Name     string
	FileName string
	PixelsW  int
	PixelsH  int
	Reactors []core.Handle
}

func (d *ImageDef) Encode(w *core.Writer) {
	w.Tag(0, "IMAGEDEF")
	w.Handle(5, d.ID)
	w.Tag(102, "{ACAD_REACTORS")
	w.Handle(330, d.Owner)
	for _, r := range d.Reactors {
		w.Handle(330, r)
	}
	w.Tag(102, "}")
	w.Handle(330, d.Owner)
	w.Tag(100, "AcDbRasterImageDef")
	w.Int(90, 0)
	w.Tag(1, d.FileName)
	w.Float(10, float64(d.PixelsW))
	w.Float(20, float64(d.PixelsH))
	w.Float(11, 1)
	w.Float(21, 1)
	w.Int(280, 1)
	w.Int(281, 0)
}

// ImageDefReactor 每个 IMAGE 一个，归该 IMAGE 所有
type ImageDefReactor struct {
	ID    core.Handle
	Image core.Handle
}

func (r *ImageDefReactor) Encode(w *core.Writer) {
	w.Tag(0, "IMAGEDEF_REACTOR")
	w.Handle(5, r.ID)
	w.Handle(330, r.Image)
	w.Tag(100, "AcDbRasterImageDefReactor")
	w.Int(90, 2)
	w.Handle(330, r.Image)
}
