package dxf

import (
	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

// inEntitiesSection 当前块且绑定了布局时，实体写入 ENTITIES 段而不是 BLOCKS 段
func (d *Document) inEntitiesSection(b *Block) bool {
	return b.Name == d.ctx.block && b.Layout != 0
}

func (d *Document) blockRecordFragment() string {
	w := core.NewWriter()

	for _, b := range d.blocks.All() {
		w.Tag(0, "BLOCK_RECORD")
		w.Handle(5, b.Record)
		if len(b.References) > 0 {
			w.Tag(102, "{BLKREFS")
			for _, ref := range b.References {
				w.Handle(331, ref)
			}
			w.Tag(102, "}")
		}
		w.Handle(330, b.Owner)
		w.Tag(100, "AcDbSymbolTableRecord")
		w.Tag(100, "AcDbBlockTableRecord")
		w.Tag(2, b.Name)
		w.Handle(340, b.Layout)
		w.Int(70, 0)
		w.Int(280, 1)
		w.Int(281, 0)
	}

	return w.String()
}

func (d *Document) blocksFragment() string {
	w := core.NewWriter()

	for _, b := range d.blocks.All() {
		w.Tag(0, "BLOCK")
		w.Handle(5, b.Begin)
		w.Handle(330, b.Record)
		w.Tag(100, "AcDbEntity")
		if b.PaperSpace() {
			w.Int(67, 1)
		}
		w.Tag(8, b.Layer)
		w.Tag(100, "AcDbBlockBegin")
		w.Tag(2, b.Name)
		w.Int(70, 0)
		w.Point(10, b.Base)
		w.Tag(3, b.Name)
		w.Tag(1, "")

		if !d.inEntitiesSection(b) {
			for _, e := range b.Entities {
				e.Encode(w, entities.Context{Active: false})
			}
		}

		w.Tag(0, "ENDBLK")
		w.Handle(5, b.End)
		w.Handle(330, b.Record)
		w.Tag(100, "AcDbEntity")
		if b.PaperSpace() {
			w.Int(67, 1)
		}
		w.Tag(8, b.Layer)
		w.Tag(100, "AcDbBlockEnd")
	}

	return w.String()
}

func (d *Document) entitiesFragment() string {
	w := core.NewWriter()

	b := d.activeBlock()
	if b == nil {
		return ""
	}
	for _, e := range b.Entities {
		e.Encode(w, entities.Context{Active: true})
	}

	return w.String()
}

// layoutsFragment 主布局使用最近一次设置的页边距，其余布局使用各自的页边距
func (d *Document) layoutsFragment() string {
	w := core.NewWriter()

	for name, l := range d.layouts.All() {
		margins := l.Margins
		if name == d.home {
			margins = d.margins
		}

		rotation := 0
		if l.Orientation == Landscape {
			rotation = 1
		}

		w.Tag(0, "LAYOUT")
		w.Handle(5, l.Handle)
		w.Tag(102, "{ACAD_REACTORS")
		w.Handle(330, handleLayoutDictionary)
		w.Tag(102, "}")
		w.Handle(330, handleLayoutDictionary)

		w.Tag(100, "AcDbPlotSettings")
		w.Tag(1, "")
		w.Tag(2, "none_device")
		w.Tag(4, "")
		w.Tag(6, "")
		w.Float(40, margins.Left)
		w.Float(41, margins.Bottom)
		w.Float(42, margins.Right)
		w.Float(43, margins.Top)
		w.Float(44, l.Paper.Width)
		w.Float(45, l.Paper.Height)
		w.Float(46, 0)
		w.Float(47, 0)
		w.Float(48, 0)
		w.Float(49, 0)
		w.Float(140, 0)
		w.Float(141, 0)
		w.Float(142, 1)
		w.Float(143, 1)
		w.Int(70, 688)
		w.Int(72, 1) // 毫米
		w.Int(73, rotation)
		w.Int(74, 5) // 按布局打印
		w.Tag(7, "")
		w.Int(75, 16) // 1:1
		w.Float(147, 1)
		w.Float(148, 0)
		w.Float(149, 0)

		w.Tag(100, "AcDbLayout")
		w.Tag(1, l.Name)
		w.Int(70, 1)
		w.Int(71, l.TabOrder)
		w.Point2(10, core.Point{})
		w.Point2(11, core.Point{X: l.Paper.Width, Y: l.Paper.Height})
		w.Point(12, core.Point{})
		w.Point(14, core.Point{})
		w.Point(15, core.Point{})
		w.Float(146, 0)
		w.Point(13, core.Point{})
		w.Point(16, core.Point{X: 1})
		w.Point(17, core.Point{Y: 1})
		w.Int(76, 0)
		w.Handle(330, l.Owner)
		w.Handle(331, l.Viewport)
	}

	return w.String()
}

func (d *Document) layoutDictionaryFragment() string {
	w := core.NewWriter()

	for name, l := range d.layouts.All() {
		w.Tag(3, name)
		w.Handle(350, l.Handle)
	}

	return w.String()
}

// objectsFragment 图像定义及其反应器
func (d *Document) objectsFragment() string {
	w := core.NewWriter()

	for _, def := range d.images.All() {
		def.Encode(w)
	}
	for _, r := range d.reactors {
		r.Encode(w)
	}

	return w.String()
}

func (d *Document) imageNamesFragment() string {
	w := core.NewWriter()

	for _, def := range d.images.All() {
		w.Tag(3, def.Name)
		w.Handle(350, def.ID)
	}

	return w.String()
}
