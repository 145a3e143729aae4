package entities

import "github.com/zooyer/dxf-writer/core"

type Attrib struct {
	BaseEntity
	Location core.Point
	Tag      string // 属性标签，如 "序号"
	Text     string // 属性值
	Height   float64
	Style    string
}

func NewAttrib(b Base, location core.Point, tag, text string, height float64, style string) *Attrib {
	return &Attrib{
		BaseEntity: NewBase("ATTRIB", b),
		Location:   location,
		Tag:        tag,
		Text:       text,
		Height:     height,
		Style:      style,
	}
}

func (a *Attrib) Encode(w *core.Writer, _ Context) {
	a.encodeHeader(w)
	w.Tag(100, "AcDbText")
	w.Point(10, a.Location)
	w.Float(40, a.Height)
	w.Tag(1, a.Text)
	if a.Style != "" {
		w.Tag(7, a.Style)
	}
	w.Tag(100, "AcDbAttribute")
	w.Tag(2, a.Tag)
	w.Int(70, 0)
}

func (a *Attrib) BBox() core.BBox {
	// 简化处理：属性文字暂时以位置点作为包围盒
	return core.BBox{Min: a.Location, Max: a.Location}
}

// SeqEnd 结束 INSERT 后的属性序列
type SeqEnd struct {
	BaseEntity
}

func NewSeqEnd(b Base) *SeqEnd {
	return &SeqEnd{BaseEntity: NewBase("SEQEND", b)}
}

func (s *SeqEnd) Encode(w *core.Writer, _ Context) {
	s.encodeHeader(w)
}
