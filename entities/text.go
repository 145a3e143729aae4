package entities

import (
	"strings"

	"github.com/zooyer/dxf-writer/core"
)

type Text struct {
	BaseEntity
	Location core.Point
	Height   float64
	Value    string
	Rotation float64
	Style    string
}

func NewText(b Base, at core.Point, height float64, value string, rotation float64, style string) *Text {
	return &Text{
		BaseEntity: NewBase("TEXT", b),
		Location:   at,
		Height:     height,
		Value:      value,
		Rotation:   rotation,
		Style:      style,
	}
}

func (t *Text) Encode(w *core.Writer, _ Context) {
	t.encodeHeader(w)
	w.Tag(100, "AcDbText")
	w.Point(10, t.Location)
	w.Float(40, t.Height)
	// 值中不允许换行
	w.Tag(1, strings.NewReplacer("\r", "", "\n", " ").Replace(t.Value))
	if t.Rotation != 0 {
		w.Float(50, t.Rotation)
	}
	if t.Style != "" {
		w.Tag(7, t.Style)
	}
	w.Tag(100, "AcDbText")
}

// BBox 按字高和字符数粗略估算（不考虑旋转）
func (t *Text) BBox() core.BBox {
	width := float64(len([]rune(t.Value))) * t.Height
	return core.BBox{
		Min: t.Location,
		Max: core.Point{X: t.Location.X + width, Y: t.Location.Y + t.Height, Z: t.Location.Z},
	}
}
