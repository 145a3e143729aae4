package entities

import "github.com/zooyer/dxf-writer/core"

type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
	Attributes     []*Attrib
	End            *SeqEnd // 有属性时才存在
}

func NewInsert(b Base, block string, at, scale core.Point, rotation float64) *Insert {
	return &Insert{
		BaseEntity:     NewBase("INSERT", b),
		BlockName:      block,
		InsertionPoint: at,
		Scale:          scale,
		Rotation:       rotation,
	}
}

// WithAttributes 挂上属性和结束标记；属性的所有者必须是本 INSERT
func (i *Insert) WithAttributes(attrs []*Attrib, end *SeqEnd) *Insert {
	i.Attributes = attrs
	i.End = end
	return i
}

func (i *Insert) Encode(w *core.Writer, ctx Context) {
	i.encodeHeader(w)
	w.Tag(100, "AcDbBlockReference")
	if len(i.Attributes) > 0 {
		w.Int(66, 1)
	}
	w.Tag(2, i.BlockName)
	w.Point(10, i.InsertionPoint)
	w.Float(41, i.Scale.X)
	w.Float(42, i.Scale.Y)
	w.Float(43, i.Scale.Z)
	w.Float(50, i.Rotation)

	// 核心逻辑：属性紧跟在 INSERT 之后，以 SEQEND 结束
	if len(i.Attributes) > 0 {
		for _, a := range i.Attributes {
			a.Encode(w, ctx)
		}
		if i.End != nil {
			i.End.Encode(w, ctx)
		}
	}
}

func (i *Insert) BBox() core.BBox {
	// Insert 的包围盒需要结合 Block 定义计算（见 utils.EntityBBox）
	// 这里先返回插入点
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
