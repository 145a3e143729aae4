package entities

import (
	"github.com/zooyer/dxf-writer/core"
)

// Context 输出时的上下文
type Context struct {
	// Active 为 true 表示实体写入 ENTITIES 段（当前布局），否则写入 BLOCKS 段
	Active bool
}

// Entity 是一切几何实体的接口
type Entity interface {
	Type() string
	Layer() string
	Handle() core.Handle
	BBox() core.BBox
	Encode(w *core.Writer, ctx Context)
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Handle, Owner）
type BaseEntity struct {
	TypeName   string
	LayerName  string
	ID         core.Handle
	Owner      core.Handle // 所属块记录句柄
	PaperSpace bool        // 是否位于图纸空间（组码 67）
}

// Base 由文档在追加实体时填写
type Base struct {
	Handle     core.Handle
	Owner      core.Handle
	Layer      string
	PaperSpace bool
}

// NewBase 根据类型名和所属块信息生成通用属性
func NewBase(typeName string, b Base) BaseEntity {
	return BaseEntity{
		TypeName:   typeName,
		LayerName:  b.Layer,
		ID:         b.Handle,
		Owner:      b.Owner,
		PaperSpace: b.PaperSpace,
	}
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Handle() core.Handle { return b.ID }

// encodeHeader 写出 AcDbEntity 公共部分
func (b *BaseEntity) encodeHeader(w *core.Writer) {
	w.Tag(0, b.TypeName)
	w.Handle(5, b.ID)
	w.Handle(330, b.Owner)
	w.Tag(100, "AcDbEntity")
	if b.PaperSpace {
		w.Int(67, 1)
	}
	w.Tag(8, b.LayerName)
}
