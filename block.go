package dxf

import (
	"slices"
	"strings"

	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

// paperSpacePrefix 图纸空间块的保留名称：*Paper_Space、*Paper_Space0、*Paper_Space1 ...
const paperSpacePrefix = "*Paper_Space"

type Block struct {
	Name       string
	Record     Handle // BLOCK_RECORD
	Begin      Handle // BLOCK
	End        Handle // ENDBLK
	Owner      Handle // 块表
	Layer      string
	Layout     Handle // 绑定的布局，0 表示没有
	Base       core.Point
	Entities   []entities.Entity
	References []Handle // 引用该块的 INSERT
}

// PaperSpace 是否为布局专用的图纸空间块
func (b *Block) PaperSpace() bool {
	return strings.HasPrefix(b.Name, paperSpacePrefix)
}

// AddBlock 创建块并设为当前块；同名块已存在时不做任何事。
// *Paper_Space 开头的名称保留给布局，同样不做任何事。
func (d *Document) AddBlock(name string, base core.Point) {
	if reservedBlockName(name) {
		d.log.Debug().Str("block", name).Msg("paper space block name is reserved for layouts")
		return
	}
	d.createBlock(name, d.ctx.layer, base)
}

func reservedBlockName(name string) bool {
	return len(name) >= len(paperSpacePrefix) && strings.EqualFold(name[:len(paperSpacePrefix)], paperSpacePrefix)
}

func (d *Document) createBlock(name, layer string, base core.Point) *Block {
	if b, ok := d.blocks.Get(name); ok {
		d.log.Debug().Str("block", name).Msg("block already defined")
		return b
	}

	b := &Block{
		Name:   name,
		Record: d.handles.Next(),
		Begin:  d.handles.Next(),
		End:    d.handles.Next(),
		Owner:  handleBlockRecordTable,
		Layer:  layer,
		Base:   base,
	}
	d.blocks.Add(name, b)
	d.ctx.block = name

	return b
}

// SetBlock 切换当前块；块不存在时保持原来的选择
func (d *Document) SetBlock(name string) {
	if !d.blocks.Has(name) {
		d.log.Debug().Str("block", name).Msg("select unknown block ignored")
		return
	}
	d.ctx.block = name
}

// clone 实体和反向引用列表只能由文档追加，对外返回副本
func (b *Block) clone() *Block {
	c := *b
	c.Entities = slices.Clone(b.Entities)
	c.References = slices.Clone(b.References)
	return &c
}

// Block 按名称查找块，返回副本
func (d *Document) Block(name string) (*Block, bool) {
	b, ok := d.blocks.Get(name)
	if !ok {
		return nil, false
	}
	return b.clone(), true
}

// Blocks 按创建顺序返回所有块的副本
func (d *Document) Blocks() []*Block {
	out := make([]*Block, 0, d.blocks.Len())
	for _, b := range d.blocks.All() {
		out = append(out, b.clone())
	}
	return out
}

func (d *Document) activeBlock() *Block {
	if d.ctx.block == "" {
		return nil
	}
	b, _ := d.blocks.Get(d.ctx.block)
	return b
}

func (d *Document) baseFor(b *Block, handle Handle) entities.Base {
	return entities.Base{
		Handle:     handle,
		Owner:      b.Record,
		Layer:      d.ctx.layer,
		PaperSpace: b.PaperSpace(),
	}
}

// add 分配句柄并把实体追加到当前块；没有当前块时丢弃，返回 0
func (d *Document) add(kind string, build func(base entities.Base) entities.Entity) Handle {
	b := d.activeBlock()
	if b == nil {
		d.log.Debug().Str("entity", kind).Msg("no active block, entity dropped")
		return 0
	}

	h := d.handles.Next()
	b.Entities = append(b.Entities, build(d.baseFor(b, h)))

	return h
}

// Attribute INSERT 上的属性值，位置为绝对坐标（同样叠加偏移）
type Attribute struct {
	Tag      string
	Value    string
	Position core.Point
	Height   float64
}

// Insert 在当前块中插入块引用，并记录到被引用块的反向引用中；块不存在时不做任何事
func (d *Document) Insert(name string, at, scale core.Point, rotation float64) Handle {
	return d.InsertWithAttributes(name, at, scale, rotation, nil)
}

// InsertWithAttributes 同 Insert，并按顺序附加属性和 SEQEND
func (d *Document) InsertWithAttributes(name string, at, scale core.Point, rotation float64, attrs []Attribute) Handle {
	target, ok := d.blocks.Get(name)
	if !ok {
		d.log.Debug().Str("block", name).Msg("insert of unknown block ignored")
		return 0
	}

	h := d.add("INSERT", func(base entities.Base) entities.Entity {
		ins := entities.NewInsert(base, name, d.ctx.Apply(at), scale, rotation)
		if len(attrs) == 0 {
			return ins
		}

		list := make([]*entities.Attrib, 0, len(attrs))
		for _, a := range attrs {
			ab := base
			ab.Handle = d.handles.Next()
			ab.Owner = ins.Handle()
			list = append(list, entities.NewAttrib(ab, d.ctx.Apply(a.Position), a.Tag, a.Value, a.Height, d.ctx.textStyle))
		}
		eb := base
		eb.Handle = d.handles.Next()
		eb.Owner = ins.Handle()

		return ins.WithAttributes(list, entities.NewSeqEnd(eb))
	})
	if h != 0 {
		target.References = append(target.References, h)
	}

	return h
}
