package dxf

import (
	"strconv"

	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Paper 图纸尺寸（毫米）
type Paper struct {
	Width  float64
	Height float64
}

var (
	PaperA4     = Paper{Width: 210, Height: 297}
	PaperA3     = Paper{Width: 297, Height: 420}
	PaperA2     = Paper{Width: 420, Height: 594}
	PaperLetter = Paper{Width: 215.9, Height: 279.4}
)

// Margins 不可打印边距（毫米）
type Margins struct {
	Left, Right, Top, Bottom float64
}

type Layout struct {
	Name        string
	Orientation Orientation
	Paper       Paper
	Margins     Margins
	Handle      Handle
	Owner       Handle // 绑定块的 BLOCK_RECORD
	Block       string
	Viewport    Handle
	TabOrder    int
}

// AddLayout 创建布局及其图纸空间块，并设为当前布局；同名布局已存在时不做任何事。
// 第一个创建的布局为主布局，输出时总是以它为当前布局。
func (d *Document) AddLayout(name string, orientation Orientation, paper Paper, margins Margins) {
	if d.layouts.Has(name) {
		d.log.Debug().Str("layout", name).Msg("layout already defined")
		return
	}

	d.margins = margins

	block := d.createBlock(d.nextPaperSpaceName(), d.ctx.layer, core.Point{})

	layout := &Layout{
		Name:        name,
		Orientation: orientation,
		Paper:       paper,
		Margins:     margins,
		Handle:      d.handles.Next(),
		Owner:       block.Record,
		Block:       block.Name,
		Viewport:    d.handles.Next(),
		TabOrder:    d.layouts.Len() + 1,
	}
	block.Layout = layout.Handle

	base := d.baseFor(block, layout.Viewport)
	block.Entities = append(block.Entities, entities.NewViewport(
		base,
		core.Point{X: paper.Width / 2, Y: paper.Height / 2},
		paper.Width,
		paper.Height,
	))

	d.layouts.Add(name, layout)
	d.ctx.layout = name
	d.ctx.block = block.Name

	if d.home == "" {
		d.home = name
	}
}

// nextPaperSpaceName 主布局的块总是 *Paper_Space，之后依次为 *Paper_Space0、*Paper_Space1 ...
// 用户块不能使用该前缀，名称不会冲突
func (d *Document) nextPaperSpaceName() string {
	name := paperSpacePrefix
	if d.paperCount > 0 {
		name += strconv.Itoa(d.paperCount - 1)
	}
	d.paperCount++
	return name
}

// SetLayout 切换当前布局及其块；布局不存在时保持原来的选择
func (d *Document) SetLayout(name string) {
	layout, ok := d.layouts.Get(name)
	if !ok {
		d.log.Debug().Str("layout", name).Msg("select unknown layout ignored")
		return
	}
	d.ctx.layout = name
	d.ctx.block = layout.Block
}

// Layout 按名称查找布局
func (d *Document) Layout(name string) (*Layout, bool) {
	return d.layouts.Get(name)
}

// Layouts 按创建顺序返回所有布局
func (d *Document) Layouts() []*Layout {
	return d.layouts.Values()
}

// Home 第一个创建的布局名称
func (d *Document) Home() string {
	return d.home
}

// Margins 最近一次创建布局时使用的页边距
func (d *Document) Margins() Margins {
	return d.margins
}
