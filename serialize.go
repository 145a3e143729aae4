package dxf

import (
	_ "embed"
	"io"
	"strings"
	"text/template"

	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
	"github.com/zooyer/dxf-writer/utils"
)

// EmptyDocument 没有任何布局时 String 返回的内容
const EmptyDocument = "no layout added"

//go:embed skeleton.dxf
var skeletonText string

var skeleton = template.Must(template.New("skeleton").
	Funcs(template.FuncMap{"f": core.FormatFloat}).
	Parse(skeletonText))

type skeletonData struct {
	HandleSeed  Handle
	ActiveLayer string
	Paper       Paper
	Extents     core.BBox
	Margins     Margins

	LineTypes  string
	Layers     string
	TextStyles string

	BlockRecordCount int
	BlockRecords     string
	Blocks           string
	Entities         string

	LayoutDictionary string
	Layouts          string
	ImageDictionary  Handle
	ImageNames       string
	Objects          string
}

// String 输出完整的 DXF 文本。
// 输出前总是切换到主布局（第一个创建的布局），它的块写入 ENTITIES 段，其余块写入 BLOCKS 段。
// 输出过程不分配句柄，没有修改时多次调用结果相同。
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.render(&sb); err != nil {
		d.err = err
	}
	return sb.String()
}

func (d *Document) render(w io.Writer) error {
	if d.home == "" {
		_, err := io.WriteString(w, EmptyDocument)
		return err
	}

	d.SetLayout(d.home)
	home, _ := d.layouts.Get(d.home)

	data := skeletonData{
		HandleSeed:  d.handles.Seed(),
		ActiveLayer: d.ctx.layer,
		Paper:       home.Paper,
		Extents:     d.paperExtents(),
		Margins:     d.margins,

		LineTypes:  d.lineTypeTableFragment(),
		Layers:     d.layerTableFragment(),
		TextStyles: d.styleTableFragment(),

		BlockRecordCount: d.blocks.Len() + 1,
		BlockRecords:     d.blockRecordFragment(),
		Blocks:           d.blocksFragment(),
		Entities:         d.entitiesFragment(),

		LayoutDictionary: d.layoutDictionaryFragment(),
		Layouts:          d.layoutsFragment(),
		ImageDictionary:  d.imageDict,
		ImageNames:       d.imageNamesFragment(),
		Objects:          d.objectsFragment(),
	}

	return skeleton.Execute(w, data)
}

// paperExtents 主布局块中实体的范围
func (d *Document) paperExtents() core.BBox {
	b := d.activeBlock()
	if b == nil {
		return core.BBox{}
	}

	lookup := func(name string) (core.Point, []entities.Entity, bool) {
		blk, ok := d.blocks.Get(name)
		if !ok {
			return core.Point{}, nil, false
		}
		return blk.Base, blk.Entities, true
	}

	box, ok := utils.Extents(b.Entities, lookup)
	if !ok {
		return core.BBox{}
	}
	return box
}
