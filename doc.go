// Package dxf 在内存中构建 CAD 图形（图层、线型、文字样式、块、布局和实体），
// 并输出为 AutoCAD R2000 (AC1015) ASCII DXF。
//
// 所有可寻址的记录都由文档统一分配句柄；块记录、布局、视口和实体之间的交叉引用在输出时组装。
// 文档不是并发安全的，只能由一个调用方顺序构建。
package dxf

import (
	"github.com/rs/zerolog"

	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

// 骨架模板中固定的句柄，全部小于 FirstHandle
const (
	handleBlockRecordTable core.Handle = 0x1
	handleRootDictionary   core.Handle = 0xc
	handlePlotStyleNormal  core.Handle = 0xf
	handleLayoutDictionary core.Handle = 0x1a
	handleModelSpaceRecord core.Handle = 0x1f

	// FirstHandle 第一个动态分配的句柄
	FirstHandle core.Handle = 0x100
)

type (
	Handle = core.Handle
	Point  = core.Point
)

type Document struct {
	handles *core.Allocator
	log     zerolog.Logger

	layers     *registry[*Layer]
	lineTypes  *registry[*LineType]
	textStyles *registry[*TextStyle]
	blocks     *registry[*Block]
	layouts    *registry[*Layout]
	images     *registry[*entities.ImageDef]
	reactors   []*entities.ImageDefReactor

	ctx        Context
	margins    Margins // 最近一次创建布局时的页边距
	home       string  // 第一个布局
	paperCount int

	// 在创建文档时分配，保证输出时不再分配句柄
	lineTypeTable core.Handle
	layerTable    core.Handle
	styleTable    core.Handle
	byBlock       core.Handle
	byLayer       core.Handle
	imageDict     core.Handle

	err error
}

type Option func(*Document)

// WithLogger 忽略的选择、重复创建等情况以 debug 级别记录
func WithLogger(log zerolog.Logger) Option {
	return func(d *Document) {
		d.log = log
	}
}

func New(opts ...Option) *Document {
	d := &Document{
		handles:    core.NewAllocator(FirstHandle),
		log:        zerolog.Nop(),
		layers:     newRegistry[*Layer](),
		lineTypes:  newRegistry[*LineType](),
		textStyles: newRegistry[*TextStyle](),
		blocks:     newRegistry[*Block](),
		layouts:    newRegistry[*Layout](),
		images:     newRegistry[*entities.ImageDef](),
		ctx:        Context{layer: "0"},
	}
	for _, opt := range opts {
		opt(d)
	}

	d.lineTypeTable = d.handles.Next()
	d.byBlock = d.handles.Next()
	d.byLayer = d.handles.Next()
	d.layerTable = d.handles.Next()
	d.styleTable = d.handles.Next()
	d.imageDict = d.handles.Next()

	// DXF 要求图层 0 必须存在
	d.AddLayer("0", DefaultLayer)

	return d
}

// Context 当前绘图上下文的快照
func (d *Document) Context() Context {
	return d.ctx
}

// SetOffset 之后添加的几何体都会叠加该偏移
func (d *Document) SetOffset(offset core.Point) {
	d.ctx.offset = offset
}

// HandleSeed 下一个未使用的句柄（$HANDSEED）
func (d *Document) HandleSeed() core.Handle {
	return d.handles.Seed()
}
