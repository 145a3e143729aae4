package dxf

import "github.com/zooyer/dxf-writer/core"

// Context 当前绘图上下文：后续添加的实体都落在当前块、当前图层上
type Context struct {
	layer     string
	block     string
	layout    string
	textStyle string
	offset    core.Point
}

func (c Context) Layer() string { return c.layer }

func (c Context) Block() string { return c.block }

func (c Context) Layout() string { return c.layout }

func (c Context) TextStyle() string { return c.textStyle }

func (c Context) Offset() core.Point { return c.offset }

// Apply 在添加实体时叠加坐标偏移，已添加的实体不受之后的偏移影响
func (c Context) Apply(p core.Point) core.Point {
	return p.Add(c.offset)
}
