package utils

import (
	"math"

	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

// BlockLookup 按块名查找块的基点和实体
type BlockLookup func(name string) (base core.Point, ents []entities.Entity, ok bool)

// TransformBBox 执行矩阵变换：将局部坐标变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, ins *entities.Insert) core.BBox {
	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	wMinX, wMinY, wMinZ := math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	wMaxX, wMaxY, wMaxZ := -math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64

	for _, p := range corners {
		w := TransformPoint(p, ins)

		wMinX = math.Min(wMinX, w.X)
		wMinY = math.Min(wMinY, w.Y)
		wMinZ = math.Min(wMinZ, w.Z)
		wMaxX = math.Max(wMaxX, w.X)
		wMaxY = math.Max(wMaxY, w.Y)
		wMaxZ = math.Max(wMaxZ, w.Z)
	}

	return core.BBox{
		Min: core.Point{X: wMinX, Y: wMinY, Z: wMinZ},
		Max: core.Point{X: wMaxX, Y: wMaxY, Z: wMaxZ},
	}
}

// Union 合并两个包围盒
func Union(a, b core.BBox) core.BBox {
	return core.BBox{
		Min: core.Point{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y), Z: math.Min(a.Min.Z, b.Min.Z)},
		Max: core.Point{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y), Z: math.Max(a.Max.Z, b.Max.Z)},
	}
}

// EntityBBox 实体在所属坐标系中的包围盒；INSERT 展开引用的块
func EntityBBox(entity entities.Entity, lookup BlockLookup) (core.BBox, bool) {
	return newBoxer(lookup).entity(entity)
}

// boxer 每个块的局部包围盒只计算一次。
// 正在展开的块再次被插入时（直接或间接插入自身），该插入按插入点计算。
type boxer struct {
	lookup    BlockLookup
	done      map[string]blockBox
	expanding map[string]bool
}

type blockBox struct {
	base core.Point
	box  core.BBox
	ok   bool
}

func newBoxer(lookup BlockLookup) *boxer {
	return &boxer{
		lookup:    lookup,
		done:      make(map[string]blockBox),
		expanding: make(map[string]bool),
	}
}

func (x *boxer) entity(entity entities.Entity) (core.BBox, bool) {
	ins, ok := entity.(*entities.Insert)
	if !ok {
		return entity.BBox(), true
	}

	blk, ok := x.block(ins.BlockName)
	if !ok {
		return ins.BBox(), true
	}

	return TransformBBox(blk.box, Rebase(ins, blk.base)), true
}

// block 块内实体在块坐标系中的包围盒
func (x *boxer) block(name string) (blockBox, bool) {
	if b, ok := x.done[name]; ok {
		return b, b.ok
	}
	if x.expanding[name] {
		return blockBox{}, false
	}

	base, ents, found := x.lookup(name)
	if !found {
		return blockBox{}, false
	}

	x.expanding[name] = true
	b := blockBox{base: base}
	for _, e := range ents {
		eb, ok := x.entity(e)
		if !ok {
			continue
		}
		if !b.ok {
			b.box, b.ok = eb, true
			continue
		}
		b.box = Union(b.box, eb)
	}
	delete(x.expanding, name)

	x.done[name] = b
	return b, b.ok
}

// Extents 计算一组实体的范围，没有实体时 ok 为 false
func Extents(ents []entities.Entity, lookup BlockLookup) (box core.BBox, ok bool) {
	x := newBoxer(lookup)
	for _, e := range ents {
		eb, has := x.entity(e)
		if !has {
			continue
		}
		if !ok {
			box, ok = eb, true
			continue
		}
		box = Union(box, eb)
	}
	return
}
