package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

const eps = 1e-9

func assertPoint(t *testing.T, want, got core.Point) {
	t.Helper()
	assert.Truef(t, SamePoint(want, got, eps), "want %+v, got %+v", want, got)
}

func TestTransformPoint(t *testing.T) {
	ins := &entities.Insert{
		InsertionPoint: core.Point{X: 10, Y: 20},
		Scale:          core.Point{X: 2, Y: 2, Z: 1},
		Rotation:       90,
	}
	assertPoint(t, core.Point{X: 10, Y: 22}, TransformPoint(core.Point{X: 1}, ins))
}

func TestTranslate(t *testing.T) {
	in := []core.Point{{X: 1, Y: 1, Z: 1}}
	out := Translate(in, core.Point{X: 5, Y: 5, Z: 5})
	assert.Equal(t, core.Point{X: 6, Y: 6, Z: 6}, out[0])
	assert.Equal(t, core.Point{X: 1, Y: 1, Z: 1}, in[0])
}

func TestCloseRing(t *testing.T) {
	pts := []core.Point{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 0, Y: 1e-12}}
	out, closed := CloseRing(pts, false, 1e-9)
	assert.True(t, closed)
	assert.Len(t, out, 3)

	out, closed = CloseRing(pts[:3], false, 1e-9)
	assert.False(t, closed)
	assert.Len(t, out, 3)
}

func TestCombineInserts(t *testing.T) {
	parent := &entities.Insert{InsertionPoint: core.Point{X: 100}, Scale: core.Point{X: 2, Y: 2, Z: 2}}
	child := &entities.Insert{InsertionPoint: core.Point{X: 5}, Scale: core.Point{X: 3, Y: 1, Z: 1}, Rotation: 30, BlockName: "B"}

	got := CombineInserts(parent, child)
	assert.Equal(t, "B", got.BlockName)
	assert.Equal(t, 30.0, got.Rotation)
	assert.Equal(t, core.Point{X: 6, Y: 2, Z: 2}, got.Scale)
	assertPoint(t, core.Point{X: 110}, got.InsertionPoint)
}

func TestRebase(t *testing.T) {
	ins := &entities.Insert{InsertionPoint: core.Point{X: 10, Y: 10}, Scale: core.Point{X: 1, Y: 1, Z: 1}}
	shifted := Rebase(ins, core.Point{X: 2, Y: 3})
	// 块基点 (2,3) 落在插入点 (10,10)
	assertPoint(t, core.Point{X: 10, Y: 10}, TransformPoint(core.Point{X: 2, Y: 3}, shifted))
	assert.Same(t, ins, Rebase(ins, core.Point{}))
}

func TestExtents(t *testing.T) {
	b := entities.Base{Handle: 1, Owner: 2, Layer: "0"}
	blocks := map[string][]entities.Entity{
		"SQ": {entities.NewLine(b, core.Point{}, core.Point{X: 1, Y: 1})},
		// 插入自身：按插入点计算
		"LOOP": {entities.NewInsert(b, "LOOP", core.Point{}, core.Point{X: 1, Y: 1, Z: 1}, 0)},
	}
	lookup := func(name string) (core.Point, []entities.Entity, bool) {
		ents, ok := blocks[name]
		return core.Point{}, ents, ok
	}

	ents := []entities.Entity{
		entities.NewCircle(b, core.Point{X: 0, Y: 0}, 1),
		entities.NewInsert(b, "SQ", core.Point{X: 10, Y: 10}, core.Point{X: 5, Y: 5, Z: 1}, 0),
		entities.NewInsert(b, "LOOP", core.Point{}, core.Point{X: 1, Y: 1, Z: 1}, 0),
	}

	box, ok := Extents(ents, lookup)
	require.True(t, ok)
	assertPoint(t, core.Point{X: -1, Y: -1}, box.Min)
	assertPoint(t, core.Point{X: 15, Y: 15}, box.Max)

	_, ok = Extents(nil, lookup)
	assert.False(t, ok)
}

func TestExtents_SelfInsertFanOut(t *testing.T) {
	b := entities.Base{Handle: 1, Owner: 2, Layer: "0"}
	unit := core.Point{X: 1, Y: 1, Z: 1}

	self := []entities.Entity{entities.NewLine(b, core.Point{}, core.Point{X: 2, Y: 2})}
	for i := 0; i < 4; i++ {
		self = append(self, entities.NewInsert(b, "A", core.Point{X: float64(i)}, unit, 0))
	}
	blocks := map[string][]entities.Entity{"A": self}

	// 每层插入上一层 10 次，共 20 层
	const levels, fanOut = 20, 10
	blocks["L0"] = []entities.Entity{entities.NewLine(b, core.Point{}, core.Point{X: 1, Y: 1})}
	for i := 1; i <= levels; i++ {
		var ents []entities.Entity
		for k := 0; k < fanOut; k++ {
			ents = append(ents, entities.NewInsert(b, fmt.Sprintf("L%d", i-1), core.Point{X: float64(k)}, unit, 0))
		}
		blocks[fmt.Sprintf("L%d", i)] = ents
	}

	calls := 0
	lookup := func(name string) (core.Point, []entities.Entity, bool) {
		calls++
		ents, ok := blocks[name]
		return core.Point{}, ents, ok
	}

	box, ok := Extents([]entities.Entity{entities.NewInsert(b, "A", core.Point{X: 10}, unit, 0)}, lookup)
	require.True(t, ok)
	assertPoint(t, core.Point{X: 10}, box.Min)
	// 自身插入按插入点计算：直线 (0,0)-(2,2) 与插入点 x=0..3
	assertPoint(t, core.Point{X: 13, Y: 2}, box.Max)

	calls = 0
	box, ok = Extents([]entities.Entity{entities.NewInsert(b, fmt.Sprintf("L%d", levels), core.Point{}, unit, 0)}, lookup)
	require.True(t, ok)
	assertPoint(t, core.Point{X: 1 + (fanOut-1)*levels, Y: 1}, box.Max)
	assert.Equal(t, levels+1, calls, "each block is expanded once")
}

func TestGetAttrs(t *testing.T) {
	b := entities.Base{Handle: 0x200, Layer: "0"}
	ins := entities.NewInsert(b, "SC", core.Point{}, core.Point{X: 1, Y: 1, Z: 1}, 0)
	ins.WithAttributes([]*entities.Attrib{
		entities.NewAttrib(b, core.Point{}, "序号", "1", 2.5, ""),
		entities.NewAttrib(b, core.Point{}, "楼号", "A-3", 2.5, ""),
		entities.NewAttrib(b, core.Point{}, "序号", "2", 2.5, ""),
	}, entities.NewSeqEnd(b))

	assert.Equal(t, map[string]string{"序号": "1", "楼号": "A-3"}, GetAttrs(ins))
	assert.Equal(t, "A-3", GetAttr(ins, "楼号"))
	assert.Equal(t, "", GetAttr(ins, "面积"))

	plain := entities.NewInsert(b, "SC", core.Point{}, core.Point{X: 1, Y: 1, Z: 1}, 0)
	line := entities.NewLine(b, core.Point{}, core.Point{X: 1})
	assert.Equal(t, "A-3", FindAttr([]entities.Entity{line, plain, ins}, "楼号"))
	assert.Equal(t, "", FindAttr([]entities.Entity{line, plain}, "楼号"))
}
