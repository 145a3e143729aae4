package dxf

import (
	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
	"github.com/zooyer/dxf-writer/utils"
)

// epsilon 首尾顶点重合的判定误差
const epsilon = 1e-9

// 以下操作都写入当前块和当前图层，坐标在添加时叠加偏移；返回实体句柄，没有当前块时返回 0。

func (d *Document) AddPoint(at core.Point) Handle {
	return d.add("POINT", func(base entities.Base) entities.Entity {
		return entities.NewPoint(base, d.ctx.Apply(at))
	})
}

func (d *Document) AddLine(start, end core.Point) Handle {
	return d.add("LINE", func(base entities.Base) entities.Entity {
		return entities.NewLine(base, d.ctx.Apply(start), d.ctx.Apply(end))
	})
}

func (d *Document) AddCircle(center core.Point, radius float64) Handle {
	return d.add("CIRCLE", func(base entities.Base) entities.Entity {
		return entities.NewCircle(base, d.ctx.Apply(center), radius)
	})
}

// AddArc 起止角为度，逆时针
func (d *Document) AddArc(center core.Point, radius, startAngle, endAngle float64) Handle {
	return d.add("ARC", func(base entities.Base) entities.Entity {
		return entities.NewArc(base, d.ctx.Apply(center), radius, startAngle, endAngle)
	})
}

// AddEllipse majorAxis 为长轴端点相对圆心的向量，ratio 为短长轴之比，参数为弧度
func (d *Document) AddEllipse(center, majorAxis core.Point, ratio, startParam, endParam float64) Handle {
	return d.add("ELLIPSE", func(base entities.Base) entities.Entity {
		return entities.NewEllipse(base, d.ctx.Apply(center), majorAxis, ratio, startParam, endParam)
	})
}

// AddPolyline 首尾顶点重合时自动闭合
func (d *Document) AddPolyline(points []core.Point, closed bool) Handle {
	return d.add("LWPOLYLINE", func(base entities.Base) entities.Entity {
		pts, isClosed := utils.CloseRing(points, closed, epsilon)
		return entities.NewLWPolyline(base, utils.Translate(pts, d.ctx.offset), isClosed)
	})
}

// AddText 使用当前文字样式
func (d *Document) AddText(at core.Point, height float64, text string, rotation float64) Handle {
	return d.add("TEXT", func(base entities.Base) entities.Entity {
		return entities.NewText(base, d.ctx.Apply(at), height, text, rotation, d.ctx.textStyle)
	})
}

// AddHatch 实体填充，第一个边界为外边界
func (d *Document) AddHatch(loops ...[]core.Point) Handle {
	return d.add("HATCH", func(base entities.Base) entities.Entity {
		moved := make([][]core.Point, 0, len(loops))
		for _, loop := range loops {
			pts, _ := utils.CloseRing(loop, true, epsilon)
			moved = append(moved, utils.Translate(pts, d.ctx.offset))
		}
		return entities.NewHatch(base, moved)
	})
}
