package utils

import (
	"math"

	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

// TransformPoint 将局部坐标点经过 Insert 变换转换到父级/世界坐标
func TransformPoint(p core.Point, ins *entities.Insert) core.Point {
	rad := ins.Rotation * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 1. 缩放
	tx := p.X * ins.Scale.X
	ty := p.Y * ins.Scale.Y
	tz := p.Z * ins.Scale.Z

	// 2. 旋转
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移
	return core.Point{
		X: rx + ins.InsertionPoint.X,
		Y: ry + ins.InsertionPoint.Y,
		Z: tz + ins.InsertionPoint.Z,
	}
}

// Translate 批量平移，返回新切片
func Translate(points []core.Point, offset core.Point) []core.Point {
	out := make([]core.Point, len(points))
	for i, p := range points {
		out[i] = p.Add(offset)
	}
	return out
}

// SamePoint 在 epsilon 误差内判断两点重合
func SamePoint(a, b core.Point, epsilon float64) bool {
	return xmath.Equal(a.X, b.X, epsilon) &&
		xmath.Equal(a.Y, b.Y, epsilon) &&
		xmath.Equal(a.Z, b.Z, epsilon)
}

// CloseRing 首尾重合的顶点序列去掉尾点并视为闭合
func CloseRing(points []core.Point, closed bool, epsilon float64) ([]core.Point, bool) {
	if len(points) > 2 && SamePoint(points[0], points[len(points)-1], epsilon) {
		return points[:len(points)-1], true
	}
	return points, closed
}
