package utils

import (
	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

// CombineInserts 合并嵌套块的变换矩阵逻辑
func CombineInserts(parent, child *entities.Insert) *entities.Insert {
	// 1. 旋转叠加
	combinedRotation := parent.Rotation + child.Rotation

	// 2. 缩放叠加
	combinedScale := core.Point{
		X: parent.Scale.X * child.Scale.X,
		Y: parent.Scale.Y * child.Scale.Y,
		Z: parent.Scale.Z * child.Scale.Z,
	}

	// 3. 插入点叠加：子块的插入点需要经过父块的 缩放 -> 旋转 -> 平移 变换
	combinedInsertionPoint := TransformPoint(child.InsertionPoint, parent)

	return &entities.Insert{
		BaseEntity:     child.BaseEntity,
		BlockName:      child.BlockName,
		Rotation:       combinedRotation,
		Scale:          combinedScale,
		InsertionPoint: combinedInsertionPoint,
	}
}

// Rebase 块内坐标以块基点为原点，先把插入点平移到基点
func Rebase(ins *entities.Insert, base core.Point) *entities.Insert {
	if base == (core.Point{}) {
		return ins
	}
	shifted := *ins
	// 基点 b 映射到插入点：P' = T(P - b)，等价于插入点减去 T 的线性部分作用在 b 上
	origin := TransformPoint(core.Point{X: -base.X, Y: -base.Y, Z: -base.Z}, &entities.Insert{
		Scale:    ins.Scale,
		Rotation: ins.Rotation,
	})
	shifted.InsertionPoint = ins.InsertionPoint.Add(origin)
	return &shifted
}
