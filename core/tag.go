package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// AsHandle 将值解析为句柄
func (t Tag) AsHandle() (Handle, error) {
	return ParseHandle(t.Value)
}

// IsHandle 组码 5 是实体/对象句柄，105 只用于 DIMSTYLE
func (t Tag) IsHandle() bool {
	return t.Code == 5 || t.Code == 105
}

// Is 判断组码为 0 的结构标签
func (t Tag) Is(value string) bool {
	return t.Code == 0 && strings.EqualFold(t.AsString(), value)
}

func (t Tag) String() string {
	return strconv.Itoa(t.Code) + "\n" + t.Value + "\n"
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// Add 返回 p + o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub 返回 p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// Width 包围盒宽度
func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height 包围盒高度
func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}
