package dxf

import "strings"

// LineType 线型只记录名称，描述和图案在输出时从内置目录中查找
type LineType struct {
	Name   string
	handle Handle
}

type lineTypeDef struct {
	Description string
	Pattern     []float64 // 正数为实线段，负数为空白，0 为点
}

// acadiso.lin（毫米）
var lineTypeCatalog = map[string]lineTypeDef{
	"CONTINUOUS": {Description: "Solid line"},
	"DASHED":     {Description: "Dashed __ __ __ __ __ __ __ __ __ __ __ __ __ _", Pattern: []float64{12.7, -6.35}},
	"HIDDEN":     {Description: "Hidden __ __ __ __ __ __ __ __ __ __ __ __ __ __", Pattern: []float64{6.35, -3.175}},
	"CENTER":     {Description: "Center ____ _ ____ _ ____ _ ____ _ ____ _ ____", Pattern: []float64{31.75, -6.35, 6.35, -6.35}},
	"DOT":        {Description: "Dot . . . . . . . . . . . . . . . . . . . . . . . .", Pattern: []float64{0, -6.35}},
	"DASHDOT":    {Description: "Dash dot __ . __ . __ . __ . __ . __ . __ . __", Pattern: []float64{12.7, -6.35, 0, -6.35}},
	"PHANTOM":    {Description: "Phantom ______  __  __  ______  __  __  ______", Pattern: []float64{31.75, -6.35, 6.35, -6.35, 6.35, -6.35}},
	"BORDER":     {Description: "Border __ __ . __ __ . __ __ . __ __ . __ __ .", Pattern: []float64{12.7, -6.35, 12.7, -6.35, 0, -6.35}},
	"DIVIDE":     {Description: "Divide ____ . . ____ . . ____ . . ____ . . ____", Pattern: []float64{12.7, -6.35, 0, -6.35, 0, -6.35}},
}

// lookupLineType 未知线型得到空描述和零长度图案，不视为错误
func lookupLineType(name string) lineTypeDef {
	return lineTypeCatalog[strings.ToUpper(name)]
}

// KnownLineType 线型是否在内置目录中
func KnownLineType(name string) bool {
	_, ok := lineTypeCatalog[strings.ToUpper(name)]
	return ok
}

// reservedLineType ByBlock、ByLayer 由线型表固定输出，不作为用户线型
func reservedLineType(name string) bool {
	return strings.EqualFold(name, "ByBlock") || strings.EqualFold(name, "ByLayer")
}

// AddLineType 已存在或为 ByBlock、ByLayer 时不做任何事
func (d *Document) AddLineType(name string) {
	if name == "" || reservedLineType(name) || d.lineTypes.Has(name) {
		return
	}
	d.lineTypes.Add(name, &LineType{Name: name, handle: d.handles.Next()})
}

// LineTypes 按定义顺序返回用户线型（不含 ByBlock、ByLayer）
func (d *Document) LineTypes() []*LineType {
	return d.lineTypes.Values()
}
