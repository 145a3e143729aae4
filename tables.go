package dxf

import (
	"github.com/zooyer/dxf-writer/core"
)

// 线宽（组码 370，单位 0.01mm）
const (
	LineWeightByLayer = -1
	LineWeightByBlock = -2
	LineWeightDefault = -3
)

type Layer struct {
	Name       string
	Color      int // ACI 颜色号
	LineType   string
	LineWeight int
	handle     Handle
}

// DefaultLayer 未指定属性时新建图层使用的默认值
var DefaultLayer = Layer{Color: 7, LineType: "CONTINUOUS", LineWeight: LineWeightDefault}

type TextStyle struct {
	Name        string
	Font        string
	Flags       int
	FixedHeight float64
	WidthFactor float64
	Oblique     float64
	Generation  int
	LastHeight  float64
	BigFont     string
	handle      Handle
}

// DefaultTextStyle 未指定属性时新建文字样式使用的默认值
var DefaultTextStyle = TextStyle{Font: "txt", WidthFactor: 1, LastHeight: 2.5}

// AddLayer 定义图层，已存在时不覆盖；引用的线型不存在时自动创建
func (d *Document) AddLayer(name string, attrs Layer) {
	if d.layers.Has(name) {
		d.log.Debug().Str("layer", name).Msg("layer already defined")
		return
	}
	layer := attrs
	layer.Name = name
	if layer.LineType == "" {
		layer.LineType = DefaultLayer.LineType
	}
	layer.handle = d.handles.Next()
	d.layers.Add(name, &layer)
	d.AddLineType(layer.LineType)
}

// SetLayer 切换当前图层，不存在时按 DefaultLayer 创建
func (d *Document) SetLayer(name string) {
	d.UseLayer(name, DefaultLayer)
}

// UseLayer 切换当前图层，不存在时按 ifMissing 创建
func (d *Document) UseLayer(name string, ifMissing Layer) {
	d.AddLayer(name, ifMissing)
	d.ctx.layer = name
}

func (d *Document) currentLayer() *Layer {
	layer, _ := d.layers.Get(d.ctx.layer)
	return layer
}

// SetLayerColor 只修改当前图层
func (d *Document) SetLayerColor(color int) {
	if layer := d.currentLayer(); layer != nil {
		layer.Color = color
	}
}

// SetLayerLineType 只修改当前图层；线型不存在时自动创建
func (d *Document) SetLayerLineType(lineType string) {
	if layer := d.currentLayer(); layer != nil && lineType != "" {
		layer.LineType = lineType
		d.AddLineType(lineType)
	}
}

// SetLayerLineWeight 只修改当前图层
func (d *Document) SetLayerLineWeight(weight int) {
	if layer := d.currentLayer(); layer != nil {
		layer.LineWeight = weight
	}
}

// Layer 按名称查找图层
func (d *Document) Layer(name string) (Layer, bool) {
	layer, ok := d.layers.Get(name)
	if !ok {
		return Layer{}, false
	}
	return *layer, true
}

// Layers 按定义顺序返回所有图层
func (d *Document) Layers() []Layer {
	out := make([]Layer, 0, d.layers.Len())
	for _, l := range d.layers.All() {
		out = append(out, *l)
	}
	return out
}

// AddTextStyle 定义文字样式，已存在时不覆盖
func (d *Document) AddTextStyle(name string, attrs TextStyle) {
	if d.textStyles.Has(name) {
		return
	}
	style := attrs
	style.Name = name
	style.handle = d.handles.Next()
	d.textStyles.Add(name, &style)
}

// SetTextStyle 切换当前文字样式，不存在时按 ifMissing 创建
func (d *Document) SetTextStyle(name string, ifMissing TextStyle) {
	d.AddTextStyle(name, ifMissing)
	d.ctx.textStyle = name
}

// TextStyle 按名称查找文字样式
func (d *Document) TextStyle(name string) (TextStyle, bool) {
	style, ok := d.textStyles.Get(name)
	if !ok {
		return TextStyle{}, false
	}
	return *style, true
}

func tableHeader(w *core.Writer, name string, handle Handle, count int) {
	w.Tag(0, "TABLE")
	w.Tag(2, name)
	w.Handle(5, handle)
	w.Handle(330, 0)
	w.Tag(100, "AcDbSymbolTable")
	w.Int(70, count)
}

func tableRecord(w *core.Writer, kind string, handle, owner Handle, subclass string) {
	w.Tag(0, kind)
	w.Handle(5, handle)
	w.Handle(330, owner)
	w.Tag(100, "AcDbSymbolTableRecord")
	w.Tag(100, subclass)
}

func (d *Document) lineTypeTableFragment() string {
	w := core.NewWriter()
	var user []*LineType
	for _, lt := range d.lineTypes.All() {
		if !reservedLineType(lt.Name) {
			user = append(user, lt)
		}
	}
	tableHeader(w, "LTYPE", d.lineTypeTable, len(user)+2)

	writeLineType(w, d.byBlock, d.lineTypeTable, "ByBlock", lineTypeDef{})
	writeLineType(w, d.byLayer, d.lineTypeTable, "ByLayer", lineTypeDef{})
	for _, lt := range user {
		writeLineType(w, lt.handle, d.lineTypeTable, lt.Name, lookupLineType(lt.Name))
	}

	w.Tag(0, "ENDTAB")
	return w.String()
}

func writeLineType(w *core.Writer, handle, owner Handle, name string, def lineTypeDef) {
	var total float64
	for _, e := range def.Pattern {
		if e < 0 {
			total -= e
		} else {
			total += e
		}
	}

	tableRecord(w, "LTYPE", handle, owner, "AcDbLinetypeTableRecord")
	w.Tag(2, name)
	w.Int(70, 0)
	w.Tag(3, def.Description)
	w.Int(72, 65)
	w.Int(73, len(def.Pattern))
	w.Float(40, total)
	for _, e := range def.Pattern {
		w.Float(49, e)
		w.Int(74, 0)
	}
}

func (d *Document) layerTableFragment() string {
	w := core.NewWriter()
	tableHeader(w, "LAYER", d.layerTable, d.layers.Len())

	for _, layer := range d.layers.All() {
		tableRecord(w, "LAYER", layer.handle, d.layerTable, "AcDbLayerTableRecord")
		w.Tag(2, layer.Name)
		w.Int(70, 0)
		w.Int(62, layer.Color)
		w.Tag(6, layer.LineType)
		w.Int(370, layer.LineWeight)
		w.Handle(390, handlePlotStyleNormal)
	}

	w.Tag(0, "ENDTAB")
	return w.String()
}

func (d *Document) styleTableFragment() string {
	w := core.NewWriter()
	tableHeader(w, "STYLE", d.styleTable, d.textStyles.Len())

	for _, style := range d.textStyles.All() {
		tableRecord(w, "STYLE", style.handle, d.styleTable, "AcDbTextStyleTableRecord")
		w.Tag(2, style.Name)
		w.Int(70, style.Flags)
		w.Float(40, style.FixedHeight)
		w.Float(41, style.WidthFactor)
		w.Float(50, style.Oblique)
		w.Int(71, style.Generation)
		w.Float(42, style.LastHeight)
		w.Tag(3, style.Font)
		w.Tag(4, style.BigFont)
	}

	w.Tag(0, "ENDTAB")
	return w.String()
}
