package main

import (
	"fmt"
	"strings"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	dxf "github.com/zooyer/dxf-writer"
	"github.com/zooyer/dxf-writer/core"
)

// Point 坐标，Lua 中写作 {x = 1, y = 2}
type Point struct {
	X float64 `gluamapper:"x"`
	Y float64 `gluamapper:"y"`
	Z float64 `gluamapper:"z"`
}

func (p Point) core() core.Point {
	return core.Point{X: p.X, Y: p.Y, Z: p.Z}
}

type Layer struct {
	Name       string `gluamapper:"name"`
	Color      int    `gluamapper:"color"`
	LineType   string `gluamapper:"linetype"`
	LineWeight int    `gluamapper:"lineweight"`
}

type Style struct {
	Name        string  `gluamapper:"name"`
	Font        string  `gluamapper:"font"`
	WidthFactor float64 `gluamapper:"width_factor"`
	Height      float64 `gluamapper:"height"`
}

type Attribute struct {
	Tag    string  `gluamapper:"tag"`
	Value  string  `gluamapper:"value"`
	At     Point   `gluamapper:"at"`
	Height float64 `gluamapper:"height"`
}

// Shape 一个图元，Kind 决定使用哪些字段
type Shape struct {
	Kind   string  `gluamapper:"kind"`
	Layer  string  `gluamapper:"layer"`
	Style  string  `gluamapper:"style"`
	At     Point   `gluamapper:"at"`
	To     Point   `gluamapper:"to"`
	Points []Point `gluamapper:"points"`
	Closed bool    `gluamapper:"closed"`

	Radius   float64 `gluamapper:"radius"`
	Start    float64 `gluamapper:"start"`
	End      float64 `gluamapper:"end"`
	Ratio    float64 `gluamapper:"ratio"`
	Rotation float64 `gluamapper:"rotation"`

	Text   string  `gluamapper:"text"`
	Height float64 `gluamapper:"height"`

	Block      string      `gluamapper:"block"`
	Scale      float64     `gluamapper:"scale"`
	Attributes []Attribute `gluamapper:"attributes"`

	File    string  `gluamapper:"file"`
	Width   float64 `gluamapper:"width"`
	PixelsW int     `gluamapper:"pixels_w"`
	PixelsH int     `gluamapper:"pixels_h"`
}

type Block struct {
	Name   string  `gluamapper:"name"`
	Base   Point   `gluamapper:"base"`
	Layer  string  `gluamapper:"layer"`
	Shapes []Shape `gluamapper:"shapes"`
}

type Margins struct {
	Left   float64 `gluamapper:"left"`
	Right  float64 `gluamapper:"right"`
	Top    float64 `gluamapper:"top"`
	Bottom float64 `gluamapper:"bottom"`
}

type Layout struct {
	Name        string  `gluamapper:"name"`
	Paper       string  `gluamapper:"paper"` // A4、A3、A2、LETTER，或使用 Width/Height
	Width       float64 `gluamapper:"width"`
	Height      float64 `gluamapper:"height"`
	Orientation string  `gluamapper:"orientation"`
	Margins     Margins `gluamapper:"margins"`
	Offset      Point   `gluamapper:"offset"`
	Shapes      []Shape `gluamapper:"shapes"`
}

// Drawing Lua 描述文件返回的表
type Drawing struct {
	Output  string   `gluamapper:"output"`
	Layers  []Layer  `gluamapper:"layers"`
	Styles  []Style  `gluamapper:"styles"`
	Blocks  []Block  `gluamapper:"blocks"`
	Layouts []Layout `gluamapper:"layouts"`
}

var papers = map[string]dxf.Paper{
	"A4":     dxf.PaperA4,
	"A3":     dxf.PaperA3,
	"A2":     dxf.PaperA2,
	"LETTER": dxf.PaperLetter,
}

// paper 返回图纸尺寸，横向时交换宽高
func (l Layout) paper() (dxf.Paper, dxf.Orientation, error) {
	var orientation dxf.Orientation
	switch strings.ToLower(l.Orientation) {
	case "", "portrait":
		orientation = dxf.Portrait
	case "landscape":
		orientation = dxf.Landscape
	default:
		return dxf.Paper{}, 0, fmt.Errorf("layout %q: unknown orientation %q", l.Name, l.Orientation)
	}

	paper := dxf.Paper{Width: l.Width, Height: l.Height}
	if l.Paper != "" {
		p, ok := papers[strings.ToUpper(l.Paper)]
		if !ok {
			return dxf.Paper{}, 0, fmt.Errorf("layout %q: unknown paper %q", l.Name, l.Paper)
		}
		paper = p
	}
	if paper.Width <= 0 || paper.Height <= 0 {
		return dxf.Paper{}, 0, fmt.Errorf("layout %q: paper size required", l.Name)
	}

	if orientation == dxf.Landscape && paper.Width < paper.Height {
		paper.Width, paper.Height = paper.Height, paper.Width
	}

	return paper, orientation, nil
}

// ParseDrawingFile 执行 Lua 描述文件，把最后返回的表映射到 Drawing
func ParseDrawingFile(fileName string) (*Drawing, error) {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0] = 描述文件
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); err != nil {
		return nil, fmt.Errorf("run %s: %w", fileName, err)
	}

	return mapDrawing(L, fileName)
}

// ParseDrawing 同 ParseDrawingFile，描述来自字符串
func ParseDrawing(source string) (*Drawing, error) {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("run drawing: %w", err)
	}

	return mapDrawing(L, "drawing")
}

func mapDrawing(L *lua.LState, name string) (*Drawing, error) {
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s: must return a table", name)
	}

	mapper := gluamapper.Mapper{Option: gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}}

	var drawing Drawing
	if err := mapper.Map(table, &drawing); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if len(drawing.Layouts) == 0 {
		return nil, fmt.Errorf("%s: no layouts", name)
	}

	return &drawing, nil
}
