package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	dxf "github.com/zooyer/dxf-writer"
	"github.com/zooyer/dxf-writer/core"
)

// Build 按描述生成文档：先定义图层、文字样式和块，再按顺序创建布局并绘制
func Build(drawing *Drawing, log zerolog.Logger) (*dxf.Document, error) {
	doc := dxf.New(dxf.WithLogger(log))

	for _, l := range drawing.Layers {
		attrs := dxf.DefaultLayer
		if l.Color != 0 {
			attrs.Color = l.Color
		}
		if l.LineType != "" {
			attrs.LineType = l.LineType
			if !dxf.KnownLineType(l.LineType) {
				log.Warn().Str("layer", l.Name).Str("linetype", l.LineType).Msg("linetype not in catalog, written without pattern")
			}
		}
		if l.LineWeight != 0 {
			attrs.LineWeight = l.LineWeight
		}
		doc.AddLayer(l.Name, attrs)
	}

	for _, s := range drawing.Styles {
		attrs := dxf.DefaultTextStyle
		if s.Font != "" {
			attrs.Font = s.Font
		}
		if s.WidthFactor != 0 {
			attrs.WidthFactor = s.WidthFactor
		}
		if s.Height != 0 {
			attrs.LastHeight = s.Height
		}
		doc.AddTextStyle(s.Name, attrs)
	}

	for _, b := range drawing.Blocks {
		if b.Layer != "" {
			doc.SetLayer(b.Layer)
		}
		doc.AddBlock(b.Name, b.Base.core())
		doc.SetBlock(b.Name)
		if err := drawShapes(doc, b.Shapes); err != nil {
			return nil, fmt.Errorf("block %q: %w", b.Name, err)
		}
	}

	for _, l := range drawing.Layouts {
		paper, orientation, err := l.paper()
		if err != nil {
			return nil, err
		}

		doc.AddLayout(l.Name, orientation, paper, dxf.Margins{
			Left:   l.Margins.Left,
			Right:  l.Margins.Right,
			Top:    l.Margins.Top,
			Bottom: l.Margins.Bottom,
		})
		doc.SetLayout(l.Name)
		doc.SetOffset(l.Offset.core())

		if err = drawShapes(doc, l.Shapes); err != nil {
			return nil, fmt.Errorf("layout %q: %w", l.Name, err)
		}
		log.Debug().Str("layout", l.Name).Int("shapes", len(l.Shapes)).Msg("layout drawn")
	}
	doc.SetOffset(core.Point{})

	return doc, nil
}

func drawShapes(doc *dxf.Document, shapes []Shape) error {
	for i, s := range shapes {
		if s.Layer != "" {
			doc.SetLayer(s.Layer)
		}
		if s.Style != "" {
			doc.SetTextStyle(s.Style, dxf.DefaultTextStyle)
		}

		if h := drawShape(doc, s); h == 0 {
			return fmt.Errorf("shape %d (%s) not drawn", i+1, s.Kind)
		}
	}
	return nil
}

func drawShape(doc *dxf.Document, s Shape) dxf.Handle {
	switch strings.ToLower(s.Kind) {
	case "point":
		return doc.AddPoint(s.At.core())
	case "line":
		return doc.AddLine(s.At.core(), s.To.core())
	case "circle":
		return doc.AddCircle(s.At.core(), s.Radius)
	case "arc":
		return doc.AddArc(s.At.core(), s.Radius, s.Start, s.End)
	case "ellipse":
		start, end := s.Start, s.End
		if start == 0 && end == 0 {
			end = 2 * math.Pi
		}
		return doc.AddEllipse(s.At.core(), s.To.core(), s.Ratio, start, end)
	case "polyline":
		return doc.AddPolyline(points(s.Points), s.Closed)
	case "hatch":
		return doc.AddHatch(points(s.Points))
	case "text":
		return doc.AddText(s.At.core(), height(s.Height), s.Text, s.Rotation)
	case "insert":
		scale := s.Scale
		if scale == 0 {
			scale = 1
		}
		attrs := make([]dxf.Attribute, 0, len(s.Attributes))
		for _, a := range s.Attributes {
			attrs = append(attrs, dxf.Attribute{
				Tag:      a.Tag,
				Value:    a.Value,
				Position: a.At.core(),
				Height:   height(a.Height),
			})
		}
		return doc.InsertWithAttributes(s.Block, s.At.core(), core.Point{X: scale, Y: scale, Z: scale}, s.Rotation, attrs)
	case "image":
		return doc.AddImage(s.File, s.At.core(), s.Width, s.Height, s.PixelsW, s.PixelsH)
	}
	return 0
}

func points(list []Point) []core.Point {
	out := make([]core.Point, len(list))
	for i, p := range list {
		out[i] = p.core()
	}
	return out
}

func height(h float64) float64 {
	if h <= 0 {
		return dxf.DefaultTextStyle.LastHeight
	}
	return h
}
