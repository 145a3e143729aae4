package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"strconv"

	"github.com/zooyer/golib/xos"

	dxf "github.com/zooyer/dxf-writer"
	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
	"github.com/zooyer/dxf-writer/utils"
)

var reportHeader = []string{"序号", "布局", "块", "图纸宽度", "图纸高度", "方向", "图元数", "主布局"}

func csvLine(fields []string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(fields)
	w.Flush()
	return buf.Bytes()
}

// writeReport 每个布局一行，按创建顺序。
// tags 中的每个属性标签追加一列，取该布局中第一个带此属性的块引用的值。
func writeReport(filename string, doc *dxf.Document, tags ...string) error {
	header := append(append([]string{}, reportHeader...), tags...)
	if err := os.WriteFile(filename, csvLine(header), 0644); err != nil {
		return err
	}

	for _, l := range doc.Layouts() {
		var ents []entities.Entity
		if b, ok := doc.Block(l.Block); ok {
			ents = b.Entities
		}

		home := ""
		if l.Name == doc.Home() {
			home = "是"
		}

		fields := []string{
			strconv.Itoa(l.TabOrder),
			l.Name,
			l.Block,
			core.FormatFloat(l.Paper.Width),
			core.FormatFloat(l.Paper.Height),
			l.Orientation.String(),
			strconv.Itoa(len(ents)),
			home,
		}
		for _, tag := range tags {
			fields = append(fields, utils.FindAttr(ents, tag))
		}

		line := csvLine(fields)
		if err := xos.AppendFile(filename, line, 0644); err != nil {
			return err
		}
	}

	return nil
}
