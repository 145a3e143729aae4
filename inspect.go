package dxf

import (
	"fmt"
	"io"

	"github.com/zooyer/dxf-writer/core"
)

// Report 对 DXF 文本的结构检查结果
type Report struct {
	Sections      []string
	HandleSeed    Handle
	Handles       map[string][]Handle // 每个段中定义的句柄（组码 5/105）
	Duplicates    []Handle
	MaxHandle     Handle
	BlockEntities []Handle          // BLOCKS 段中 BLOCK 与 ENDBLK 之间的实体
	Entities      []Handle          // ENTITIES 段中的实体
	Types         map[Handle]string // 句柄对应的记录类型
	Units         int               // $INSUNITS
	PaperExtents  core.BBox         // $PEXTMIN / $PEXTMAX
}

// Valid 句柄无重复且 $HANDSEED 大于所有句柄
func (r *Report) Valid() bool {
	return len(r.Duplicates) == 0 && r.HandleSeed > r.MaxHandle
}

// Inspect 扫描 DXF 文本，收集各段的句柄
func Inspect(reader io.Reader) (*Report, error) {
	var (
		scanner = core.NewScanner(reader)
		report  = &Report{
			Handles: make(map[string][]Handle),
			Types:   make(map[Handle]string),
		}
		seen     = make(map[Handle]int)
		section  string
		record   string // 最近一个组码 0 的值
		header   string // HEADER 段中最近的变量名
		awaiting bool   // 等待段名
	)

	for scanner.Next() {
		tag := scanner.LastTag

		if tag.Code == 0 {
			record = tag.AsString()
			switch {
			case tag.Is("SECTION"):
				awaiting = true
			case tag.Is("ENDSEC"):
				section = ""
			}
			continue
		}

		if awaiting && tag.Code == 2 {
			section = tag.AsString()
			report.Sections = append(report.Sections, section)
			awaiting = false
			continue
		}

		if section == "HEADER" {
			switch tag.Code {
			case 9:
				header = tag.AsString()
			case 70:
				if header == "$INSUNITS" {
					report.Units = tag.AsInt()
				}
			case 10, 20, 30:
				switch header {
				case "$PEXTMIN":
					setCoord(&report.PaperExtents.Min, tag)
				case "$PEXTMAX":
					setCoord(&report.PaperExtents.Max, tag)
				}
			case 5:
				if header == "$HANDSEED" {
					h, err := tag.AsHandle()
					if err != nil {
						return nil, fmt.Errorf("line %d: $HANDSEED: %w", scanner.Line(), err)
					}
					report.HandleSeed = h
				}
			}
			continue
		}

		if !tag.IsHandle() {
			continue
		}

		h, err := tag.AsHandle()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", scanner.Line(), err)
		}

		report.Handles[section] = append(report.Handles[section], h)
		report.Types[h] = record
		if seen[h]++; seen[h] == 2 {
			report.Duplicates = append(report.Duplicates, h)
		}
		if h > report.MaxHandle {
			report.MaxHandle = h
		}

		switch section {
		case "BLOCKS":
			if record != "BLOCK" && record != "ENDBLK" {
				report.BlockEntities = append(report.BlockEntities, h)
			}
		case "ENTITIES":
			report.Entities = append(report.Entities, h)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return report, nil
}

func setCoord(p *core.Point, tag core.Tag) {
	switch tag.Code {
	case 10:
		p.X = tag.AsFloat()
	case 20:
		p.Y = tag.AsFloat()
	case 30:
		p.Z = tag.AsFloat()
	}
}
