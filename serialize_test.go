package dxf

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/zooyer/dxf-writer/core"
)

type SerializeTestSuite struct {
	suite.Suite
	doc *Document
}

func TestSerializeSuite(t *testing.T) {
	suite.Run(t, new(SerializeTestSuite))
}

// SetupTest 三个布局、一个符号块、跨块插入和图像
func (s *SerializeTestSuite) SetupTest() {
	d := New()

	d.AddLayer("cut", Layer{Color: 1, LineType: "DASHED", LineWeight: 25})
	d.SetTextStyle("STANDARD", DefaultTextStyle)

	d.AddLayout("A", Portrait, PaperA4, Margins{Left: 1, Right: 2, Top: 3, Bottom: 4})
	d.SetLayer("cut")
	d.AddLine(core.Point{}, core.Point{X: 100, Y: 100})
	d.AddText(core.Point{X: 10, Y: 10}, 3.5, "hello", 0)

	d.AddBlock("SYM", core.Point{X: 5, Y: 5})
	d.AddCircle(core.Point{X: 5, Y: 5}, 2)
	d.AddArc(core.Point{X: 5, Y: 5}, 3, 0, 180)

	d.AddLayout("B", Landscape, PaperA3, Margins{Left: 10, Right: 20, Top: 30, Bottom: 40})
	d.Insert("SYM", core.Point{X: 50, Y: 50}, unit, 0)
	d.AddEllipse(core.Point{X: 20, Y: 20}, core.Point{X: 10}, 0.5, 0, 6.283185307179586)
	d.AddHatch([]core.Point{{}, {X: 5}, {X: 5, Y: 5}})

	d.AddLayout("C", Portrait, PaperLetter, Margins{Left: 7, Right: 7, Top: 7, Bottom: 7})
	d.AddPolyline([]core.Point{{}, {X: 1}, {X: 1, Y: 1}}, false)
	d.AddImage("logo.png", core.Point{}, 20, 10, 200, 100)

	d.SetLayout("A")
	d.Insert("SYM", core.Point{X: 1, Y: 1}, unit, 90)
	d.SetLayout("C")

	s.doc = d
}

func (s *SerializeTestSuite) inspect(text string) *Report {
	report, err := Inspect(strings.NewReader(text))
	s.Require().NoError(err)
	return report
}

func (s *SerializeTestSuite) TestEmptyDocument() {
	d := New()
	d.AddBlock("only-a-block", core.Point{})
	d.AddLine(core.Point{}, unit)

	s.Require().Equal(EmptyDocument, d.String())
	s.Require().Equal("no layout added", New().String())
}

func (s *SerializeTestSuite) TestHandlesAreUnique() {
	report := s.inspect(s.doc.String())

	s.Require().Empty(report.Duplicates)
	s.Require().True(report.Valid())
	s.Require().Equal(s.doc.HandleSeed(), report.HandleSeed)
	s.Require().Equal([]string{"HEADER", "CLASSES", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS"}, report.Sections)
}

func (s *SerializeTestSuite) TestFragmentExclusivity() {
	report := s.inspect(s.doc.String())

	inBlocks := make(map[Handle]int)
	for _, h := range report.BlockEntities {
		inBlocks[h]++
	}
	inEntities := make(map[Handle]int)
	for _, h := range report.Entities {
		inEntities[h]++
	}

	for _, b := range s.doc.Blocks() {
		for _, e := range b.Entities {
			h := e.Handle()
			s.Require().Equalf(1, inBlocks[h]+inEntities[h], "entity %s of %s", h, b.Name)
		}
	}

	// 主布局 A 的实体在 ENTITIES 段
	home, _ := s.doc.Block("*Paper_Space")
	for _, e := range home.Entities {
		s.Require().Equal(1, inEntities[e.Handle()])
	}
	s.Require().Len(report.Entities, len(home.Entities))
}

func (s *SerializeTestSuite) TestHomeLayoutSelected() {
	s.Require().Equal("C", s.doc.Context().Layout())
	_ = s.doc.String()

	s.Require().Equal("A", s.doc.Context().Layout())
	s.Require().Equal("*Paper_Space", s.doc.Context().Block())
}

func (s *SerializeTestSuite) TestIdempotent() {
	first := s.doc.String()
	seed := s.doc.HandleSeed()
	second := s.doc.String()

	s.Require().Equal(first, second)
	s.Require().Equal(seed, s.doc.HandleSeed())

	var buf bytes.Buffer
	n, err := s.doc.WriteTo(&buf)
	s.Require().NoError(err)
	s.Require().Equal(int64(len(first)), n)
	s.Require().Equal(first, buf.String())
}

func (s *SerializeTestSuite) TestTabOrder() {
	for i, name := range []string{"A", "B", "C"} {
		l, ok := s.doc.Layout(name)
		s.Require().True(ok)
		s.Require().Equal(i+1, l.TabOrder)
	}
	s.Require().Equal("A", s.doc.Home())
}

func (s *SerializeTestSuite) TestLayoutBinding() {
	names := []string{"*Paper_Space", "*Paper_Space0", "*Paper_Space1"}
	for i, l := range s.doc.Layouts() {
		b, ok := s.doc.Block(l.Block)
		s.Require().True(ok)
		s.Require().Equal(names[i], b.Name)
		s.Require().Equal(l.Handle, b.Layout)
		s.Require().Equal(b.Record, l.Owner)
		s.Require().Equal(l.Viewport, b.Entities[0].Handle())
		s.Require().Equal("VIEWPORT", b.Entities[0].Type())
	}

	sym, _ := s.doc.Block("SYM")
	s.Require().Len(sym.References, 2)
	s.Require().Equal(Handle(0), sym.Layout)
}

func (s *SerializeTestSuite) TestViewportStatus() {
	text := s.doc.String()
	entities, blocks := sectionText(text, "ENTITIES"), sectionText(text, "BLOCKS")

	s.Require().Contains(entities, "\n68\n1\n")
	s.Require().NotContains(entities, "\n68\n0\n")
	s.Require().Contains(blocks, "\n68\n0\n")
	s.Require().NotContains(blocks, "\n68\n1\n")
}

func (s *SerializeTestSuite) TestMargins() {
	text := s.doc.String()
	objects := sectionText(text, "OBJECTS")

	// 最近一次设置的页边距（布局 C）出现在模型布局和主布局上
	s.Require().Equal(Margins{Left: 7, Right: 7, Top: 7, Bottom: 7}, s.doc.Margins())
	s.Require().Equal(3, strings.Count(objects, "\n40\n7.0\n"))
	s.Require().Equal(1, strings.Count(objects, "\n40\n10.0\n"), "layout B keeps its own margins")
	s.Require().NotContains(objects, "\n40\n1.0\n")
}

func (s *SerializeTestSuite) TestTables() {
	text := s.doc.String()
	tables := sectionText(text, "TABLES")

	s.Require().Contains(tables, "\n2\nByBlock\n")
	s.Require().Contains(tables, "\n2\nByLayer\n")
	s.Require().Less(strings.Index(tables, "ByBlock"), strings.Index(tables, "ByLayer"))
	s.Require().Contains(tables, "Dashed __")
	s.Require().Contains(tables, "\n2\nSTANDARD\n")
	s.Require().Contains(tables, "\n2\ncut\n70\n0\n62\n1\n6\nDASHED\n370\n25\n")
	s.Require().Contains(tables, "{BLKREFS")
}

func (s *SerializeTestSuite) TestUnknownLineType() {
	d := New()
	d.AddLayer("x", Layer{LineType: "WIGGLE"})
	d.AddLayout("A", Portrait, PaperA4, Margins{})

	tables := sectionText(d.String(), "TABLES")
	s.Require().Contains(tables, "\n2\nWIGGLE\n70\n0\n3\n\n72\n65\n73\n0\n40\n0.0\n")
}

func (s *SerializeTestSuite) TestReservedLineTypesWrittenOnce() {
	d := New()
	d.AddLayer("x", Layer{LineType: "ByLayer"})
	d.AddLayer("y", Layer{LineType: "byblock"})
	d.AddLayout("A", Portrait, PaperA4, Margins{})

	tables := sectionText(d.String(), "TABLES")
	s.Require().Equal(1, strings.Count(strings.ToLower(tables), "\n2\nbylayer\n70\n"))
	s.Require().Equal(1, strings.Count(strings.ToLower(tables), "\n2\nbyblock\n70\n"))
	// ByBlock、ByLayer、CONTINUOUS
	s.Require().Contains(tables, "\n0\nTABLE\n2\nLTYPE\n5\n"+d.lineTypeTable.String()+"\n330\n0\n100\nAcDbSymbolTable\n70\n3\n")
	s.Require().Contains(tables, "\n2\nx\n70\n0\n62\n0\n6\nByLayer\n")
}

func (s *SerializeTestSuite) TestSelfInsertingBlock() {
	d := New()
	d.AddLayout("Sheet", Portrait, PaperA4, Margins{})
	d.AddBlock("A", core.Point{})
	d.AddLine(core.Point{}, core.Point{X: 300, Y: 400})
	for i := 0; i < 4; i++ {
		s.Require().NotZero(d.Insert("A", core.Point{X: float64(i)}, unit, 0))
	}

	// 嵌套 12 层，每层插入上一层 10 次
	prev := "A"
	for i := 1; i <= 12; i++ {
		name := "N" + strconv.Itoa(i)
		d.AddBlock(name, core.Point{})
		for k := 0; k < 10; k++ {
			d.Insert(prev, core.Point{X: float64(k)}, unit, 0)
		}
		prev = name
	}

	d.SetLayout("Sheet")
	d.Insert(prev, core.Point{}, unit, 0)

	report := s.inspect(d.String())
	s.Require().True(report.Valid())
	s.Require().Equal(core.Point{X: 300 + 9*12, Y: 400}, report.PaperExtents.Max)
	s.Require().Equal(core.Point{}, report.PaperExtents.Min)
}

func (s *SerializeTestSuite) TestHeaderReport() {
	report := s.inspect(s.doc.String())

	s.Require().Equal(4, report.Units)
	s.Require().Equal(s.doc.paperExtents(), report.PaperExtents)
	// 视口铺满 A4，插入的符号可能超出图纸
	s.Require().GreaterOrEqual(report.PaperExtents.Width(), 210.0)
	s.Require().GreaterOrEqual(report.PaperExtents.Height(), 297.0)
}

func (s *SerializeTestSuite) TestImageDictionary() {
	text := s.doc.String()
	report := s.inspect(text)

	defs := s.doc.Images()
	s.Require().Len(defs, 1)
	s.Require().Equal("IMAGEDEF", report.Types[defs[0].ID])
	s.Require().Equal("IMAGEDEF_REACTOR", report.Types[defs[0].Reactors[0]])
	s.Require().Contains(sectionText(text, "OBJECTS"), "\n3\nlogo\n350\n"+defs[0].ID.String()+"\n")
	s.Require().Equal("DICTIONARY", report.Types[s.doc.imageDict])
}

func (s *SerializeTestSuite) TestSave() {
	dir := s.T().TempDir()
	file := filepath.Join(dir, "out.dxf")

	s.Require().NoError(s.doc.Save(file))
	data, err := os.ReadFile(file)
	s.Require().NoError(err)
	s.Require().Equal(s.doc.String(), string(data))
	s.Require().NoError(s.doc.Err())

	err = s.doc.Save(filepath.Join(dir, "missing", "out.dxf"))
	s.Require().Error(err)
	s.Require().ErrorIs(s.doc.Err(), os.ErrNotExist)

	// 失败后文档仍然可用
	s.doc.AddPoint(core.Point{})
	s.Require().NotEqual(EmptyDocument, s.doc.String())
}

// sectionText 取出指定段的文本
func sectionText(text, name string) string {
	start := strings.Index(text, "0\nSECTION\n2\n"+name+"\n")
	if start < 0 {
		return ""
	}
	end := strings.Index(text[start:], "\n0\nENDSEC\n")
	if end < 0 {
		return text[start:]
	}
	return text[start : start+end+1]
}

func TestSkeleton_Scans(t *testing.T) {
	d := New()
	d.AddLayout("A", Portrait, PaperA4, Margins{})

	report, err := Inspect(strings.NewReader(d.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !report.Valid() {
		t.Fatalf("invalid handles: %+v", report)
	}
	for _, h := range []Handle{handleBlockRecordTable, handleRootDictionary, handlePlotStyleNormal, handleLayoutDictionary, handleModelSpaceRecord} {
		if _, ok := report.Types[h]; !ok {
			t.Errorf("fixed handle %s missing from skeleton", h)
		}
	}
}
