package core

import (
	"bytes"
	"strconv"
	"strings"
)

// Writer 按 "组码\n值\n" 的格式输出标签
type Writer struct {
	buf bytes.Buffer
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Tag(code int, value string) {
	w.buf.WriteString(strconv.Itoa(code))
	w.buf.WriteByte('\n')
	w.buf.WriteString(value)
	w.buf.WriteByte('\n')
}

func (w *Writer) WriteTag(t Tag) {
	w.Tag(t.Code, t.Value)
}

func (w *Writer) Int(code, value int) {
	w.Tag(code, strconv.Itoa(value))
}

func (w *Writer) Float(code int, value float64) {
	w.Tag(code, FormatFloat(value))
}

func (w *Writer) Handle(code int, h Handle) {
	w.Tag(code, h.String())
}

// Point 依次写出 code、code+10、code+20 三个坐标
func (w *Writer) Point(code int, p Point) {
	w.Float(code, p.X)
	w.Float(code+10, p.Y)
	w.Float(code+20, p.Z)
}

// Point2 只写 X、Y（LWPOLYLINE 顶点、HATCH 边界等二维数据）
func (w *Writer) Point2(code int, p Point) {
	w.Float(code, p.X)
	w.Float(code+10, p.Y)
}

func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) String() string {
	return w.buf.String()
}

// FormatFloat 最短表示，并保证带小数点（部分 CAD 不接受整数形式的浮点组码）
func FormatFloat(f float64) string {
	if f == 0 {
		// 避免输出 -0.0
		return "0.0"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
