package dxf

import (
	"fmt"
	"io"
	"os"
)

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo 把 DXF 文本写入 w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	if err := d.render(cw); err != nil {
		d.err = fmt.Errorf("write dxf: %w", err)
		return cw.n, d.err
	}
	return cw.n, nil
}

// Save 写入文件（创建或截断）。失败时返回错误并记录到 Err，文档本身仍可继续使用。
func (d *Document) Save(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		d.err = fmt.Errorf("save dxf: %w", err)
		return d.err
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = fmt.Errorf("save dxf: %w", e)
			d.err = err
		}
	}()

	if _, err = d.WriteTo(file); err != nil {
		return err
	}

	d.log.Debug().Str("file", filename).Msg("dxf saved")
	return nil
}

// Err 最近一次输出失败的原因
func (d *Document) Err() error {
	return d.err
}
