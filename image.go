package dxf

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zooyer/dxf-writer/core"
	"github.com/zooyer/dxf-writer/entities"
)

// AddImage 插入光栅图像引用。同一文件共用一个 IMAGEDEF，每个 IMAGE 有自己的 IMAGEDEF_REACTOR。
// width、height 为图像在图形中的尺寸，pixelsW、pixelsH 为图像像素尺寸。
func (d *Document) AddImage(fileName string, at core.Point, width, height float64, pixelsW, pixelsH int) Handle {
	return d.add("IMAGE", func(base entities.Base) entities.Entity {
		def, ok := d.images.Get(fileName)
		if !ok {
			def = &entities.ImageDef{
				ID:       d.handles.Next(),
				Owner:    d.imageDict,
				Name:     d.imageName(fileName),
				FileName: fileName,
				PixelsW:  pixelsW,
				PixelsH:  pixelsH,
			}
			d.images.Add(fileName, def)
		}

		reactor := &entities.ImageDefReactor{ID: d.handles.Next(), Image: base.Handle}
		def.Reactors = append(def.Reactors, reactor.ID)
		d.reactors = append(d.reactors, reactor)

		return entities.NewImage(base, d.ctx.Apply(at), width, height, pixelsW, pixelsH, def.ID, reactor.ID)
	})
}

// imageName 字典中的名称取文件名（去扩展名），重名时追加序号
func (d *Document) imageName(fileName string) string {
	base := filepath.Base(fileName)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = "image"
	}

	taken := func(n string) bool {
		for _, def := range d.images.All() {
			if def.Name == n {
				return true
			}
		}
		return false
	}

	candidate := name
	for i := 2; taken(candidate); i++ {
		candidate = name + "-" + strconv.Itoa(i)
	}
	return candidate
}

// Images 按添加顺序返回图像定义
func (d *Document) Images() []*entities.ImageDef {
	return d.images.Values()
}
