package utils

import (
	"github.com/zooyer/dxf-writer/entities"
)

// GetAttrs 属性标签到值，同名标签取第一个
func GetAttrs(ins *entities.Insert) map[string]string {
	var attrs = make(map[string]string)
	for _, a := range ins.Attributes {
		if _, ok := attrs[a.Tag]; !ok {
			attrs[a.Tag] = a.Text
		}
	}

	return attrs
}

func GetAttr(ins *entities.Insert, key string) string {
	return GetAttrs(ins)[key]
}

// FindAttr 在实体列表的 INSERT 中查找属性，返回第一个非空值
func FindAttr(ents []entities.Entity, key string) string {
	for _, e := range ents {
		ins, ok := e.(*entities.Insert)
		if !ok {
			continue
		}
		if v := GetAttr(ins, key); v != "" {
			return v
		}
	}

	return ""
}
