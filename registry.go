package dxf

import "iter"

// registry 按注册顺序保存的命名表
type registry[T any] struct {
	keys  []string
	items map[string]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

func (r *registry[T]) Get(name string) (T, bool) {
	v, ok := r.items[name]
	return v, ok
}

func (r *registry[T]) Has(name string) bool {
	_, ok := r.items[name]
	return ok
}

// Add 已存在时不覆盖，返回 false
func (r *registry[T]) Add(name string, v T) bool {
	if _, ok := r.items[name]; ok {
		return false
	}
	r.keys = append(r.keys, name)
	r.items[name] = v
	return true
}

func (r *registry[T]) Len() int {
	return len(r.keys)
}

func (r *registry[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, k := range r.keys {
			if !yield(k, r.items[k]) {
				return
			}
		}
	}
}

func (r *registry[T]) Values() []T {
	out := make([]T, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.items[k])
	}
	return out
}
