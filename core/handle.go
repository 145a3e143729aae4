package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHandle 句柄不是合法的十六进制
var ErrInvalidHandle = errors.New("invalid handle")

// Handle DXF 句柄，输出为小写十六进制，无前缀、无补零
type Handle uint64

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 16)
}

// ParseHandle 解析十六进制句柄（大小写均可）
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidHandle
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHandle, s)
	}
	return Handle(v), nil
}

// Allocator 句柄分配器：单调递增，永不复用
type Allocator struct {
	next Handle
}

// NewAllocator 以 seed 作为第一个分配的句柄
func NewAllocator(seed Handle) *Allocator {
	return &Allocator{next: seed}
}

// Next 返回下一个未使用的句柄并推进计数器
func (a *Allocator) Next() Handle {
	h := a.next
	a.next++
	return h
}

// Seed 下一个未使用的句柄，写入 $HANDSEED
func (a *Allocator) Seed() Handle {
	return a.next
}
