package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMissingValue 组码行之后缺少值行
var ErrMissingValue = errors.New("missing value line")

type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	line    int
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		// 最后一行没有换行符
		err = nil
	}
	if err != nil {
		return "", err
	}
	s.line++
	return line, nil
}

func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	for {
		// 1. 读取 Code 行
		codeLine, err := s.readLine()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return false
		}

		codeStr := strings.TrimSpace(codeLine)
		if codeStr == "" { // 跳过空行
			continue
		}

		code, err := strconv.Atoi(codeStr)
		if err != nil {
			s.err = fmt.Errorf("line %d: invalid group code %q: %w", s.line, codeStr, err)
			return false
		}

		// 2. 读取 Value 行
		valueLine, err := s.readLine()
		if err != nil {
			// Value 行如果 EOF 也是不完整的
			if err == io.EOF {
				err = ErrMissingValue
			}
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			return false
		}

		// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
		value := strings.TrimRight(valueLine, "\r\n")

		s.LastTag = Tag{Code: code, Value: value}
		return true
	}
}

// Line 已读取的行数
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Err() error {
	return s.err
}
