// SPDX-License-Identifier: MIT
// Package: lsgraph/mutable
//
// edgelist.go — parser for the text edge-list format written by
// core.WriteEdgeList.

package mutable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lsgraph/core"
)

// ErrMalformedEdgeList is returned, wrapped with the line number, when the
// edge-list text cannot be parsed.
var ErrMalformedEdgeList = errors.New("mutable: malformed edge list")

// ReadEdgeList parses the text edge-list format:
//
//	<node count>
//	with values | no values
//	<i> <j>[,<v>] <j>[,<v>] ...
//
// Node lines may appear in any order, repeat, or be omitted; blank lines
// are ignored. Without values every edge gets value 1. A pair listed twice
// keeps its first value.
// Complexity: O(L + E log d) for L input bytes.
func ReadEdgeList(r io.Reader, opts ...Option) (*Graph, error) {
	br := bufio.NewReaderSize(r, 1<<16)
	p := &edgeListParser{r: br}

	header, err := p.nextLine()
	if err != nil {
		return nil, p.fail("missing node count", err)
	}
	n, err := strconv.Atoi(header)
	if err != nil || n < 0 {
		return nil, p.fail(fmt.Sprintf("bad node count %q", header), nil)
	}
	mode, err := p.nextLine()
	if err != nil {
		return nil, p.fail("missing values line", err)
	}
	var withValues bool
	switch mode {
	case core.WithValuesLine:
		withValues = true
	case core.NoValuesLine:
	default:
		return nil, p.fail(fmt.Sprintf("bad values line %q", mode), nil)
	}

	g, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	err = g.WithBatch(func(b *BatchInserter) error {
		for {
			line, err := p.nextLine()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return p.fail("read", err)
			}
			if err = p.parseNode(b, line, withValues); err != nil {
				return err
			}
		}
	})
	if err != nil {
		return nil, err
	}
	g.log.Debug("edge list parsed",
		zap.Int("nodes", n),
		zap.Int("edges", g.edges),
		zap.Int("lines", p.line))

	return g, nil
}

type edgeListParser struct {
	r    *bufio.Reader
	line int
}

// nextLine returns the next non-blank line without surrounding spaces.
func (p *edgeListParser) nextLine() (string, error) {
	for {
		s, err := p.r.ReadString('\n')
		if s == "" && err != nil {
			return "", err
		}
		p.line++
		if s = strings.TrimSpace(s); s != "" {
			return s, nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (p *edgeListParser) fail(msg string, err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("ReadEdgeList: line %d: %s: %w", p.line, msg, err)
	}

	return fmt.Errorf("ReadEdgeList: line %d: %s: %w", p.line, msg, ErrMalformedEdgeList)
}

func (p *edgeListParser) parseNode(b *BatchInserter, line string, withValues bool) error {
	fields := strings.Fields(line)
	i, err := strconv.Atoi(fields[0])
	if err != nil {
		return p.fail(fmt.Sprintf("bad node %q", fields[0]), nil)
	}
	if err = core.CheckNode(len(b.g.out), i); err != nil {
		return fmt.Errorf("ReadEdgeList: line %d: %w", p.line, err)
	}
	for _, tok := range fields[1:] {
		target, value := tok, 1.0
		if withValues {
			var raw string
			var ok bool
			if target, raw, ok = strings.Cut(tok, ","); !ok {
				return p.fail(fmt.Sprintf("edge %q has no value", tok), nil)
			}
			if value, err = strconv.ParseFloat(raw, 64); err != nil {
				return p.fail(fmt.Sprintf("bad value %q", raw), nil)
			}
		}
		j, err := strconv.Atoi(target)
		if err != nil {
			return p.fail(fmt.Sprintf("bad neighbor %q", target), nil)
		}
		if err = b.Add(i, j, value); err != nil {
			return fmt.Errorf("ReadEdgeList: line %d: %w", p.line, err)
		}
	}

	return nil
}
