package assembler

import (
	"strings"
	"unicode"
)

// stripLine removes the comment and all whitespace from a raw source
// line. Hack assembly carries no significant whitespace.
func stripLine(line string) string {
	if i := strings.Index(line, "//"); i != -1 {
		line = line[:i]
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}

// parseLine classifies one raw source line. Blank and comment-only
// lines return nil; they contribute nothing, not even to invalid
// counting.
func parseLine(raw string, num int) *Node {
	line := stripLine(raw)
	if line == "" {
		return nil
	}

	n := &Node{Line: num}
	switch {
	case line[0] == '@':
		n.Type = NodeAddress
		n.Symbol = line[1:]
	case line[0] == '(' && line[len(line)-1] == ')':
		n.Type = NodeLabel
		n.Symbol = line[1 : len(line)-1]
	case strings.ContainsAny(line, "=;"):
		n.Type = NodeCompute
		rest := line
		if dest, after, ok := strings.Cut(rest, "="); ok {
			n.Dest = dest
			rest = after
		}
		n.Comp, n.Jump, _ = strings.Cut(rest, ";")
	default:
		n.Type = NodeInvalid
	}
	return n
}

// parse splits source text into lines and classifies each one,
// dropping blanks. The resulting nodes are reused by both passes.
func parse(src string) []*Node {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	var nodes []*Node
	for i, line := range lines {
		if n := parseLine(line, i+1); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
