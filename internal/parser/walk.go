package parser

import (
	"slices"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// walkTree visits node and its descendants depth first. Returning false
// from visitor skips the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}

func findChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			return child
		}
	}
	return nil
}

func findChildrenByType(node *sitter.Node, nodeType string) []*sitter.Node {
	var results []*sitter.Node
	if node == nil {
		return results
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			results = append(results, child)
		}
	}
	return results
}

func extractNodeText(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}
	return string(src[node.StartByte():node.EndByte()])
}

// lineIndex holds the byte offset at which each line starts. A line ends
// at \r\n, \r or \n.
type lineIndex []int

func newLineIndex(src string) lineIndex {
	idx := lineIndex{0}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			idx = append(idx, i+1)
		case '\n':
			idx = append(idx, i+1)
		}
	}
	return idx
}

// line returns the 1-indexed line containing offset.
func (idx lineIndex) line(offset int) int {
	i, found := slices.BinarySearch(idx, offset)
	if found {
		return i + 1
	}
	return i
}

// last returns the 1-indexed line of the final byte in [start, end).
func (idx lineIndex) last(start, end int) int {
	return idx.line(max(start, end-1))
}

// Position converts a byte offset into a 1-indexed line and column.
// Columns count bytes. Offsets past the end clamp to the end of src.
func Position(src string, offset int) (line, col int) {
	offset = min(max(offset, 0), len(src))
	idx := newLineIndex(src)
	line = idx.line(offset)
	return line, offset - idx[line-1] + 1
}
