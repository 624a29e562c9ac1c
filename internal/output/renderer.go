package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pathtree/pathtree/internal/trie"
)

// rootLine anchors the tree body; every rendered entry hangs below it.
const rootLine = "."

// Colorizer decorates entry names for display.
type Colorizer interface {
	Colorize(entryName string) string
}

// plainColorizer leaves names undecorated.
type plainColorizer struct{}

func (plainColorizer) Colorize(entryName string) string {
	return entryName
}

// NewPlainColorizer returns a Colorizer that performs no decoration.
func NewPlainColorizer() Colorizer {
	return plainColorizer{}
}

// Renderer writes a trie as connected tree lines. Each Renderer owns a fresh
// Trunk and therefore serves exactly one render pass.
type Renderer struct {
	writer    io.Writer
	colorizer Colorizer
	trunk     Trunk
}

// NewRenderer constructs a Renderer emitting to the given writer.
func NewRenderer(writer io.Writer, colorizer Colorizer) *Renderer {
	return &Renderer{
		writer:    writer,
		colorizer: colorizer,
	}
}

// RenderTree walks the trie depth-first and writes one line per entry,
// prefixed by the connector glyphs for every open ancestor column.
func (renderer *Renderer) RenderTree(root *trie.Node) error {
	if _, writeError := fmt.Fprintln(renderer.writer, rootLine); writeError != nil {
		return fmt.Errorf("writing tree root: %w", writeError)
	}

	var firstWriteError error
	root.Walk(func(segmentName string, node *trie.Node, depth int, isLast bool) {
		if firstWriteError != nil {
			return
		}
		parts := renderer.trunk.Row(depth, isLast)
		var prefixBuilder strings.Builder
		for _, part := range parts {
			prefixBuilder.WriteString(part.Glyph())
		}
		_, writeError := fmt.Fprintf(renderer.writer, "%s %s\n", prefixBuilder.String(), renderer.colorizer.Colorize(segmentName))
		if writeError != nil {
			firstWriteError = fmt.Errorf("writing tree entry %s: %w", segmentName, writeError)
		}
	})
	return firstWriteError
}
