// Package commands contains the core logic of the pathtree build pass: turning
// a stream of raw path lines into a filtered, ordered path trie.
package commands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pathtree/pathtree/internal/match"
	"github.com/pathtree/pathtree/internal/trie"
	"github.com/pathtree/pathtree/internal/types"
	"github.com/pathtree/pathtree/internal/utils"
)

// TreeBuilder accumulates filtered input lines into a path trie.
type TreeBuilder struct {
	// Matcher decides which normalized paths are dropped. A nil Matcher keeps
	// every path.
	Matcher *match.Matcher
	// WorkingDirectory is stripped from lines carrying absolute paths.
	WorkingDirectory string

	root          *trie.Node
	excludedCount int
}

// NewTreeBuilder constructs a TreeBuilder with an empty root.
func NewTreeBuilder(matcher *match.Matcher, workingDirectory string) *TreeBuilder {
	return &TreeBuilder{
		Matcher:          matcher,
		WorkingDirectory: workingDirectory,
		root:             trie.NewNode(),
	}
}

// AddLine normalizes one raw input line and inserts the surviving path into
// the trie. Lines that normalize to the empty string are dropped silently;
// lines matching an exclusion pattern are dropped and counted.
func (treeBuilder *TreeBuilder) AddLine(rawLine string) {
	normalizedPath := utils.NormalizePathLine(rawLine, treeBuilder.WorkingDirectory)
	if normalizedPath == "" {
		return
	}
	if treeBuilder.Matcher != nil && treeBuilder.Matcher.ShouldExclude(normalizedPath) {
		treeBuilder.excludedCount++
		return
	}
	treeBuilder.root.Insert(utils.SplitPathSegments(normalizedPath))
}

// ReadFrom consumes the reader line by line until end of input. A read error
// terminates the stream and is returned so the caller can report it; the trie
// built so far remains valid.
func (treeBuilder *TreeBuilder) ReadFrom(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		treeBuilder.AddLine(scanner.Text())
	}
	if scanError := scanner.Err(); scanError != nil {
		return fmt.Errorf("reading input lines: %w", scanError)
	}
	return nil
}

// Root returns the trie built so far.
func (treeBuilder *TreeBuilder) Root() *trie.Node {
	return treeBuilder.root
}

// Statistics tallies the entries built and the lines excluded so far.
func (treeBuilder *TreeBuilder) Statistics() types.Statistics {
	directories, files := treeBuilder.root.Count()
	return types.Statistics{
		Files:       files,
		Directories: directories,
		Excluded:    treeBuilder.excludedCount,
	}
}
