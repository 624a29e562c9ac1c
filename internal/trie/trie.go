// Package trie implements an ordered prefix tree keyed by path segment.
//
// Each inserted path shares nodes with previously inserted paths that share
// leading segments. Children keep the order in which they were first inserted,
// which is the default render order until SortBy rearranges them.
package trie

import (
	"sort"
	"strings"

	"github.com/pathtree/pathtree/internal/types"
)

// Node is a single entry in the path trie. A node with no children represents
// a file; a node with children represents a directory.
type Node struct {
	childOrder []string
	childIndex map[string]*Node
	leaf       bool
}

// NewNode returns an empty leaf node.
func NewNode() *Node {
	return &Node{
		childIndex: make(map[string]*Node),
		leaf:       true,
	}
}

// IsLeaf reports whether the node has no children.
func (node *Node) IsLeaf() bool {
	return node.leaf
}

// Child returns the child registered under the given segment name, or nil.
func (node *Node) Child(segmentName string) *Node {
	return node.childIndex[segmentName]
}

// ChildNames returns the segment names of the node's children in iteration order.
func (node *Node) ChildNames() []string {
	return node.childOrder
}

// Insert descends from the node through the given segments, creating missing
// children along the way. Every traversed node is marked non-leaf. Re-inserting
// an already present segment reuses the existing child, so insertion is
// idempotent. An empty segment sequence leaves the node untouched. Callers are
// expected to filter out empty segments beforehand.
func (node *Node) Insert(segments []string) {
	currentNode := node
	for _, segment := range segments {
		currentNode.leaf = false
		childNode, childExists := currentNode.childIndex[segment]
		if !childExists {
			childNode = NewNode()
			currentNode.childIndex[segment] = childNode
			currentNode.childOrder = append(currentNode.childOrder, segment)
		}
		currentNode = childNode
	}
}

// VisitFunc receives one visited trie entry during a depth-first walk. The
// depth of a child is always its parent's depth plus one, and isLast is true
// exactly when the entry is the final child in its parent's ordered collection.
type VisitFunc func(segmentName string, node *Node, depth int, isLast bool)

// Walk performs a depth-first pre-order traversal over the node's descendants.
// The node itself is the implicit depth-0 anchor and is never visited; its
// children are visited at depth 1 in current iteration order.
func (node *Node) Walk(visit VisitFunc) {
	node.walkChildren(visit, 1)
}

func (node *Node) walkChildren(visit VisitFunc, depth int) {
	lastIndex := len(node.childOrder) - 1
	for childIndex, segmentName := range node.childOrder {
		childNode := node.childIndex[segmentName]
		visit(segmentName, childNode, depth, childIndex == lastIndex)
		if !childNode.leaf {
			childNode.walkChildren(visit, depth+1)
		}
	}
}

// SortBy recursively reorders every node's children according to the given
// order. The reordering is permanent for the remainder of the run. SortNone
// leaves the insertion order untouched.
func (node *Node) SortBy(order types.SortOrder) {
	switch order {
	case types.SortByName:
		node.sortRecursively(func(parent *Node, leftName, rightName string) bool {
			return leftName < rightName
		})
	case types.SortByType:
		node.sortRecursively(func(parent *Node, leftName, rightName string) bool {
			leftIsDirectory := !parent.childIndex[leftName].leaf
			rightIsDirectory := !parent.childIndex[rightName].leaf
			if leftIsDirectory != rightIsDirectory {
				return leftIsDirectory
			}
			leftKey := extensionSortKey(leftName)
			rightKey := extensionSortKey(rightName)
			if leftKey != rightKey {
				return leftKey < rightKey
			}
			return leftName < rightName
		})
	}
}

func (node *Node) sortRecursively(less func(parent *Node, leftName, rightName string) bool) {
	sort.SliceStable(node.childOrder, func(leftIndex, rightIndex int) bool {
		return less(node, node.childOrder[leftIndex], node.childOrder[rightIndex])
	})
	for _, childNode := range node.childIndex {
		childNode.sortRecursively(less)
	}
}

// extensionSortKey returns the dot-delimited suffix used for by-type ordering.
// A name without a suffix sorts as if its extension were the whole name.
func extensionSortKey(segmentName string) string {
	dotIndex := strings.LastIndex(segmentName, ".")
	if dotIndex < 0 {
		return segmentName
	}
	return segmentName[dotIndex+1:]
}

// Count tallies the directories (non-leaf nodes) and files (leaf nodes)
// reachable below the node, excluding the node itself.
func (node *Node) Count() (directories int, files int) {
	for _, segmentName := range node.childOrder {
		childNode := node.childIndex[segmentName]
		if childNode.leaf {
			files++
			continue
		}
		directories++
		childDirectories, childFiles := childNode.Count()
		directories += childDirectories
		files += childFiles
	}
	return directories, files
}
