package trie_test

import (
	"reflect"
	"testing"

	"github.com/pathtree/pathtree/internal/trie"
	"github.com/pathtree/pathtree/internal/types"
)

func TestInsertIsIdempotentAndOrderPreserving(t *testing.T) {
	root := trie.NewNode()
	root.Insert([]string{"src", "main"})
	root.Insert([]string{"src", "lib"})
	root.Insert([]string{"src", "main"})

	if rootChildren := root.ChildNames(); !reflect.DeepEqual(rootChildren, []string{"src"}) {
		t.Fatalf("expected one src child, got %v", rootChildren)
	}
	sourceNode := root.Child("src")
	if sourceChildren := sourceNode.ChildNames(); !reflect.DeepEqual(sourceChildren, []string{"main", "lib"}) {
		t.Fatalf("expected children [main lib], got %v", sourceChildren)
	}
	if root.IsLeaf() || sourceNode.IsLeaf() {
		t.Errorf("root and src must not be leaves")
	}
	if !sourceNode.Child("main").IsLeaf() || !sourceNode.Child("lib").IsLeaf() {
		t.Errorf("main and lib must be leaves")
	}
}

func TestInsertEmptySequenceLeavesRootUntouched(t *testing.T) {
	root := trie.NewNode()
	root.Insert(nil)
	root.Insert([]string{})

	if !root.IsLeaf() {
		t.Errorf("root must stay a leaf after empty insertions")
	}
	if childCount := len(root.ChildNames()); childCount != 0 {
		t.Errorf("expected no children, got %d", childCount)
	}
}

func TestLeafInvariantHoldsAfterEveryInsertion(t *testing.T) {
	root := trie.NewNode()
	insertions := [][]string{
		{"a"},
		{"a", "b"},
		{"a", "b", "c"},
		{"d"},
	}
	for _, segments := range insertions {
		root.Insert(segments)
		assertLeafInvariant(t, root)
	}
}

func assertLeafInvariant(t *testing.T, node *trie.Node) {
	t.Helper()
	if node.IsLeaf() != (len(node.ChildNames()) == 0) {
		t.Fatalf("leaf flag %v disagrees with child count %d", node.IsLeaf(), len(node.ChildNames()))
	}
	for _, childName := range node.ChildNames() {
		assertLeafInvariant(t, node.Child(childName))
	}
}

type visitRecord struct {
	name   string
	depth  int
	isLast bool
}

func TestWalkVisitsDepthFirstWithLastFlags(t *testing.T) {
	root := trie.NewNode()
	root.Insert([]string{"src", "main.go"})
	root.Insert([]string{"src", "lib.go"})
	root.Insert([]string{"README.md"})

	var visits []visitRecord
	root.Walk(func(segmentName string, node *trie.Node, depth int, isLast bool) {
		visits = append(visits, visitRecord{name: segmentName, depth: depth, isLast: isLast})
	})

	expectedVisits := []visitRecord{
		{name: "src", depth: 1, isLast: false},
		{name: "main.go", depth: 2, isLast: false},
		{name: "lib.go", depth: 2, isLast: true},
		{name: "README.md", depth: 1, isLast: true},
	}
	if !reflect.DeepEqual(visits, expectedVisits) {
		t.Errorf("unexpected traversal:\n got %v\nwant %v", visits, expectedVisits)
	}
}

func TestSortByName(t *testing.T) {
	root := trie.NewNode()
	root.Insert([]string{"c.txt"})
	root.Insert([]string{"a.txt"})
	root.Insert([]string{"b.txt"})

	root.SortBy(types.SortByName)

	if sortedNames := root.ChildNames(); !reflect.DeepEqual(sortedNames, []string{"a.txt", "b.txt", "c.txt"}) {
		t.Errorf("expected alphabetical order, got %v", sortedNames)
	}
}

func TestSortByTypePlacesDirectoriesFirst(t *testing.T) {
	root := trie.NewNode()
	root.Insert([]string{"file.txt"})
	root.Insert([]string{"dir", "nested.go"})
	root.Insert([]string{"file.rs"})

	root.SortBy(types.SortByType)

	// The directory leads; files follow ordered by extension, then name.
	if sortedNames := root.ChildNames(); !reflect.DeepEqual(sortedNames, []string{"dir", "file.rs", "file.txt"}) {
		t.Errorf("expected directory-first order, got %v", sortedNames)
	}
}

func TestSortByTypeUsesWholeNameWithoutExtension(t *testing.T) {
	root := trie.NewNode()
	root.Insert([]string{"zebra"})
	root.Insert([]string{"b.conf"})
	root.Insert([]string{"a.toml"})

	root.SortBy(types.SortByType)

	// Extension keys: "conf", "toml", "zebra".
	if sortedNames := root.ChildNames(); !reflect.DeepEqual(sortedNames, []string{"b.conf", "a.toml", "zebra"}) {
		t.Errorf("unexpected extension order, got %v", sortedNames)
	}
}

func TestSortByNameAppliesRecursively(t *testing.T) {
	root := trie.NewNode()
	root.Insert([]string{"src", "z.go"})
	root.Insert([]string{"src", "a.go"})

	root.SortBy(types.SortByName)

	if nestedNames := root.Child("src").ChildNames(); !reflect.DeepEqual(nestedNames, []string{"a.go", "z.go"}) {
		t.Errorf("expected nested children sorted, got %v", nestedNames)
	}
}

func TestSortNoneKeepsInsertionOrder(t *testing.T) {
	root := trie.NewNode()
	root.Insert([]string{"c"})
	root.Insert([]string{"a"})

	root.SortBy(types.SortNone)

	if names := root.ChildNames(); !reflect.DeepEqual(names, []string{"c", "a"}) {
		t.Errorf("expected insertion order preserved, got %v", names)
	}
}

func TestCountTalliesDirectoriesAndFiles(t *testing.T) {
	root := trie.NewNode()
	root.Insert([]string{"src", "main.go"})
	root.Insert([]string{"src", "nested", "lib.go"})
	root.Insert([]string{"README.md"})

	directories, files := root.Count()
	if directories != 2 {
		t.Errorf("expected 2 directories, got %d", directories)
	}
	if files != 3 {
		t.Errorf("expected 3 files, got %d", files)
	}
}
