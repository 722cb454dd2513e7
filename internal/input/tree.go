package input

import (
	"fmt"

	"github.com/ja-he/annales/internal/control/action"
)

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	g
//	+-g     -> first            "gg" -> first
//	G       -> last             "G"  -> last
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input or advanced within a sequence.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether the tree is in the middle of a sequence.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// ConstructInputTree constructs a Tree for the given mappings of input
// sequence strings to actions.
// It fails on invalid keyspecs and on sequences that are a prefix of another
// sequence, since the longer one could never be reached.
func ConstructInputTree(spec map[Keyspec]action.Action) (*Tree, error) {
	root := NewNode()

	for mapping, a := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting keyspec '%s' (%w)", mapping, err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec for '%s'", a.Explain())
		}

		current := root
		for i, key := range sequence {
			last := i == len(sequence)-1
			next, ok := current.Children[key]
			switch {
			case !ok && last:
				next = NewLeaf(a)
			case !ok:
				next = NewNode()
			case next.Action != nil || last:
				return nil, fmt.Errorf("keyspec '%s' conflicts with another mapping", mapping)
			}
			current.Children[key] = next
			current = next
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
