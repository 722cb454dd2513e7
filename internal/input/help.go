package input

import "sort"

// Help maps key sequences (in configuration notation) to explanations.
type Help = map[string]string

// GetHelp returns the help for all sequences of the tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// GetHelp returns the help for all sequences below the node.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.Action != nil {
		result[""] = n.Action.Explain()
		return result
	}
	for k, c := range n.Children {
		for partialCombo, explanation := range c.GetHelp() {
			result[ToConfigIdentifierString(k)+partialCombo] = explanation
		}
	}
	return result
}

// HelpEntry is a single line of help.
type HelpEntry struct {
	Keys        string
	Explanation string
}

// SortedHelp returns the help entries ordered by explanation, then keys.
func SortedHelp(h Help) []HelpEntry {
	entries := make([]HelpEntry, 0, len(h))
	for keys, explanation := range h {
		entries = append(entries, HelpEntry{Keys: keys, Explanation: explanation})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Explanation != entries[j].Explanation {
			return entries[i].Explanation < entries[j].Explanation
		}
		return entries[i].Keys < entries[j].Keys
	})
	return entries
}
