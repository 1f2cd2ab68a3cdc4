// Package gedcom parses GEDCOM genealogy files into a tree of tagged
// nodes and provides the typed accessors the import pipeline reads the
// tree through.
package gedcom

// Node is one parsed GEDCOM line with its subordinate lines attached as
// children. A node's meaning depends on its tag and its position under a
// parent (DATE under BIRT is a birth date, DATE under MARR a marriage
// date), so consumers should navigate with the accessors below rather
// than inspecting raw shape.
type Node struct {
	Tag      string
	Value    string
	XRefID   string // cross-reference id for top-level records, e.g. "@I1@"
	Children []*Node
}

// FirstChildWithTag returns the first direct child carrying the tag, or
// nil when none exists.
func (n *Node) FirstChildWithTag(tag string) *Node {
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// ChildrenWithTag returns all direct children carrying the tag, in file
// order.
func (n *Node) ChildrenWithTag(tag string) []*Node {
	var matched []*Node
	for _, child := range n.Children {
		if child.Tag == tag {
			matched = append(matched, child)
		}
	}
	return matched
}

// ChildValue returns the value of the first direct child carrying the
// tag, or the empty string when no such child exists.
func (n *Node) ChildValue(tag string) string {
	if child := n.FirstChildWithTag(tag); child != nil {
		return child.Value
	}
	return ""
}

// HasChild reports whether a direct child with the tag exists.
func (n *Node) HasChild(tag string) bool {
	return n.FirstChildWithTag(tag) != nil
}
