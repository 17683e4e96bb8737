package entities

import (
	"sort"
	"strings"
)

// CatalogNode is one level of the price-book category tree. Children are
// keyed by category segment; Items holds the entries filed directly at this
// level.
type CatalogNode struct {
	Children map[string]*CatalogNode `json:"children"`
	Items    []PriceBookItem         `json:"items"`
}

func NewCatalogNode() *CatalogNode {
	return &CatalogNode{Children: map[string]*CatalogNode{}}
}

// SplitCategoryPath splits a ">"-delimited category path into trimmed,
// non-empty segments. "Handyman > Installation" => ["Handyman","Installation"].
func SplitCategoryPath(category string) []string {
	parts := strings.Split(category, ">")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildCatalogTree files every item under the node addressed by its category
// path, creating intermediate nodes as needed. Items at each leaf are sorted
// by name so sibling ordering is stable.
func BuildCatalogTree(items []PriceBookItem) *CatalogNode {
	root := NewCatalogNode()
	for _, it := range items {
		node := root
		for _, seg := range SplitCategoryPath(it.Category) {
			child, ok := node.Children[seg]
			if !ok {
				child = NewCatalogNode()
				node.Children[seg] = child
			}
			node = child
		}
		node.Items = append(node.Items, it)
	}
	root.sortRecursive()
	return root
}

func (n *CatalogNode) sortRecursive() {
	sort.Slice(n.Items, func(i, j int) bool {
		return n.Items[i].Name < n.Items[j].Name
	})
	for _, child := range n.Children {
		child.sortRecursive()
	}
}

// Navigate walks the tree along path. A missing segment degrades to an empty
// node rather than an error: a stale breadcrumb in the dashboard shows "no
// items" instead of failing.
func (n *CatalogNode) Navigate(path []string) *CatalogNode {
	node := n
	for _, seg := range path {
		child, ok := node.Children[seg]
		if !ok {
			return NewCatalogNode()
		}
		node = child
	}
	return node
}

// ChildNames returns the node's category names in alphabetical order.
func (n *CatalogNode) ChildNames() []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
