package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Node is one node of a translation tree: either a string leaf or a branch
// holding named children, never both.
type Node struct {
	leaf     string
	children map[string]*Node
	isLeaf   bool
}

// StringLeaf creates a leaf node holding a message template.
func StringLeaf(s string) *Node {
	return &Node{leaf: s, isLeaf: true}
}

// Branch creates a branch node from named children.
func Branch(children map[string]*Node) *Node {
	if children == nil {
		children = map[string]*Node{}
	}
	return &Node{children: children}
}

// EmptyTree returns a branch node with no children.
func EmptyTree() *Node {
	return Branch(nil)
}

// IsLeaf reports whether the node is a string leaf.
func (n *Node) IsLeaf() bool {
	return n != nil && n.isLeaf
}

// Value returns the leaf's message template. It reports false for branches.
func (n *Node) Value() (string, bool) {
	if n == nil || !n.isLeaf {
		return "", false
	}
	return n.leaf, true
}

// Child returns the named child of a branch node.
func (n *Node) Child(name string) (*Node, bool) {
	if n == nil || n.isLeaf {
		return nil, false
	}
	c, ok := n.children[name]
	return c, ok
}

// Lookup walks the tree along the given key segments and returns the leaf
// template at the end of the path. It reports false when any segment is
// missing or the path ends on a branch.
func (n *Node) Lookup(segments []string) (string, bool) {
	cur := n
	for _, seg := range segments {
		next, ok := cur.Child(seg)
		if !ok {
			return "", false
		}
		cur = next
	}
	return cur.Value()
}

// Len returns the number of leaves reachable from the node.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	if n.isLeaf {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += c.Len()
	}
	return total
}

// Keys returns the sorted child names of a branch node.
func (n *Node) Keys() []string {
	if n == nil || n.isLeaf {
		return nil
	}
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseTree decodes a JSON document into a translation tree. The document
// must be an object whose values are strings or nested objects; any other
// value type is rejected.
func ParseTree(data []byte) (*Node, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid translation document: %w", err)
	}
	node, err := parseNode(raw, "")
	if err != nil {
		return nil, err
	}
	if node.isLeaf {
		return nil, fmt.Errorf("translation document root must be an object")
	}
	return node, nil
}

func parseNode(raw json.RawMessage, path string) (*Node, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return StringLeaf(s), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("translation value at %q must be a string or object", path)
	}

	children := make(map[string]*Node, len(obj))
	for k, v := range obj {
		childPath := k
		if path != "" {
			childPath = path + "." + k
		}
		child, err := parseNode(v, childPath)
		if err != nil {
			return nil, err
		}
		children[k] = child
	}
	return Branch(children), nil
}

// TreeFromMap builds a translation tree from a decoded document, as produced
// by BSON unmarshaling. Non-string, non-map values are rejected.
func TreeFromMap(m map[string]interface{}) (*Node, error) {
	return mapNode(m, "")
}

func mapNode(m map[string]interface{}, path string) (*Node, error) {
	children := make(map[string]*Node, len(m))
	for k, v := range m {
		childPath := k
		if path != "" {
			childPath = path + "." + k
		}
		switch val := v.(type) {
		case string:
			children[k] = StringLeaf(val)
		case map[string]interface{}:
			child, err := mapNode(val, childPath)
			if err != nil {
				return nil, err
			}
			children[k] = child
		default:
			return nil, fmt.Errorf("translation value at %q must be a string or object", childPath)
		}
	}
	return Branch(children), nil
}

// ToMap converts the tree back to a nested map, suitable for JSON or BSON
// encoding.
func (n *Node) ToMap() map[string]interface{} {
	if n == nil || n.isLeaf {
		return nil
	}
	out := make(map[string]interface{}, len(n.children))
	for k, c := range n.children {
		if v, ok := c.Value(); ok {
			out[k] = v
		} else {
			out[k] = c.ToMap()
		}
	}
	return out
}

// MustTree parses a JSON document and panics on error. Intended for static,
// compiled-in tables only.
func MustTree(data string) *Node {
	n, err := ParseTree([]byte(data))
	if err != nil {
		panic(err)
	}
	return n
}
