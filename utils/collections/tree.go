package collections

import (
	"fmt"
	"strings"

	"github.com/tuannh982/expenditure-ledger/utils/math"
)

// Tree is a rooted hierarchy whose nodes are addressed by value. Lookups
// return the first depth-first match, so values must be unique for
// AddChild to attach under the intended node.
type Tree[V comparable] interface {
	AddChild(parent, child V) bool
	Contains(v V) bool
	Depth(v V) int
	Height() int
	Root() (V, bool)
	Parent(v V) (V, bool)
	Children(v V) List[V]
	Remove(v V) bool
	PreOrder() List[V]
	Size() int
	IsEmpty() bool
	Clear()
	Render() string
}

type treeNode[V comparable] struct {
	value    V
	parent   *treeNode[V]
	children List[*treeNode[V]]
}

type tree[V comparable] struct {
	root *treeNode[V]
	size int
}

type treeFrame[V comparable] struct {
	node  *treeNode[V]
	depth int
}

func NewTree[V comparable]() Tree[V] {
	return &tree[V]{}
}

func newTreeNode[V comparable](v V, parent *treeNode[V]) *treeNode[V] {
	return &treeNode[V]{
		value:    v,
		parent:   parent,
		children: NewLinkedList[*treeNode[V]](),
	}
}

// walk visits nodes depth-first in pre-order, children in insertion order,
// until f returns false.
func (t *tree[V]) walk(from *treeNode[V], f func(node *treeNode[V], depth int) bool) {
	if from == nil {
		return
	}
	pending := NewStack[treeFrame[V]]()
	pending.Push(treeFrame[V]{node: from})
	for !pending.IsEmpty() {
		frame, _ := pending.Pop()
		if !f(frame.node, frame.depth) {
			return
		}
		children := frame.node.children.ToSlice()
		for i := len(children) - 1; i >= 0; i-- {
			pending.Push(treeFrame[V]{node: children[i], depth: frame.depth + 1})
		}
	}
}

func (t *tree[V]) find(v V) (found *treeNode[V], depth int) {
	depth = -1
	t.walk(t.root, func(node *treeNode[V], d int) bool {
		if node.value == v {
			found, depth = node, d
			return false
		}
		return true
	})
	return found, depth
}

// AddChild appends child under the first node holding parent. On an empty
// tree parent becomes the root.
func (t *tree[V]) AddChild(parent, child V) bool {
	if t.root == nil {
		t.root = newTreeNode(parent, nil)
		t.size = 1
	}
	node, _ := t.find(parent)
	if node == nil {
		return false
	}
	node.children.Add(newTreeNode(child, node))
	t.size++
	return true
}

func (t *tree[V]) Contains(v V) bool {
	node, _ := t.find(v)
	return node != nil
}

func (t *tree[V]) Depth(v V) int {
	_, depth := t.find(v)
	return depth
}

func (t *tree[V]) Height() int {
	height := -1
	t.walk(t.root, func(_ *treeNode[V], depth int) bool {
		height = math.Max(height, depth)
		return true
	})
	return height
}

func (t *tree[V]) Root() (v V, ok bool) {
	if t.root == nil {
		return v, false
	}
	return t.root.value, true
}

func (t *tree[V]) Parent(v V) (p V, ok bool) {
	node, _ := t.find(v)
	if node == nil || node.parent == nil {
		return p, false
	}
	return node.parent.value, true
}

func (t *tree[V]) Children(v V) List[V] {
	ret := NewLinkedList[V]()
	node, _ := t.find(v)
	if node == nil {
		return ret
	}
	node.children.ForEach(func(_ int, child *treeNode[V]) bool {
		ret.Add(child.value)
		return true
	})
	return ret
}

// Remove detaches the subtree rooted at the first node holding v.
func (t *tree[V]) Remove(v V) bool {
	node, _ := t.find(v)
	if node == nil {
		return false
	}
	if node == t.root {
		t.Clear()
		return true
	}
	removed := 0
	t.walk(node, func(*treeNode[V], int) bool {
		removed++
		return true
	})
	Remove(node.parent.children, node)
	node.parent = nil
	t.size -= removed
	return true
}

func (t *tree[V]) PreOrder() List[V] {
	ret := NewLinkedList[V]()
	t.walk(t.root, func(node *treeNode[V], _ int) bool {
		ret.Add(node.value)
		return true
	})
	return ret
}

func (t *tree[V]) Size() int {
	return t.size
}

func (t *tree[V]) IsEmpty() bool {
	return t.root == nil
}

func (t *tree[V]) Clear() {
	t.root = nil
	t.size = 0
}

// Render prints one value per line, indented two spaces per level.
func (t *tree[V]) Render() string {
	var sb strings.Builder
	t.walk(t.root, func(node *treeNode[V], depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(fmt.Sprint(node.value))
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}

func (t *tree[V]) String() string {
	return t.Render()
}
