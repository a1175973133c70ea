package collections

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BinarySearchTree keeps unique ordered values without rebalancing, so its
// height degrades to O(n) for sorted insert orders. Every walk uses an
// explicit Stack or Queue, never the goroutine stack.
type BinarySearchTree[V constraints.Ordered] interface {
	Insert(v V) bool
	Search(v V) bool
	Delete(v V) bool
	Min() (V, error)
	Max() (V, error)
	Height() int
	Size() int
	IsEmpty() bool
	Clear()
	InOrder() List[V]
	PreOrder() List[V]
	PostOrder() List[V]
}

type bstNode[V constraints.Ordered] struct {
	value V
	left  *bstNode[V]
	right *bstNode[V]
}

type bst[V constraints.Ordered] struct {
	root *bstNode[V]
	size int
}

func NewBinarySearchTree[V constraints.Ordered]() BinarySearchTree[V] {
	return &bst[V]{}
}

// link returns the child pointer that holds v, or the nil slot where v
// would be attached.
func (t *bst[V]) link(v V) **bstNode[V] {
	link := &t.root
	for *link != nil {
		node := *link
		if v < node.value {
			link = &node.left
		} else if v > node.value {
			link = &node.right
		} else {
			break
		}
	}
	return link
}

// Insert reports whether v was added; values already present are ignored.
func (t *bst[V]) Insert(v V) bool {
	link := t.link(v)
	if *link != nil {
		return false
	}
	*link = &bstNode[V]{value: v}
	t.size++
	return true
}

func (t *bst[V]) Search(v V) bool {
	return *t.link(v) != nil
}

func (t *bst[V]) Delete(v V) bool {
	link := t.link(v)
	node := *link
	if node == nil {
		return false
	}
	switch {
	case node.left == nil:
		*link = node.right
	case node.right == nil:
		*link = node.left
	default:
		// replace with the in-order successor, then unlink the successor
		successor := &node.right
		for (*successor).left != nil {
			successor = &(*successor).left
		}
		node.value = (*successor).value
		*successor = (*successor).right
	}
	t.size--
	return true
}

func (t *bst[V]) Min() (v V, err error) {
	if t.root == nil {
		return v, fmt.Errorf("min: %w", ErrEmptyContainer)
	}
	node := t.root
	for node.left != nil {
		node = node.left
	}
	return node.value, nil
}

func (t *bst[V]) Max() (v V, err error) {
	if t.root == nil {
		return v, fmt.Errorf("max: %w", ErrEmptyContainer)
	}
	node := t.root
	for node.right != nil {
		node = node.right
	}
	return node.value, nil
}

// Height counts edges on the longest root-to-leaf path: -1 when empty.
func (t *bst[V]) Height() int {
	if t.root == nil {
		return -1
	}
	height := -1
	level := NewQueue[*bstNode[V]]()
	level.Enqueue(t.root)
	for !level.IsEmpty() {
		height++
		for n := level.Size(); n > 0; n-- {
			node, _ := level.Dequeue()
			if node.left != nil {
				level.Enqueue(node.left)
			}
			if node.right != nil {
				level.Enqueue(node.right)
			}
		}
	}
	return height
}

func (t *bst[V]) Size() int {
	return t.size
}

func (t *bst[V]) IsEmpty() bool {
	return t.root == nil
}

func (t *bst[V]) Clear() {
	t.root = nil
	t.size = 0
}

func (t *bst[V]) InOrder() List[V] {
	ret := NewLinkedList[V]()
	pending := NewStack[*bstNode[V]]()
	node := t.root
	for node != nil || !pending.IsEmpty() {
		for node != nil {
			pending.Push(node)
			node = node.left
		}
		node, _ = pending.Pop()
		ret.Add(node.value)
		node = node.right
	}
	return ret
}

func (t *bst[V]) PreOrder() List[V] {
	ret := NewLinkedList[V]()
	if t.root == nil {
		return ret
	}
	pending := NewStack[*bstNode[V]]()
	pending.Push(t.root)
	for !pending.IsEmpty() {
		node, _ := pending.Pop()
		ret.Add(node.value)
		if node.right != nil {
			pending.Push(node.right)
		}
		if node.left != nil {
			pending.Push(node.left)
		}
	}
	return ret
}

func (t *bst[V]) PostOrder() List[V] {
	ret := NewLinkedList[V]()
	if t.root == nil {
		return ret
	}
	// node-right-left order reversed is left-right-node
	pending := NewStack[*bstNode[V]]()
	reversed := NewStack[V]()
	pending.Push(t.root)
	for !pending.IsEmpty() {
		node, _ := pending.Pop()
		reversed.Push(node.value)
		if node.left != nil {
			pending.Push(node.left)
		}
		if node.right != nil {
			pending.Push(node.right)
		}
	}
	for !reversed.IsEmpty() {
		v, _ := reversed.Pop()
		ret.Add(v)
	}
	return ret
}

func (t *bst[V]) String() string {
	return fmt.Sprint(t.InOrder())
}
