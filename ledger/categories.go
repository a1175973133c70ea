package ledger

import (
	"fmt"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/expenditure-ledger/utils/collections"
	"github.com/tuannh982/expenditure-ledger/utils/search"
)

// RootCategory heads the category hierarchy. It is not a category itself.
const RootCategory = "All"

// CategoryService keeps unique category names, their sorted order, and a
// parent/child hierarchy under RootCategory.
type CategoryService struct {
	names     collections.Set[string]
	ordered   collections.BinarySearchTree[string]
	hierarchy collections.Tree[string]
	log       *log.Entry
}

func NewCategoryService(logger *log.Entry) *CategoryService {
	return &CategoryService{
		names:     collections.NewHashSet[string](),
		ordered:   collections.NewBinarySearchTree[string](),
		hierarchy: collections.NewTree[string](),
		log:       logger.WithField("service", "categories"),
	}
}

// Add registers name under parent, or directly under RootCategory when
// parent is empty.
func (s *CategoryService) Add(name, parent string) error {
	name = strings.TrimSpace(name)
	if name == "" || name == RootCategory {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, name)
	}
	if s.names.Contains(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}
	parent = strings.TrimSpace(parent)
	if parent == "" {
		parent = RootCategory
	} else if !s.names.Contains(parent) {
		return fmt.Errorf("%w: parent %s", ErrUnknownCategory, parent)
	}
	if _, err := s.names.Add(name); err != nil {
		return err
	}
	s.ordered.Insert(name)
	s.hierarchy.AddChild(parent, name)
	s.log.WithFields(log.Fields{"category": name, "parent": parent}).Debug("category added")
	return nil
}

// Remove deletes name together with all of its subcategories.
func (s *CategoryService) Remove(name string) error {
	if !s.names.Contains(name) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}
	pending := collections.NewStack[string]()
	pending.Push(name)
	for !pending.IsEmpty() {
		current, _ := pending.Pop()
		s.names.Remove(current)
		s.ordered.Delete(current)
		s.hierarchy.Children(current).ForEach(func(_ int, child string) bool {
			pending.Push(child)
			return true
		})
	}
	s.hierarchy.Remove(name)
	s.log.WithField("category", name).Debug("category removed")
	return nil
}

func (s *CategoryService) Exists(name string) bool {
	return s.names.Contains(name)
}

func (s *CategoryService) Validate(name string) error {
	if !s.Exists(name) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}
	return nil
}

func (s *CategoryService) Count() int {
	return s.names.Size()
}

func (s *CategoryService) Sorted(ascending bool) collections.List[string] {
	inOrder := s.ordered.InOrder()
	if ascending {
		return inOrder
	}
	ret := collections.NewLinkedList[string]()
	for _, name := range inOrder.ToSlice() {
		_ = ret.Insert(0, name)
	}
	return ret
}

func (s *CategoryService) snapshot(key func(string) string) *search.Snapshot[string, string] {
	return search.NewSnapshot(collections.ListOf(s.names.Entries()...), key)
}

// ByPrefix matches case-insensitively.
func (s *CategoryService) ByPrefix(prefix string) collections.List[string] {
	return search.Prefix(s.snapshot(strings.ToLower), strings.ToLower(prefix))
}

// ByFirstLetter lists categories whose first letter lies in [from, to],
// ignoring case.
func (s *CategoryService) ByFirstLetter(from, to rune) collections.List[string] {
	firstLetter := func(name string) string {
		for _, r := range name {
			return string(unicode.ToLower(r))
		}
		return ""
	}
	return s.snapshot(firstLetter).Range(string(unicode.ToLower(from)), string(unicode.ToLower(to)))
}

func (s *CategoryService) Subcategories(name string) collections.List[string] {
	return s.hierarchy.Children(name)
}

// Level is the depth below RootCategory: 1 for top-level categories, -1 if
// unknown.
func (s *CategoryService) Level(name string) int {
	if !s.names.Contains(name) {
		return -1
	}
	return s.hierarchy.Depth(name)
}

func (s *CategoryService) Hierarchy() string {
	return s.hierarchy.Render()
}
