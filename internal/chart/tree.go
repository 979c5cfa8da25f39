package chart

import (
	"errors"
	"fmt"

	"github.com/contalibre-dev/contalibre/internal/model"
)

// ErrMalformed marks a chart of accounts whose parent pointers do not form a
// tree (cycles, orphans, parents pointing at missing classes).
var ErrMalformed = errors.New("malformed chart of accounts")

// Class is an in-memory chart node: one AccountClass plus its directly owned
// accounts and its child classes, both in chart-defined order.
type Class struct {
	model.AccountClass

	Accounts []model.Account `json:"accounts,omitempty"`
	Children []*Class        `json:"children,omitempty"`
}

// Tree is the reconstructed chart of accounts for one company. It is built
// once from flat relational rows (parent pointers) and indexed, so report
// recursion never goes back to the store.
type Tree struct {
	Roots []*Class

	byID map[uint]*Class
}

// BuildTree assembles a Tree from flat class and account rows. Input order is
// preserved: children and accounts appear under their parent in the order the
// slices provide them (callers load them in chart order). Classes whose
// parent chain never reaches a root indicate a cycle or a dangling parent and
// yield ErrMalformed.
func BuildTree(classes []model.AccountClass, accounts []model.Account) (*Tree, error) {
	t := &Tree{byID: make(map[uint]*Class, len(classes))}

	for i := range classes {
		c := classes[i]
		if _, dup := t.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate class id %d", ErrMalformed, c.ID)
		}
		t.byID[c.ID] = &Class{AccountClass: c}
	}

	for i := range classes {
		node := t.byID[classes[i].ID]
		if node.ParentID == nil {
			t.Roots = append(t.Roots, node)
			continue
		}
		parent, ok := t.byID[*node.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: class %q references missing parent %d", ErrMalformed, node.Code, *node.ParentID)
		}
		if parent == node {
			return nil, fmt.Errorf("%w: class %q is its own parent", ErrMalformed, node.Code)
		}
		parent.Children = append(parent.Children, node)
	}

	for i := range accounts {
		a := accounts[i]
		class, ok := t.byID[a.ClassID]
		if !ok {
			return nil, fmt.Errorf("%w: account %q references missing class %d", ErrMalformed, a.Code, a.ClassID)
		}
		class.Accounts = append(class.Accounts, a)
	}

	// Every class must be reachable from a root; anything left over sits on
	// a cycle of parent pointers.
	reachable := 0
	stack := append([]*Class(nil), t.Roots...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reachable++
		stack = append(stack, n.Children...)
	}
	if reachable != len(classes) {
		return nil, fmt.Errorf("%w: %d of %d classes unreachable from roots", ErrMalformed, len(classes)-reachable, len(classes))
	}

	return t, nil
}

// Class returns the node for a class ID.
func (t *Tree) Class(id uint) (*Class, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// RootsOf returns the roots whose code family is in families, preserving
// tree order.
func (t *Tree) RootsOf(families []model.Family) []*Class {
	want := make(map[model.Family]bool, len(families))
	for _, f := range families {
		want[f] = true
	}
	var roots []*Class
	for _, r := range t.Roots {
		if want[r.Family()] {
			roots = append(roots, r)
		}
	}
	return roots
}
