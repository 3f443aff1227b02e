package Trees

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
	"gopkg.in/op/go-logging.v1"
)

var log = logging.MustGetLogger("Trees")

// LinkedBST is a pointer-linked binary search tree that allows repeated values.
// Values less than a node's value go into its left subtree, everything else,
// including equal values, goes into the right subtree. Remove can leave values
// equal to a node in its left subtree, so the left side holds values at most
// the node's value rather than strictly less.
// The tree doesn't balance itself. Insertion of a monotonic sequence produces
// a list-shaped tree of height n-1; IsBalanced reports on the shape and
// Rebalance rebuilds it, but neither is ever invoked implicitly.
// Nodes carry no parent pointers. Operations that need to know how a node was
// reached hold on to the address of the link that was followed instead.
// The zero value is an empty tree ready for use. It isn't safe for concurrent use.
type LinkedBST[T constraints.Ordered] struct {
	root *node[T]
	size uint
}

// New returns an empty LinkedBST.
func New[T constraints.Ordered]() *LinkedBST[T] {
	return new(LinkedBST[T])
}

// From returns a LinkedBST holding src, inserted one by one in the given order.
// Time: O(n*D)
func From[T constraints.Ordered](src ...T) *LinkedBST[T] {
	u := New[T]()
	for _, v := range src {
		u.Add(v)
	}
	return u
}

// Size [Collection.Size]
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() uint {
	return u.size
}

// IsEmpty [Collection.IsEmpty]
func (u *LinkedBST[T]) IsEmpty() bool {
	return u.root == nil
}

// Clear [Collection.Clear]
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Clear() {
	u.root, u.size = nil, 0
}

// Add [Collection.Add]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Add(v T) {
	t := &u.root
	for *t != nil {
		if v < (*t).v {
			t = &(*t).l
		} else {
			t = &(*t).r
		}
	}
	*t = &node[T]{v: v}
	u.size++
}

// lookup returns the link that points at the first node equal to v on the
// search path. *lookup(v)==nil when v isn't in u.
func (u *LinkedBST[T]) lookup(v T) **node[T] {
	t := &u.root
	for *t != nil && (*t).v != v {
		if v < (*t).v {
			t = &(*t).l
		} else {
			t = &(*t).r
		}
	}
	return t
}

// Find returns the stored value equal to v.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	if n := *u.lookup(v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Has [Collection.Has]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Has(v T) bool {
	return *u.lookup(v) != nil
}

// Remove [Collection.Remove]
// A node with two children takes the maximum value of its left subtree, and
// the node that held that maximum is spliced out in the same descent. It has
// no right child, so its incoming link is pointed at its left child. Other
// copies of the maximum stay in the left subtree, equal to the new value.
// Any other node is replaced by its only child, or nil.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, error) {
	t := u.lookup(v)
	cur := *t
	if cur == nil {
		return *new(T), KeyError[T]{v}
	}
	removed := cur.v
	if cur.l != nil && cur.r != nil {
		m := &cur.l
		for (*m).r != nil {
			m = &(*m).r
		}
		cur.v = (*m).v
		*m = (*m).l
	} else if cur.l == nil {
		*t = cur.r
	} else {
		*t = cur.l
	}
	u.size--
	return removed, nil
}

// Replace the stored value equal to v with nv, returning the value that was
// replaced. nv isn't checked against the order of the tree; a value that
// doesn't fit at the position of v leaves u corrupt. Use ReplaceChecked when
// that can't be ruled out.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	if n := *u.lookup(v); n != nil {
		old := n.v
		n.v = nv
		return old, true
	}
	return *new(T), false
}

// ReplaceChecked is Replace that refuses values that would break the order.
// nv must be at least the value of every ancestor whose right subtree holds
// v and at most the value of every ancestor whose left subtree holds v. It
// must also be at least everything in v's left subtree and at most
// everything in v's right subtree. Returns a KeyError if v isn't present and an OrderError
// if nv doesn't fit; u is unchanged in both cases.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) ReplaceChecked(v, nv T) (T, error) {
	var lo, hi *T // lo <= nv <= hi
	cur := u.root
	for cur != nil && cur.v != v {
		if v < cur.v {
			hi = &cur.v
			cur = cur.l
		} else {
			lo = &cur.v
			cur = cur.r
		}
	}
	if cur == nil {
		return *new(T), KeyError[T]{v}
	}
	ok := (lo == nil || *lo <= nv) && (hi == nil || nv <= *hi)
	if ok && cur.l != nil {
		m := cur.l
		for m.r != nil {
			m = m.r
		}
		ok = m.v <= nv
	}
	if ok && cur.r != nil {
		m := cur.r
		for m.l != nil {
			m = m.l
		}
		ok = nv <= m.v
	}
	if !ok {
		return *new(T), OrderError[T]{v, nv}
	}
	old := cur.v
	cur.v = nv
	return old, nil
}

// Minimum [OrderedCollection.Minimum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [OrderedCollection.Maximum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [OrderedCollection.Predecessor]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [OrderedCollection.Successor]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Height is the number of edges on the longest path from the root down to a
// leaf. Both an empty tree and a single leaf have height 0.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Height() uint {
	if u.root == nil {
		return 0
	}
	var h uint
	st := []frame[T]{{u.root, 0}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, f.d)
		if f.n.l != nil {
			st = append(st, frame[T]{f.n.l, f.d + 1})
		}
		if f.n.r != nil {
			st = append(st, frame[T]{f.n.r, f.d + 1})
		}
	}
	return h
}

// IsBalanced reports whether Height() < 2*log2(Size()+1)-1. It's a rough
// estimate of the shape only; an empty tree is never balanced under it.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) IsBalanced() bool {
	return float64(u.Height()) < 2*math.Log2(float64(u.size+1))-1
}

// RangeFind returns all values in [low, high] in ascending order. It filters
// an in-order walk, so it's O(n) rather than O(D+k).
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) RangeFind(low, high T) []T {
	var vs []T
	u.Range(func(v T) bool {
		if v > high {
			return false
		}
		if low <= v {
			vs = append(vs, v)
		}
		return true
	})
	return vs
}

// Rebalance rebuilds u from its own values so that its height is close to
// log2(Size()+1). The values are taken in ascending order and re-added by
// rebuild.
// Time: O(n*log n); Space: O(n)
func (u *LinkedBST[T]) Rebalance() {
	if !log.IsEnabledFor(logging.DEBUG) {
		u.rebuild(u.drain())
		return
	}
	before := u.Height()
	u.rebuild(u.drain())
	log.Debug("Rebalanced %d values, height %d -> %d", u.size, before, u.Height())
}

// drain empties u and returns its values in ascending order.
func (u *LinkedBST[T]) drain() []T {
	vs := u.InOrder()
	u.Clear()
	return vs
}

// rebuild adds the middle element of s, then splits what is left of s at its
// own middle and rebuilds the lower part before the upper one. Taking the
// middle out before splitting puts a lower half one element shorter than the
// upper half whenever len(s) is even, which fixes the shape of the result.
// s is consumed. Recursive; the depth is O(log n).
func (u *LinkedBST[T]) rebuild(s []T) {
	if len(s) == 0 {
		return
	}
	mid := len(s) >> 1
	u.Add(s[mid])
	s = slices.Delete(s, mid, mid+1)
	half := len(s) >> 1
	u.rebuild(s[:half])
	u.rebuild(s[half:])
}

// Corrupt returns whether some value is out of order relative to one of its
// ancestors, or Size() disagrees with the number of nodes. A value may equal
// an ancestor on either side, since Remove lifts one copy of a repeated
// maximum above the others. Add, Remove and Rebalance never make it true;
// Replace can, by storing a value that doesn't fit its position.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Corrupt() bool {
	type bounded struct {
		n      *node[T]
		lo, hi *T
	}
	var cnt uint
	st := []bounded{{n: u.root}}
	for len(st) > 0 {
		b := st[len(st)-1]
		st = st[:len(st)-1]
		if b.n == nil {
			continue
		}
		if (b.lo != nil && b.n.v < *b.lo) || (b.hi != nil && *b.hi < b.n.v) {
			return true
		}
		cnt++
		st = append(st, bounded{b.n.l, b.lo, &b.n.v}, bounded{b.n.r, &b.n.v, b.hi})
	}
	return cnt != u.size
}

// String draws u rotated 90 degrees counterclockwise: one value per line,
// indented by "| " once per level, the right subtree above its parent and
// the left subtree below.
func (u *LinkedBST[T]) String() string {
	var sb strings.Builder
	var st []frame[T]
	for cur, d := u.root, uint(0); cur != nil || len(st) > 0; {
		for ; cur != nil; cur, d = cur.r, d+1 {
			st = append(st, frame[T]{cur, d})
		}
		f := st[len(st)-1]
		st = st[:len(st)-1]
		sb.WriteString(strings.Repeat("| ", int(f.d)))
		fmt.Fprintln(&sb, f.n.v)
		cur, d = f.n.l, f.d+1
	}
	return sb.String()
}
