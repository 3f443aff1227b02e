package Trees

import (
	"slices"

	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Range calls f on every value in ascending order until f returns false.
// Stack based, so a list-shaped tree doesn't deepen the goroutine stack.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Range(f func(T) bool) {
	var st []*node[T]
	for cur := u.root; cur != nil || len(st) > 0; {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if !f(cur.v) {
			return
		}
		cur = cur.r
	}
}

// InOrder [OrderedCollection.InOrder]
// Values are collected when InOrder is called; later changes to u aren't reflected.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) InOrder() []T {
	vs := make([]T, 0, u.size)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// PreOrder returns the values as visited parent first, then the left subtree,
// then the right subtree.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) PreOrder() []T {
	vs := make([]T, 0, u.size)
	if u.root == nil {
		return vs
	}
	st := []*node[T]{u.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
	return vs
}

// PostOrder returns the values as visited left subtree first, then the right
// subtree, then the parent. It is built as the reverse of a parent, right,
// left walk.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) PostOrder() []T {
	vs := make([]T, 0, u.size)
	if u.root == nil {
		return vs
	}
	st := []*node[T]{u.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		if cur.l != nil {
			st = append(st, cur.l)
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
	}
	slices.Reverse(vs)
	return vs
}

// Iter [Collection.Iter]
// Gives the same sequence as PreOrder without collecting it first. Right
// children are pushed before left ones so the left subtree comes out first.
// Time: f(): O(1) at each call; Space: O(D)
func (u *LinkedBST[T]) Iter() func() (T, bool) {
	st := linkedliststack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (T, bool) {
		top, ok := st.Pop()
		if !ok {
			return *new(T), false
		}
		cur := top.(*node[T])
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
		return cur.v, true
	}
}

// LevelOrder isn't implemented. The returned function is always exhausted.
func (u *LinkedBST[T]) LevelOrder() func() (T, bool) {
	return func() (T, bool) {
		return *new(T), false
	}
}
