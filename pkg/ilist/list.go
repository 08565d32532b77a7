// Copyright 2025 The Intrusive List Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ilist

import (
	"unsafe"
)

// List is an intrusive list of *T threaded through the Member[Tag] field
// selected at construction. The list owns only its sentinel: members are
// caller-owned hosts, and no operation allocates.
//
// Lists must be created with New and must not be copied. Moving a list is
// MoveFrom.
//
// To iterate over a list (where l is a *List):
//
//	for v := range l.All() {
//		// do something with v.
//	}
type List[T any, Tag any] struct {
	noCopy noCopy

	// sentinel anchors the ring. Its forward neighbor is the first member
	// and its backward neighbor the last; it is never a member itself.
	sentinel Member[Tag]

	// offset is the byte offset of the threaded Member field within T.
	offset uintptr
}

// New returns an empty list threaded through the Member field of T that
// member selects:
//
//	type conn struct {
//		idle ilist.Member[ilist.DefaultTag]
//	}
//
//	idleConns := ilist.New(func(c *conn) *ilist.Member[ilist.DefaultTag] { return &c.idle })
//
// The accessor is consulted once, against a zero T, to locate the field;
// it is the construction-time form of the contract that T embeds a
// Member[Tag]. It must return a field of its argument.
func New[T any, Tag any](member func(*T) *Member[Tag]) *List[T, Tag] {
	var probe T
	m := member(&probe)
	off := uintptr(unsafe.Pointer(m)) - uintptr(unsafe.Pointer(&probe))
	if off+unsafe.Sizeof(*m) > unsafe.Sizeof(probe) {
		panic("ilist: member accessor must select a field of T")
	}
	l := &List[T, Tag]{offset: off}
	l.sentinel.lazyInit()
	return l
}

// hostOf maps a ring node back to its host. Undefined for the sentinel.
//
//go:nosplit
func (l *List[T, Tag]) hostOf(n *node) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(n), -int(l.offset)))
}

// nodeOf maps a host to its threaded link record.
//
//go:nosplit
func (l *List[T, Tag]) nodeOf(v *T) *node {
	return (*node)(unsafe.Add(unsafe.Pointer(v), l.offset))
}

// Empty returns true iff the list has no members.
//
//go:nosplit
func (l *List[T, Tag]) Empty() bool {
	return !l.sentinel.linked()
}

// Len returns the number of members in the list.
//
// NOTE: This is an O(n) operation. The list keeps no counter so that every
// mutating operation stays O(1).
func (l *List[T, Tag]) Len() (count int) {
	for n := l.sentinel.next; n != &l.sentinel.node; n = n.next {
		count++
	}
	return count
}

// Front returns the first member of the list or nil.
//
//go:nosplit
func (l *List[T, Tag]) Front() *T {
	if !l.sentinel.linked() {
		return nil
	}
	return l.hostOf(l.sentinel.next)
}

// Back returns the last member of the list or nil.
//
//go:nosplit
func (l *List[T, Tag]) Back() *T {
	if !l.sentinel.linked() {
		return nil
	}
	return l.hostOf(l.sentinel.prev)
}

// PushFront inserts v at the front of the list, unlinking it first from
// wherever it currently is.
func (l *List[T, Tag]) PushFront(v *T) {
	l.Insert(l.Begin(), v)
}

// PushBack inserts v at the back of the list, unlinking it first from
// wherever it currently is.
func (l *List[T, Tag]) PushBack(v *T) {
	l.Insert(l.End(), v)
}

// PopFront unlinks and returns the first member, or nil if the list is
// empty.
func (l *List[T, Tag]) PopFront() *T {
	if !l.sentinel.linked() {
		return nil
	}
	n := l.sentinel.next
	n.unlink()
	return l.hostOf(n)
}

// PopBack unlinks and returns the last member, or nil if the list is
// empty.
func (l *List[T, Tag]) PopBack() *T {
	if !l.sentinel.linked() {
		return nil
	}
	n := l.sentinel.prev
	n.unlink()
	return l.hostOf(n)
}

// Remove unlinks v from the list. A no-op if v is not linked.
func (l *List[T, Tag]) Remove(v *T) {
	l.nodeOf(v).unlink()
	l.checkRing()
}

// Clear detaches the sentinel from the ring in O(1), leaving the list
// empty. The former members are not visited: they stay linked to each
// other in a ring no list reaches, and each still reports Linked() == true
// (a sole member ends self-looped instead) until its next insertion, which
// unlinks it from the detached ring first. Such a ring is harmless for
// reuse but must not be iterated directly.
//
// Dropping a non-empty List without clearing it leaves its members in the
// same detached-ring state.
func (l *List[T, Tag]) Clear() {
	l.sentinel.unlink()
}

// MoveFrom transfers other's entire ring to l in O(1), leaving other
// empty. Members previously in l are left behind as a detached ring, the
// same state Clear leaves them in. l.MoveFrom(l) is a no-op.
func (l *List[T, Tag]) MoveFrom(other *List[T, Tag]) {
	l.sentinel.MoveFrom(&other.sentinel)
	l.checkRing()
}

// Begin returns an iterator at the first member. On an empty list it
// equals End().
//
//go:nosplit
func (l *List[T, Tag]) Begin() Iterator[T, Tag] {
	return Iterator[T, Tag]{n: l.sentinel.next, offset: l.offset}
}

// End returns the past-the-end iterator, positioned at the sentinel. It
// must not be dereferenced.
//
//go:nosplit
func (l *List[T, Tag]) End() Iterator[T, Tag] {
	return Iterator[T, Tag]{n: &l.sentinel.node, offset: l.offset}
}

// IteratorOf returns an iterator positioned at v. v must be a member of l.
//
//go:nosplit
func (l *List[T, Tag]) IteratorOf(v *T) Iterator[T, Tag] {
	return Iterator[T, Tag]{n: l.nodeOf(v), offset: l.offset}
}

// Insert places v immediately before pos, unlinking v first from wherever
// it currently is (another list, a detached ring, or nowhere). If v is
// already the member at pos, Insert is a no-op. Returns an iterator at v.
func (l *List[T, Tag]) Insert(pos Iterator[T, Tag], v *T) Iterator[T, Tag] {
	n := l.nodeOf(v)
	if pos.n == n {
		return pos
	}
	n.unlink()
	link(pos.n.prev, n)
	link(n, pos.n)
	l.checkRing()
	return Iterator[T, Tag]{n: n, offset: l.offset}
}

// InsertBefore inserts v immediately before mark. mark must be a member of
// l.
func (l *List[T, Tag]) InsertBefore(mark, v *T) {
	l.Insert(l.IteratorOf(mark), v)
}

// InsertAfter inserts v immediately after mark. mark must be a member of
// l.
func (l *List[T, Tag]) InsertAfter(mark, v *T) {
	l.Insert(l.IteratorOf(mark).Next(), v)
}

// Erase unlinks the member at pos and returns an iterator at its
// successor. Erasing End() is undefined.
func (l *List[T, Tag]) Erase(pos Iterator[T, Tag]) Iterator[T, Tag] {
	if checkInvariants && pos.n == &l.sentinel.node {
		panic("ilist: Erase of End()")
	}
	next := pos.n.next
	pos.n.unlink()
	l.checkRing()
	return Iterator[T, Tag]{n: next, offset: l.offset}
}

// Splice moves the half-open range [first, last) to immediately before
// pos, in O(1) regardless of the range's length: the range's bracketing
// neighbors are joined to each other and the range is stitched between
// pos's predecessor and pos. A no-op if the range is empty.
//
// The range may come from l itself or from another list; pos must not lie
// inside [first, last). The other argument only documents where the range
// came from: correctness depends on the iterators alone, and any reachable
// range of linked nodes may be spliced.
//
// Iterators into the moved range stay valid and observe their new
// neighbors.
func (l *List[T, Tag]) Splice(pos Iterator[T, Tag], other *List[T, Tag], first, last Iterator[T, Tag]) {
	if first == last {
		return
	}
	lastIncl := last.n.prev
	beforePos := pos.n.prev
	beforeFirst := first.n.prev
	afterLast := lastIncl.next
	link(beforePos, first.n)
	link(lastIncl, pos.n)
	link(beforeFirst, afterLast)
	l.checkRing()
}

// PushBackList moves all of other's members to the back of l in O(1),
// leaving other empty. l and other must be distinct lists.
func (l *List[T, Tag]) PushBackList(other *List[T, Tag]) {
	l.Splice(l.End(), other, other.Begin(), other.End())
}

// PushFrontList moves all of other's members to the front of l in O(1),
// leaving other empty. l and other must be distinct lists.
func (l *List[T, Tag]) PushFrontList(other *List[T, Tag]) {
	l.Splice(l.Begin(), other, other.Begin(), other.End())
}

// checkRing validates ring closure and prev/next inversion when the
// ilist_checkinvariants build tag is set. It compiles to nothing
// otherwise.
func (l *List[T, Tag]) checkRing() {
	if !checkInvariants {
		return
	}
	n := &l.sentinel.node
	for {
		if n.next == nil || n.next.prev != n {
			panic("ilist: corrupted ring")
		}
		n = n.next
		if n == &l.sentinel.node {
			return
		}
	}
}
