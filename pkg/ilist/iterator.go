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
	"iter"
	"unsafe"
)

// Iterator is a non-owning cursor over the members of a List. Iterators
// come from Begin, End, IteratorOf, Insert and Erase; the zero value is
// not valid. Two iterators are equal (==) iff they reference the same
// node; equality is identity, never host value.
//
// An iterator stays valid for as long as the member it references stays
// linked and alive. Inserts, erases and splices elsewhere in the same or
// another list never invalidate it; only unlinking, moving or destroying
// its own member does.
type Iterator[T any, Tag any] struct {
	n      *node
	offset uintptr
}

// Next returns an iterator at the following position. Advancing past
// End() wraps to Begin().
//
//go:nosplit
func (it Iterator[T, Tag]) Next() Iterator[T, Tag] {
	return Iterator[T, Tag]{n: it.n.next, offset: it.offset}
}

// Prev returns an iterator at the preceding position. Stepping back from
// Begin() wraps to End().
//
//go:nosplit
func (it Iterator[T, Tag]) Prev() Iterator[T, Tag] {
	return Iterator[T, Tag]{n: it.n.prev, offset: it.offset}
}

// Get returns the member at the iterator's position. Get on End() is
// undefined.
//
//go:nosplit
func (it Iterator[T, Tag]) Get() *T {
	return (*T)(unsafe.Add(unsafe.Pointer(it.n), -int(it.offset)))
}

// All returns a forward range over the members, first to last. The member
// yielded on the current step may be unlinked (or re-inserted elsewhere)
// without disturbing the traversal; any other mutation during the range is
// undefined.
func (l *List[T, Tag]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		end := &l.sentinel.node
		for n := l.sentinel.next; n != end; {
			next := n.next
			if !yield(l.hostOf(n)) {
				return
			}
			n = next
		}
	}
}

// Backward returns a reverse range over the members, last to first. The
// member yielded on the current step may be unlinked without disturbing
// the traversal.
func (l *List[T, Tag]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		end := &l.sentinel.node
		for n := l.sentinel.prev; n != end; {
			prev := n.prev
			if !yield(l.hostOf(n)) {
				return
			}
			n = prev
		}
	}
}
