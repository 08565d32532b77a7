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

// node is the untagged link record. Linked nodes form a closed ring in
// which prev and next are mutual inverses at every step. A free node is
// self-looped; the zero value (nil pointers) is an alias of the free state
// and is normalized the first time the node takes part in any operation.
//
// A node's ring position is tied to its address, never to its host's
// value. Moving a host by value therefore does not move its membership;
// use moveFrom for that.
type node struct {
	prev *node
	next *node
}

// lazyInit normalizes the zero value to the self-loop.
//
//go:nosplit
func (n *node) lazyInit() {
	if n.next == nil {
		n.prev = n
		n.next = n
	}
}

// linked reports whether n is a member of some ring.
//
//go:nosplit
func (n *node) linked() bool {
	return n.next != nil && n.next != n
}

// link stitches a and b adjacent, a before b.
//
//go:nosplit
func link(a, b *node) {
	a.next = b
	b.prev = a
}

// unlink splices n out of its ring by joining its neighbors to each other,
// then resets n to the self-loop. On a free node this joins n to itself,
// a no-op, so unlink is idempotent.
func (n *node) unlink() {
	n.lazyInit()
	link(n.prev, n.next)
	n.prev = n
	n.next = n
}

// moveFrom makes n occupy src's exact ring slot and leaves src free: src's
// former neighbors point at n afterwards. If src is free, n ends free too.
// n.moveFrom(n) is a no-op.
func (n *node) moveFrom(src *node) {
	if n == src {
		return
	}
	n.unlink()
	src.lazyInit()
	if src.linked() {
		n.prev = src.prev
		n.next = src.next
		n.prev.next = n
		n.next.prev = n
		src.prev = src
		src.next = src
	}
}
