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

// Member is the link record a host struct embeds to gain membership in
// lists of a given Tag. The zero value is ready to use and unlinked.
//
// The Tag parameter exists only at the type level; it carries no state.
// Two Member fields with different tags on the same host are independent
// channels, and a host belongs to at most one list per tag at a time
// (inserting into a second list of the same tag first unlinks it from the
// first).
//
// Member values must not be copied or moved by plain assignment once
// linked; the neighbors of a linked Member hold its address. Use MoveFrom
// to relocate a membership and Unlink to sever it. A host must Unlink its
// Member fields before its storage is discarded or reused (for example
// when recycling objects through a pool or arena), or a future occupant of
// the same storage inherits a stale ring position.
type Member[Tag any] struct {
	node
}

// Linked reports whether m currently belongs to a ring. Members of a list
// report true; so do members of a detached ring left behind by Clear (see
// List.Clear).
//
//go:nosplit
func (m *Member[Tag]) Linked() bool {
	return m.linked()
}

// Unlink removes m from whatever ring it is in, joining its former
// neighbors to each other, and leaves m unlinked. Unlink on an unlinked
// Member is a no-op.
func (m *Member[Tag]) Unlink() {
	m.unlink()
}

// MoveFrom transfers src's ring position to m: src's neighbors point at m
// afterwards and src ends unlinked. m is unlinked from its own ring first.
// If src is unlinked, m ends unlinked too. m.MoveFrom(m) is a no-op.
func (m *Member[Tag]) MoveFrom(src *Member[Tag]) {
	m.moveFrom(&src.node)
}
