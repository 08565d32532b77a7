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

// Package ilist provides intrusive doubly-linked lists.
//
// An intrusive list threads its link records through the members
// themselves: a host struct embeds one Member field per list it can belong
// to, and a List stitches those fields into a ring around its own sentinel.
// Entries can be added to or removed from a list in O(1) time and with no
// additional memory allocations; a whole range can be moved between lists
// in O(1) with Splice.
//
// The Tag type parameter keeps multiple memberships on the same host type
// apart at compile time. A host that embeds two Member fields with distinct
// tags belongs to two wholly independent lists at once:
//
//	type byAge struct{}
//	type byIdle struct{}
//
//	type session struct {
//		age  ilist.Member[byAge]
//		idle ilist.Member[byIdle]
//	}
//
//	ageList := ilist.New(func(s *session) *ilist.Member[byAge] { return &s.age })
//	idleList := ilist.New(func(s *session) *ilist.Member[byIdle] { return &s.idle })
//
// Lists never own their members. A host must stay alive while linked, and
// must call Unlink on its Member fields before its storage is reused.
package ilist

// DefaultTag is the tag for host types with a single membership channel.
type DefaultTag struct{}

// noCopy makes go vet's copylocks check flag types that embed it. Copying
// a List by value would leave the copy's sentinel pointing into the
// original's ring.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
