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

package ilist_test

import (
	"fmt"

	"github.com/dima-ku/intrusive-list/pkg/ilist"
)

// A job queue where every job sits on two lists at once: one ordered by
// arrival, one by expiry. The tags keep the two memberships apart at
// compile time.
type byArrival struct{}
type byExpiry struct{}

type job struct {
	name    string
	arrival ilist.Member[byArrival]
	expiry  ilist.Member[byExpiry]
}

func Example() {
	arrivals := ilist.New(func(j *job) *ilist.Member[byArrival] { return &j.arrival })
	expiries := ilist.New(func(j *job) *ilist.Member[byExpiry] { return &j.expiry })

	backup := &job{name: "backup"}
	compact := &job{name: "compact"}
	flush := &job{name: "flush"}

	for _, j := range []*job{backup, compact, flush} {
		arrivals.PushBack(j)
	}
	// The flush expires first, the backup last.
	for _, j := range []*job{flush, compact, backup} {
		expiries.PushBack(j)
	}

	// Retiring the earliest expiry leaves its arrival-order membership
	// untouched.
	expired := expiries.PopFront()
	fmt.Println("expired:", expired.name)

	for j := range arrivals.All() {
		fmt.Println("arrival:", j.name)
	}
	for j := range expiries.All() {
		fmt.Println("expiry:", j.name)
	}

	// Output:
	// expired: flush
	// arrival: backup
	// arrival: compact
	// arrival: flush
	// expiry: compact
	// expiry: backup
}

func ExampleList_Splice() {
	ready := ilist.New(func(j *job) *ilist.Member[byArrival] { return &j.arrival })
	running := ilist.New(func(j *job) *ilist.Member[byArrival] { return &j.arrival })

	for _, name := range []string{"backup", "compact", "flush"} {
		ready.PushBack(&job{name: name})
	}

	// Promote the whole ready queue in one O(1) transfer.
	running.Splice(running.End(), ready, ready.Begin(), ready.End())

	fmt.Println("ready empty:", ready.Empty())
	for j := range running.All() {
		fmt.Println("running:", j.name)
	}

	// Output:
	// ready empty: true
	// running: backup
	// running: compact
	// running: flush
}
