/*
Package avl offers an ordered key-value container backed by an AVL tree.

AVL Trees

An AVL tree is a self-balancing binary search tree. For every node the heights
of its two subtrees differ by at most one, which bounds the depth of the tree
by roughly 1.44·log₂(n). Search, insertion and deletion therefore take
O(log n) steps in the worst case, and an in-order walk enumerates all entries
in ascending key order.

From Wikipedia:
In computer science, an AVL tree (named after inventors Adelson-Velsky and
Landis) is a self-balancing binary search tree. […] In an AVL tree, the
heights of the two child subtrees of any node differ by at most one; if at any
time they differ by more than one, rebalancing is done to restore this
property.

_________________________________________________________________________

Keys have to be of an ordered type (see package cmp); they are compared with
cmp.Compare, thus floating point NaNs are treated as equal to each other and
less than any other value. Values are opaque payload.

Inserting a key which is already present does not overwrite the stored value:
the first insert wins. Clients wanting upsert semantics have to remove the key
first.

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to serialize access themselves, e.g. with a sync.Mutex held
for the duration of each call.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package avl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the avl module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrNotFound is flagged by Lookup whenever a key is not present in the tree.
const ErrNotFound = TreeError("avl: key not found")

// ErrCorrupt is flagged by Check if a tree violates one of its structural
// invariants.
const ErrCorrupt = TreeError("avl: tree invariant violated")

// Bounds for the balance factor of a node, i.e.
// height(right subtree) − height(left subtree).
const (
	MinBalanceFactor = -1
	MaxBalanceFactor = 1
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
