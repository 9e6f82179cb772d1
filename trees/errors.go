// Copyright 2025 Naren Yellavula
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

package trees

import "errors"

var (
	// ErrNilTree reports an operation on an absent tree handle.
	ErrNilTree = errors.New("trees: tree is nil")

	// ErrNotFound reports that the requested key is not in the tree.
	// It is an expected, recoverable outcome, not a failure.
	ErrNotFound = errors.New("trees: key not found")

	// ErrEmptyStack reports a pop from an empty node stack.
	ErrEmptyStack = errors.New("trees: stack is empty")
)
