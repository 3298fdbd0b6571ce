// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast searches a slice outward from a hinted index, which
// is fast when the item is known to be near the hint, such as the last
// known position of an object among its siblings.
package findfast

// Index returns the index of v in s, or -1 if it is not there. The
// search alternates after and before hint; a hint out of range
// starts from the middle.
func Index[T comparable](s []T, v T, hint int) int {
	return FindFunc(s, func(e T) bool { return e == v }, hint)
}

// FindFunc returns the index of the first element found that
// satisfies match, searching outward from hint, or -1.
func FindFunc[T any](s []T, match func(e T) bool, hint int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	if hint < 0 || hint >= n {
		hint = n / 2
	}
	for d := 0; hint-d >= 0 || hint+d < n; d++ {
		if i := hint + d; i < n && match(s[i]) {
			return i
		}
		if i := hint - d - 1; i >= 0 && match(s[i]) {
			return i
		}
	}
	return -1
}
