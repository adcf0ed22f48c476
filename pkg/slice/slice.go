// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with Map and Filter
for the content services.

Both always return a non-nil slice, so an empty collection encodes as a JSON
array rather than null.
*/
package slice

// Map applies transform to every element.
func Map[T, U any](input []T, transform func(T) U) []U {
	result := make([]U, 0, len(input))
	for _, item := range input {
		result = append(result, transform(item))
	}
	return result
}

// Filter keeps the elements for which keep reports true, in order.
func Filter[T any](input []T, keep func(T) bool) []T {
	result := []T{}
	for _, item := range input {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
