package natsort

import (
	"slices"
	"strings"
)

// CompareStrings orders two strings naturally. Strings whose keys are equal,
// such as "a01" and "a1", fall back to bytewise order so the result is total.
func CompareStrings(a, b string) int {
	if c := Compare(KeyOf(a), KeyOf(b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return CompareStrings(a, b) < 0
}

// IsSorted reports whether ss is in natural order.
func IsSorted(ss []string) bool {
	return slices.IsSortedFunc(ss, CompareStrings)
}

// Strings sorts ss in natural order. The sort is stable.
func Strings(ss []string) {
	Sort(ss, identity)
}

// Sort sorts items naturally by the string returned from label. Each label
// is tokenized once. The sort is stable.
func Sort[T any](items []T, label func(T) string) {
	entries := decorate(items, label)

	slices.SortStableFunc(entries, compareEntries[T])

	undecorate(items, entries)
}

// SortStrict sorts like Sort but refuses to order labels whose keys hold a
// number and a text run at the same position. It returns the first such
// error, wrapping ErrIncomparable, and leaves items untouched in that case.
func SortStrict[T any](items []T, label func(T) string) error {
	entries := decorate(items, label)

	var firstErr error

	slices.SortStableFunc(entries, func(x, y entry[T]) int {
		c, err := CompareStrict(x.key, y.key)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			return 0
		}

		if c != 0 {
			return c
		}

		return strings.Compare(x.label, y.label)
	})

	if firstErr != nil {
		return firstErr
	}

	undecorate(items, entries)

	return nil
}

type entry[T any] struct {
	item  T
	label string
	key   Key
}

func decorate[T any](items []T, label func(T) string) []entry[T] {
	entries := make([]entry[T], len(items))

	for i, item := range items {
		text := label(item)
		entries[i] = entry[T]{item: item, label: text, key: KeyOf(text)}
	}

	return entries
}

func undecorate[T any](items []T, entries []entry[T]) {
	for i := range entries {
		items[i] = entries[i].item
	}
}

func compareEntries[T any](x, y entry[T]) int {
	if c := Compare(x.key, y.key); c != 0 {
		return c
	}

	return strings.Compare(x.label, y.label)
}

func identity(s string) string {
	return s
}
