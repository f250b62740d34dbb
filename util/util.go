package util

import "golang.org/x/exp/constraints"

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}
