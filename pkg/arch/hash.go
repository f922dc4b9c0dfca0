package arch

import "hash/fnv"

// hashFields computes an FNV-1a hash over the given string fields.
// A zero byte separates fields so ("ab","c") and ("a","bc") differ.
func hashFields(fields ...string) uint64 {
	h := fnv.New64a()
	for _, f := range fields {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
