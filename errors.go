package radixheap

import "errors"

// ErrKeyAboveTop is returned by Push and Extend when a key exceeds the
// heap's current top key.
var ErrKeyAboveTop = errors.New("key above top")
