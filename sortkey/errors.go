package sortkey

import "errors"

// ErrLengthMismatch is returned when H and I do not have the same length.
var ErrLengthMismatch = errors.New("sortkey: hash and index slices have different lengths")

// ErrEmptyRange names the empty-input case. No sort in this package returns
// it: SortHash, CountingSort and the radix sorts all return nil for empty
// input.
var ErrEmptyRange = errors.New("sortkey: empty input")
