package search

import "errors"

// ErrHalted is the one legitimate search-side abort signal: the node pool filled up
// mid-iteration. IterativeSearch catches it and returns the deepest iteration that completed.
var ErrHalted = errors.New("search: halted, arena exhausted")
