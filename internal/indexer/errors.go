package indexer

import "errors"

// ErrIndex signals a structural invariant violation discovered while
// assembling the index (spec.md §7's IndexError): a defect in how the
// index itself was built, as opposed to a per-file parse problem
// (symbols.ErrParse).
var ErrIndex = errors.New("index invariant violation")
