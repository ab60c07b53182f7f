package symbols

import "errors"

// ErrParse indicates a syntax tree could not be produced for a file.
// Policy: log a warning, emit no symbols for that file, keep building.
var ErrParse = errors.New("parse error")

// ErrIO indicates a source file could not be read. Policy: log, skip
// file, continue.
var ErrIO = errors.New("io error")
