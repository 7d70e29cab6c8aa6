/*
Package render produces human-oriented renderings of AVL trees.

Two output forms are supported:

  - Console prints a tree sideways as ASCII art, right subtrees above and left
    subtrees below their parent, optionally colored by balance factor.
  - HTML writes a tree as nested unordered lists.

Both are meant for debugging and teaching; they are not a serialization
format and cannot be read back.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package render

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'avl'.
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

// ErrIllegalArguments is flagged whenever a tree or writer argument is nil.
var ErrIllegalArguments = errors.New("render: illegal arguments")
