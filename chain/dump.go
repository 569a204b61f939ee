package chain

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes a detailed rendering of the current value to out, for
// debugging. Nothing is recorded.
func (w *Wrapper) Dump(out io.Writer) *Wrapper {
	dumpConfig.Fdump(out, w.current)
	return w
}
