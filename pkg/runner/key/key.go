package key

import (
	"context"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/glyph"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/printers"
)

// Key prints the legend of markers and colors used in listings.
type Key struct{}

func (n *Key) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Legend(glyph.DefaultGlyphs())
	return nil
}
