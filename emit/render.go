// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"
	"io"
)

// Render writes every section to w: marker line, blocks, marker line.
// Rendering stops at the first unsupported block or write error; the
// error names the section and block.
func Render(w io.Writer, sections ...Section) error {
	p := &printer{w: w}
	for si, sec := range sections {
		marker := sec.Dialect.Marker()
		p.println(marker)
		for bi, b := range sec.Blocks {
			if err := renderBlock(p, sec, b); err != nil {
				return emitErrorf("Render", fmt.Errorf("section %d (%s) block %d %q: %w", si, sec.Dialect, bi, b.Title, err))
			}
		}
		p.println(marker)
	}
	if p.err != nil {
		return emitErrorf("Render", p.err)
	}

	return nil
}

func renderBlock(p *printer, sec Section, b Block) error {
	if err := b.check(); err != nil {
		return err
	}
	switch sec.Dialect {
	case CPP:
		return writeCPP(p, b)
	case Kotlin:
		return writeKotlin(p, b)
	case Table:
		return writeTable(p, b, sec.TableStyle)
	default:
		return ErrUnknownDialect
	}
}
