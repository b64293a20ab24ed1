// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"
	"io"
	"strconv"
)

// printer writes to w and remembers the first error; later writes are no-ops.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) { p.printf("%s\n", s) }

// longList writes pre, then the items comma-separated with a line break
// after every perLine items, then post on its own line. The last item ends
// its line. An empty list writes only pre and post.
func (p *printer) longList(pre string, items []string, suffix, post string) {
	const perLine = 5
	p.println(pre)
	for i, it := range items {
		if i == len(items)-1 {
			p.println(it + suffix)
			break
		}
		p.printf("%s%s,", it, suffix)
		if (i+1)%perLine == 0 {
			p.printf("\n")
		}
	}
	p.println(post)
}

func floats(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = FormatFloat(v)
	}
	return out
}

func ints(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(v)
	}
	return out
}
