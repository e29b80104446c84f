package trace

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/disksort/pkg/disks"
)

const (
	lightFill = "#ffffff"
	darkFill  = "#222222"
	swapPen   = "#d9534f"
)

// ToDOT returns a Graphviz DOT representation of a trace.
//
// Node s0 is the initial row; node s<i+1> is the row after steps[i]. Each
// node is an HTML-like table with one cell per disk. The output is a complete
// digraph suitable for the dot command or [RenderSVG].
func ToDOT(initial disks.Row, steps []disks.Step) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Trace {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"SF Mono, Menlo, monospace\", fontsize=12];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	writeState(&buf, 0, initial, -1)
	for i, s := range steps {
		writeState(&buf, i+1, s.After, s.Index)
	}

	if len(steps) > 0 {
		buf.WriteString("\n")
	}
	for i, s := range steps {
		fmt.Fprintf(&buf, "  s%d -> s%d [label=%q];\n", i, i+1, edgeLabel(s))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeLabel(s disks.Step) string {
	return fmt.Sprintf("pass %d %s @%d", s.Pass, s.Direction, s.Index)
}

// writeState writes a row node. swapped is the left index of the pair that
// was just exchanged, or -1.
func writeState(buf *bytes.Buffer, id int, row disks.Row, swapped int) {
	fmt.Fprintf(buf, "  s%d [label=<<table border=\"0\" cellborder=\"1\" cellspacing=\"0\"><tr>", id)
	if row.Len() == 0 {
		buf.WriteString("<td>empty</td>")
	}
	for i := 0; i < row.Len(); i++ {
		fill := lightFill
		if row.Get(i) == disks.Dark {
			fill = darkFill
		}
		pen := ""
		if swapped >= 0 && (i == swapped || i == swapped+1) {
			pen = fmt.Sprintf(" color=\"%s\"", swapPen)
		}
		fmt.Fprintf(buf, "<td width=\"20\" height=\"20\" bgcolor=\"%s\"%s></td>", fill, pen)
	}
	buf.WriteString("</tr></table>>];\n")
}

// RenderSVG renders a trace as an SVG image.
//
// RenderSVG builds the DOT source with [ToDOT] and renders it with
// go-graphviz. Errors are wrapped with fmt.Errorf and %w.
func RenderSVG(ctx context.Context, initial disks.Row, steps []disks.Step) ([]byte, error) {
	dot := ToDOT(initial, steps)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
