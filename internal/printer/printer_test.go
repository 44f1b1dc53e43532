package printer

import (
	"testing"

	"github.com/jsfmt/jsfmt/internal/doc"
)

func TestPrintDocToString(t *testing.T) {
	tests := []struct {
		name string
		doc  doc.Doc
		opts Options
		want string
	}{
		{
			name: "flat group fits",
			doc:  doc.Group(doc.Concat(doc.Text("a"), doc.Line, doc.Text("b"))),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "a b",
		},
		{
			name: "group breaks past width",
			doc: doc.Group(doc.Concat(
				doc.Text("aaaaaaaaaa"), doc.Line, doc.Text("bbbbbbbbbb"), doc.Line, doc.Text("cccccccccc"),
			)),
			opts: Options{PrintWidth: 10, TabWidth: 2},
			want: "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc",
		},
		{
			name: "hardline forces enclosing group to break",
			doc: doc.Group(doc.Concat(
				doc.Text("a"), doc.HardLine, doc.Text("b"),
			)),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "a\nb",
		},
		{
			name: "indent adds tab stop on break",
			doc: doc.Group(doc.Concat(
				doc.Text("a"), doc.Indent(doc.Concat(doc.HardLine, doc.Text("b"))),
			)),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "a\n  b",
		},
		{
			name: "softline disappears when flat",
			doc:  doc.Group(doc.Concat(doc.Text("a"), doc.SoftLine, doc.Text("b"))),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "ab",
		},
		{
			name: "ifBreak picks flat branch",
			doc:  doc.Group(doc.Concat(doc.Text("a"), doc.IfBreak(doc.Text(","), doc.Text("")))),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "a",
		},
		{
			name: "ifBreak picks break branch",
			doc: doc.GroupBreak(doc.Concat(
				doc.Text("a"), doc.IfBreak(doc.Text(","), doc.Text("")),
			)),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "a,",
		},
		{
			name: "lineSuffix defers to end of line",
			doc: doc.Concat(
				doc.Text("a"), doc.LineSuffix(doc.Text(" // c")), doc.Text("b"), doc.HardLine, doc.Text("d"),
			),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "ab // c\nd",
		},
		{
			name: "literalLine resets indentation to zero",
			doc: doc.Indent(doc.Concat(
				doc.HardLine, doc.Text("x"), doc.LiteralLine, doc.Text("y"),
			)),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "\n  x\ny",
		},
		{
			name: "tie-break at exact width renders flat",
			doc: doc.Group(doc.Concat(
				doc.Text("aaaaa"), doc.Line, doc.Text("bbbbb"),
			)),
			opts: Options{PrintWidth: 11, TabWidth: 2},
			want: "aaaaa bbbbb",
		},
		{
			name: "useTabs indents with a tab character",
			doc: doc.Group(doc.Concat(
				doc.Text("a"), doc.Indent(doc.Concat(doc.HardLine, doc.Text("b"))),
			)),
			opts: Options{PrintWidth: 80, TabWidth: 4, UseTabs: true},
			want: "a\n\tb",
		},
		{
			name: "hardline in a nested group forces the outer group to break too",
			doc: doc.Group(doc.Concat(
				doc.Text("a"), doc.Line,
				doc.Group(doc.Concat(doc.Text("start"), doc.HardLine, doc.Text("end"))),
				doc.Line, doc.Text("z"),
			)),
			opts: Options{PrintWidth: 80, TabWidth: 2},
			want: "a\nstart\nend\nz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrintDocToString(tt.doc, tt.opts)
			if got != tt.want {
				t.Errorf("PrintDocToString() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestPrintDocToStringGroupID(t *testing.T) {
	id := doc.NewGroupIDAllocator().Next()
	d := doc.Concat(
		doc.GroupWithID(id, doc.Concat(doc.Text("aaaaaaaaaa"), doc.Line, doc.Text("bbbbbbbbbb"))),
		doc.IfBreakWithGroupID(id, doc.Text(" (broke)"), doc.Text(" (flat)")),
	)

	got := PrintDocToString(d, Options{PrintWidth: 5, TabWidth: 2})
	want := "aaaaaaaaaa\nbbbbbbbbbb (broke)"
	if got != want {
		t.Errorf("PrintDocToString() = %q, want %q", got, want)
	}
}
