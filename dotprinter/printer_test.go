package dotprinter_test

import (
	"bytes"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
	"github.com/teleivo/fmtcore/dotprinter"
	"github.com/teleivo/fmtcore/printer"
)

func TestPrint(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"GraphEmpty": {
			in: `strict graph {
			}


			`,
			want: "strict graph {\n}",
		},
		"GraphWithID": {
			in: `strict graph
					"galaxy"     {}`,
			want: "strict graph \"galaxy\" {\n}",
		},
		"DigraphWithNodeAndEdge": {
			in: `digraph{a->b}`,
			want: "digraph {\n\ta -> b\n}",
		},
		"AttrListFitsOnOneLine": {
			in: `graph { a [color=red, style=bold] }`,
			want: "graph {\n\ta [color=red, style=bold]\n}",
		},
		"AttrListBreaksWhenOverWidth": {
			in: `graph {
"Node1234" [label="This is a test of a long attribute value that is past the max column which should be split on word boundaries several times of course as long as this is necessary it should also respect giant URLs https://github.com/teleivo/dot/blob/fake/27b6dbfe4b99f67df74bfb7323e19d6c547f68fd/parser_test.go#L13"]
		}`,
			want: "graph {\n\t\"Node1234\" [\n\t\tlabel=\"This is a test of a long attribute value that is past the max column which should be split on word boundaries several times of course as long as this is necessary it should also respect giant URLs https://github.com/teleivo/dot/blob/fake/27b6dbfe4b99f67df74bfb7323e19d6c547f68fd/parser_test.go#L13\"\n\t]\n}",
		},
		"NodeStatementWithPort": {
			in:   `graph { A:"north":n }`,
			want: "graph {\n\tA:\"north\":n\n}",
		},
		"AttrStmt": {
			in:   `digraph { node [shape=box] }`,
			want: "digraph {\n\tnode [shape=box]\n}",
		},
		"Subgraph": {
			in:   `graph { subgraph cluster_0 { a b } }`,
			want: "graph {\n\tsubgraph cluster_0 {\n\t\ta\n\t\tb\n\t}\n}",
		},
		"MultipleTopLevelGraphs": {
			in:   "graph { a }\ngraph { b }",
			want: "graph {\n\ta\n}\ngraph {\n\tb\n}",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var got bytes.Buffer
			p := dotprinter.New(bytes.NewBufferString(test.in), &got, printer.Options{})

			err := p.Print()

			require.NoErrorf(t, err, "Print()")
			require.EqualValuesf(t, got.String(), test.want, "Print()")

			t.Log("printing the formatted output again must be idempotent")

			var gotAgain bytes.Buffer
			p = dotprinter.New(bytes.NewBufferString(got.String()), &gotAgain, printer.Options{})

			err = p.Print()

			require.NoErrorf(t, err, "Print() on already formatted input")
			assert.EqualValuesf(t, gotAgain.String(), got.String(), "Print() is not idempotent")
		})
	}
}
