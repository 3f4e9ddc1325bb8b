// Package dotprinter builds the [ir] print-item chain for a DOT graph AST and hands it to
// [printer.Format], formatting DOT code in the spirit of [gofumpt].
//
// This package is the "language printer" collaborator the core printer expects: it knows DOT's
// grammar and layout conventions, but performs no line-breaking or width accounting itself. All of
// that is delegated to the [printer] package via the IR built here.
//
// [gofumpt]: https://github.com/mvdan/gofumpt
package dotprinter

import (
	"io"

	dot "github.com/teleivo/fmtcore/dotlang"
	"github.com/teleivo/fmtcore/dotlang/ast"
	"github.com/teleivo/fmtcore/dotlang/token"
	"github.com/teleivo/fmtcore/ir"
	"github.com/teleivo/fmtcore/printer"
)

// maxColumn is the max number of columns after which lines are broken up into multiple lines. Not
// every dot construct can be broken up though.
const maxColumn = 80

// Printer formats DOT code.
type Printer struct {
	r    io.Reader // r reader to parse dot code from
	w    io.Writer // w writer to output formatted DOT code to
	opts printer.Options
}

// New creates a new printer that reads DOT code from r, formats it, and writes the formatted
// output to w using opts. A zero Options uses the package's conventional layout: one tab per
// indent level and an 80-column soft width.
func New(r io.Reader, w io.Writer, opts printer.Options) *Printer {
	if opts == (printer.Options{}) {
		opts = printer.Options{IndentWidth: 1, MaxWidth: maxColumn, UseTabs: true, NewLineText: "\n"}
	}
	return &Printer{r: r, w: w, opts: opts}
}

// Print parses the DOT code from the reader, builds its IR, formats it via [printer.Format], and
// writes the result to the writer. Returns an error if parsing, IR construction, or formatting
// fails.
func (p *Printer) Print() error {
	ps, err := dot.NewParser(p.r)
	if err != nil {
		return err
	}

	tree, err := ps.Parse()
	if err != nil {
		return err
	}
	if errs := ps.Errors(); len(errs) > 0 {
		return errs[0]
	}

	graphs := dot.BuildGraphs(tree)

	items := ir.NewItems()
	for i, g := range graphs {
		if i > 0 {
			items.PushSignal(ir.NewLine)
		}
		buildGraph(items, g)
	}

	out, err := printer.Format(items.Head(), p.opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.w, out)
	return err
}

func buildGraph(items *ir.Items, g *ast.Graph) {
	if g.IsStrict() {
		items.PushText(token.Strict.String())
		items.PushSignal(ir.Space)
	}
	if g.Directed {
		items.PushText(token.Digraph.String())
	} else {
		items.PushText(token.Graph.String())
	}
	items.PushSignal(ir.Space)

	if g.ID != nil {
		buildID(items, *g.ID)
		items.PushSignal(ir.Space)
	}

	items.PushText(token.LeftBrace.String())
	items.PushSignal(ir.StartIndent)
	buildStmts(items, g.Stmts)
	items.PushSignal(ir.FinishIndent)
	items.PushSignal(ir.NewLine)
	items.PushText(token.RightBrace.String())
}

func buildStmts(items *ir.Items, stmts []ast.Stmt) {
	for _, stmt := range stmts {
		items.PushSignal(ir.NewLine)
		buildStmt(items, stmt)
	}
}

func buildStmt(items *ir.Items, stmt ast.Stmt) {
	switch st := stmt.(type) {
	case *ast.NodeStmt:
		buildNodeStmt(items, st)
	case *ast.EdgeStmt:
		buildEdgeStmt(items, st)
	case *ast.AttrStmt:
		buildAttrStmt(items, st)
	case ast.Attribute:
		buildAttribute(items, st)
	case ast.Subgraph:
		buildSubgraph(items, st)
	}
}

// buildID prints a DOT [identifier]. Its display width is measured at emission time rather than
// from byte length, since quoted identifiers may contain runes whose column width differs from
// their UTF-8 byte count.
//
// [identifier]: https://graphviz.org/doc/info/lang.html#ids
func buildID(items *ir.Items, id ast.ID) {
	items.PushRuntimeWidthText(id.Literal, displayWidth)
}

func buildNodeStmt(items *ir.Items, nodeStmt *ast.NodeStmt) {
	buildNodeID(items, nodeStmt.NodeID)
	buildAttrList(items, nodeStmt.AttrList)
}

func buildNodeID(items *ir.Items, nodeID ast.NodeID) {
	buildID(items, nodeID.ID)

	if nodeID.Port == nil {
		return
	}
	if nodeID.Port.Name != nil {
		items.PushText(token.Colon.String())
		buildID(items, *nodeID.Port.Name)
	}
	if cp := nodeID.Port.CompassPoint; cp != nil && cp.Type != ast.CompassPointUnderscore {
		items.PushText(token.Colon.String())
		items.PushText(cp.String())
	}
}

// buildAttrList prints zero or more bracketed attribute lists. Each list tries to stay on one
// line and falls back to one attribute per line when it doesn't fit, per the printer's overflow
// rule; nothing is emitted when atl is nil (e.g. a node statement without attributes).
func buildAttrList(items *ir.Items, atl *ast.AttrList) {
	if atl == nil {
		return
	}

	items.PushSignal(ir.Space)
	for cur := atl; cur != nil; cur = cur.Next {
		items.PushText(token.LeftBracket.String())
		items.PushSignal(ir.StartIndent)
		items.PushSignal(ir.PossibleNewLine)
		for al := cur.AList; al != nil; al = al.Next {
			buildAttribute(items, al.Attribute)
			if al.Next != nil {
				items.PushText(token.Comma.String())
				items.PushSignal(ir.SpaceOrNewLine)
			}
		}
		items.PushSignal(ir.FinishIndent)
		items.PushSignal(ir.PossibleNewLine)
		items.PushText(token.RightBracket.String())

		if cur.Next != nil {
			items.PushSignal(ir.Space)
		}
	}
}

func buildEdgeStmt(items *ir.Items, edgeStmt *ast.EdgeStmt) {
	buildEdgeOperand(items, edgeStmt.Left)
	for rhs := &edgeStmt.Right; rhs != nil; rhs = rhs.Next {
		items.PushSignal(ir.Space)
		if rhs.Directed {
			items.PushText(token.DirectedEdge.String())
		} else {
			items.PushText(token.UndirectedEdge.String())
		}
		items.PushSignal(ir.Space)
		buildEdgeOperand(items, rhs.Right)
	}
	buildAttrList(items, edgeStmt.AttrList)
}

func buildEdgeOperand(items *ir.Items, edgeOperand ast.EdgeOperand) {
	switch op := edgeOperand.(type) {
	case ast.NodeID:
		buildNodeID(items, op)
	case ast.Subgraph:
		buildSubgraph(items, op)
	}
}

func buildAttrStmt(items *ir.Items, attrStmt *ast.AttrStmt) {
	buildID(items, attrStmt.ID)
	buildAttrList(items, &attrStmt.AttrList)
}

func buildAttribute(items *ir.Items, attribute ast.Attribute) {
	buildID(items, attribute.Name)
	items.PushText(token.Equal.String())
	buildID(items, attribute.Value)
}

func buildSubgraph(items *ir.Items, subgraph ast.Subgraph) {
	if subgraph.SubgraphStart != nil {
		items.PushText(token.Subgraph.String())
		items.PushSignal(ir.Space)
	}
	if subgraph.ID != nil {
		buildID(items, *subgraph.ID)
		items.PushSignal(ir.Space)
	}

	items.PushText(token.LeftBrace.String())
	items.PushSignal(ir.StartIndent)
	buildStmts(items, subgraph.Stmts)
	items.PushSignal(ir.FinishIndent)
	items.PushSignal(ir.NewLine)
	items.PushText(token.RightBrace.String())
}
