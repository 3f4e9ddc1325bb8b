package dot

import (
	"github.com/teleivo/fmtcore/dotlang/ast"
	"github.com/teleivo/fmtcore/dotlang/token"
)

// BuildGraphs converts the concrete syntax tree produced by [Parser.Parse] into the graphs it
// represents. tree must be of type [KindFile]. Malformed constructs recorded as [KindErrorTree]
// are skipped; the resulting AST reflects only the portion of the input that parsed successfully.
func BuildGraphs(tree *Tree) []*ast.Graph {
	var graphs []*ast.Graph
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok || tc.Type != KindGraph {
			continue
		}
		graphs = append(graphs, buildGraph(tc.Tree))
	}
	return graphs
}

func buildGraph(tree *Tree) *ast.Graph {
	g := &ast.Graph{}
	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.Strict:
				pos := c.Start
				g.StrictStart = &pos
			case token.Graph:
				g.GraphStart = c.Start
				g.Directed = false
			case token.Digraph:
				g.GraphStart = c.Start
				g.Directed = true
			case token.LeftBrace:
				g.LeftBrace = c.Start
			case token.RightBrace:
				g.RightBrace = c.Start
			}
		case TreeChild:
			switch c.Type {
			case KindID:
				id := buildID(c.Tree)
				g.ID = &id
			case KindStmtList:
				g.Stmts = buildStmts(c.Tree)
			}
		}
	}
	return g
}

func buildStmts(tree *Tree) []ast.Stmt {
	var stmts []ast.Stmt
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok {
			continue
		}
		switch tc.Type {
		case KindNodeStmt:
			stmts = append(stmts, buildNodeStmt(tc.Tree))
		case KindEdgeStmt:
			stmts = append(stmts, buildEdgeStmt(tc.Tree))
		case KindAttrStmt:
			stmts = append(stmts, buildAttrStmt(tc.Tree))
		case KindAttribute:
			stmts = append(stmts, buildAttribute(tc.Tree))
		case KindSubgraph:
			stmts = append(stmts, buildSubgraph(tc.Tree))
		}
	}
	return stmts
}

func buildID(tree *Tree) ast.ID {
	tok, _ := TokenFirst(tree, token.ID)
	return ast.ID{Literal: tok.Literal, StartPos: tok.Start, EndPos: tok.End}
}

func buildNodeID(tree *Tree) ast.NodeID {
	var nid ast.NodeID
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok {
			continue
		}
		switch tc.Type {
		case KindID:
			nid.ID = buildID(tc.Tree)
		case KindPort:
			port := buildPort(tc.Tree)
			nid.Port = &port
		}
	}
	return nid
}

func buildPort(tree *Tree) ast.Port {
	var port ast.Port
	var seen bool
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok {
			continue
		}
		switch tc.Type {
		case KindID:
			id := buildID(tc.Tree)
			if !seen {
				port.Name = &id
				seen = true
			}
		case KindCompassPoint:
			cp := buildCompassPoint(tc.Tree)
			port.CompassPoint = &cp
			seen = true
		}
	}
	return port
}

func buildCompassPoint(tree *Tree) ast.CompassPoint {
	tok, _ := TokenFirst(tree, token.ID)
	typ, _ := ast.IsCompassPoint(tok.Literal)
	return ast.CompassPoint{Type: typ, StartPos: tok.Start, EndPos: tok.End}
}

func buildAttrList(tree *Tree) *ast.AttrList {
	var head, tail *ast.AttrList
	var cur *ast.AttrList
	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.LeftBracket:
				cur = &ast.AttrList{LeftBracket: c.Start}
				if head == nil {
					head = cur
				} else {
					tail.Next = cur
				}
				tail = cur
			case token.RightBracket:
				if cur != nil {
					cur.RightBracket = c.Start
				}
			}
		case TreeChild:
			if c.Type == KindAList && cur != nil {
				aList := buildAList(c.Tree)
				cur.AList = aList
			}
		}
	}
	return head
}

func buildAList(tree *Tree) *ast.AList {
	var head, tail *ast.AList
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok || tc.Type != KindAttribute {
			continue
		}
		node := &ast.AList{Attribute: buildAttribute(tc.Tree)}
		if head == nil {
			head = node
		} else {
			tail.Next = node
		}
		tail = node
	}
	return head
}

func buildAttribute(tree *Tree) ast.Attribute {
	var attr ast.Attribute
	var seenName bool
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok || tc.Type != KindID {
			continue
		}
		id := buildID(tc.Tree)
		if !seenName {
			attr.Name = id
			seenName = true
		} else {
			attr.Value = id
		}
	}
	return attr
}

func buildNodeStmt(tree *Tree) *ast.NodeStmt {
	ns := &ast.NodeStmt{}
	for _, child := range tree.Children {
		tc, ok := child.(TreeChild)
		if !ok {
			continue
		}
		switch tc.Type {
		case KindNodeID:
			ns.NodeID = buildNodeID(tc.Tree)
		case KindAttrList:
			ns.AttrList = buildAttrList(tc.Tree)
		}
	}
	return ns
}

func buildAttrStmt(tree *Tree) *ast.AttrStmt {
	as := &ast.AttrStmt{}
	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.Graph, token.Node, token.Edge:
				as.ID = ast.ID{Literal: c.Type.String(), StartPos: c.Start, EndPos: c.End}
			}
		case TreeChild:
			if c.Type == KindAttrList {
				if al := buildAttrList(c.Tree); al != nil {
					as.AttrList = *al
				}
			}
		}
	}
	return as
}

func buildEdgeStmt(tree *Tree) *ast.EdgeStmt {
	es := &ast.EdgeStmt{}
	var rhsTail *ast.EdgeRHS
	pendingOperator := false
	var opStart token.Position
	var opDirected bool

	appendOperand := func(operand ast.EdgeOperand) {
		if es.Left == nil {
			es.Left = operand
			return
		}
		rhs := &ast.EdgeRHS{StartPos: opStart, Directed: opDirected, Right: operand}
		if rhsTail == nil {
			es.Right = *rhs
			rhsTail = &es.Right
		} else {
			rhsTail.Next = rhs
			rhsTail = rhs
		}
		pendingOperator = false
	}

	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.DirectedEdge:
				opStart, opDirected, pendingOperator = c.Start, true, true
			case token.UndirectedEdge:
				opStart, opDirected, pendingOperator = c.Start, false, true
			}
		case TreeChild:
			switch c.Type {
			case KindNodeID:
				appendOperand(buildNodeID(c.Tree))
			case KindSubgraph:
				appendOperand(buildSubgraph(c.Tree))
			case KindAttrList:
				if al := buildAttrList(c.Tree); al != nil {
					es.AttrList = al
				}
			}
		}
	}
	_ = pendingOperator

	return es
}

func buildSubgraph(tree *Tree) ast.Subgraph {
	var sg ast.Subgraph
	for _, child := range tree.Children {
		switch c := child.(type) {
		case TokenChild:
			switch c.Type {
			case token.Subgraph:
				pos := c.Start
				sg.SubgraphStart = &pos
			case token.LeftBrace:
				sg.LeftBrace = c.Start
			case token.RightBrace:
				sg.RightBrace = c.Start
			}
		case TreeChild:
			switch c.Type {
			case KindID:
				id := buildID(c.Tree)
				sg.ID = &id
			case KindStmtList:
				sg.Stmts = buildStmts(c.Tree)
			}
		}
	}
	return sg
}
