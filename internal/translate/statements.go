package translate

import (
	"github.com/jsfmt/jsfmt/internal/ast"
	"github.com/jsfmt/jsfmt/internal/doc"
)

// printStatementList joins a sequence of statements with a hard line
// between each, collapsing runs of blank source lines down to at most
// one.
func (p *printer) printStatementList(stmts []*ast.Node, name string) doc.Doc {
	printed := p.printEach(stmts, name)

	var parts []doc.Doc
	for i, d := range printed {
		if i > 0 {
			parts = append(parts, doc.HardLine)
			if stmts[i].BlankLineBefore {
				parts = append(parts, doc.HardLine)
			}
		}
		parts = append(parts, d)
	}
	return doc.Concat(parts...)
}

func (p *printer) printProgram(n *ast.Node) doc.Doc {
	return doc.Concat(p.printStatementList(n.Body, "body"), doc.HardLine)
}

func (p *printer) printBlockStatement(n *ast.Node) doc.Doc {
	if len(n.Body) == 0 {
		if len(n.DanglingComments) > 0 {
			return doc.Concat(doc.Text("{"), doc.Indent(doc.Concat(doc.HardLine, commentsDangling(n))), doc.HardLine, doc.Text("}"))
		}
		return doc.Text("{}")
	}
	return doc.Concat(
		doc.Text("{"),
		doc.Indent(doc.Concat(doc.HardLine, p.printStatementList(n.Body, "body"))),
		doc.HardLine,
		doc.Text("}"),
	)
}

func (p *printer) printExpressionStatement(n *ast.Node) doc.Doc {
	expr := p.print(n.Expr, "expression")
	return doc.Concat(p.leadingSemiIfASIHazard(expr), expr, p.semi())
}

func (p *printer) printIfStatement(n *ast.Node) doc.Doc {
	parts := []doc.Doc{
		doc.Text("if ("),
		doc.Group(doc.Concat(doc.Indent(doc.Concat(doc.SoftLine, p.print(n.Test, "test"))), doc.SoftLine)),
		doc.Text(")"),
	}
	parts = append(parts, p.printClauseBody(n.Consequent, "consequent"))

	if n.Alternate != nil {
		if n.Consequent != nil && n.Consequent.Kind == ast.BlockStatement {
			parts = append(parts, doc.Text(" else"))
		} else {
			parts = append(parts, doc.HardLine, doc.Text("else"))
		}
		if n.Alternate.Kind == ast.IfStatement {
			parts = append(parts, doc.Text(" "), p.print(n.Alternate, "alternate"))
		} else {
			parts = append(parts, p.printClauseBody(n.Alternate, "alternate"))
		}
	}
	return doc.Concat(parts...)
}

// printClauseBody prints the body of if/for/while/etc: " { ... }" for a
// block, or an indented hard-line body for a bare statement — the
// grammar permits omitting braces but the formatter always normalizes
// single statements onto their own indented line rather than inlining
// them, matching this tool family's well-known behavior.
func (p *printer) printClauseBody(body *ast.Node, name string) doc.Doc {
	if body == nil {
		return doc.Text(";")
	}
	if body.Kind == ast.BlockStatement {
		return doc.Concat(doc.Text(" "), p.print(body, name))
	}
	if body.Kind == ast.EmptyStatement {
		return doc.Text(";")
	}
	return doc.Indent(doc.Concat(doc.HardLine, p.print(body, name)))
}

func (p *printer) printForStatement(n *ast.Node) doc.Doc {
	header := doc.Concat(
		p.printForPart(n.Init, "init"), doc.Text("; "),
		p.printForPart(n.Test, "test"), doc.Text("; "),
		p.printForPart(n.Update, "update"),
	)
	if n.Init == nil && n.Test == nil && n.Update == nil {
		header = doc.Text(";;")
	}
	return doc.Concat(doc.Text("for ("), header, doc.Text(")"), p.printClauseBody(n.Consequent, "body"))
}

func (p *printer) printForPart(part *ast.Node, name string) doc.Doc {
	if part == nil {
		return doc.Text("")
	}
	if part.Kind == ast.VariableDeclaration {
		var result doc.Doc
		p.cursor.Call(part, name, func() {
			result = p.printVariableDeclaration(part, false)
		})
		return result
	}
	return p.print(part, name)
}

func (p *printer) printForInOfStatement(n *ast.Node, kw string) doc.Doc {
	return doc.Concat(
		doc.Text("for ("), p.print(n.Left, "left"), doc.Text(" "+kw+" "), p.print(n.Right, "right"), doc.Text(")"),
		p.printClauseBody(n.Consequent, "body"),
	)
}

func (p *printer) printWhileStatement(n *ast.Node) doc.Doc {
	return doc.Concat(
		doc.Text("while ("),
		doc.Group(doc.Concat(doc.Indent(doc.Concat(doc.SoftLine, p.print(n.Test, "test"))), doc.SoftLine)),
		doc.Text(")"),
		p.printClauseBody(n.Consequent, "body"),
	)
}

func (p *printer) printDoWhileStatement(n *ast.Node) doc.Doc {
	body := p.printClauseBody(n.Consequent, "body")
	sep := doc.Text(" ")
	if n.Consequent == nil || n.Consequent.Kind != ast.BlockStatement {
		sep = doc.HardLine
	}
	return doc.Concat(doc.Text("do"), body, sep, doc.Text("while ("), p.print(n.Test, "test"), doc.Text(")"), p.semi())
}

func (p *printer) printSwitchStatement(n *ast.Node) doc.Doc {
	return doc.Concat(
		doc.Text("switch ("),
		doc.Group(doc.Concat(doc.Indent(doc.Concat(doc.SoftLine, p.print(n.Discriminant, "discriminant"))), doc.SoftLine)),
		doc.Text(") {"),
		doc.Indent(doc.Concat(doc.HardLine, p.printStatementList(n.Cases, "cases"))),
		doc.HardLine,
		doc.Text("}"),
	)
}

func (p *printer) printSwitchCase(n *ast.Node) doc.Doc {
	var head doc.Doc
	if n.Test != nil {
		head = doc.Concat(doc.Text("case "), p.print(n.Test, "test"), doc.Text(":"))
	} else {
		head = doc.Text("default:")
	}
	if len(n.Body) == 0 {
		return head
	}
	if len(n.Body) == 1 && n.Body[0].Kind == ast.BlockStatement {
		return doc.Concat(head, doc.Text(" "), p.print(n.Body[0], "body[0]"))
	}
	return doc.Concat(head, doc.Indent(doc.Concat(doc.HardLine, p.printStatementList(n.Body, "body"))))
}

func (p *printer) printTryStatement(n *ast.Node) doc.Doc {
	parts := []doc.Doc{doc.Text("try "), p.print(n.Test, "block")}
	if n.Handler != nil {
		parts = append(parts, doc.Text(" "), p.print(n.Handler, "handler"))
	}
	if n.Finalizer != nil {
		parts = append(parts, doc.Text(" finally "), p.print(n.Finalizer, "finalizer"))
	}
	return doc.Concat(parts...)
}

func (p *printer) printCatchClause(n *ast.Node) doc.Doc {
	if n.Left == nil {
		return doc.Concat(doc.Text("catch "), p.print(n.Test, "body"))
	}
	return doc.Concat(doc.Text("catch ("), p.print(n.Left, "param"), doc.Text(") "), p.print(n.Test, "body"))
}

func (p *printer) printReturnStatement(n *ast.Node) doc.Doc {
	if n.Argument == nil {
		return doc.Concat(doc.Text("return"), p.semi())
	}
	return doc.Concat(doc.Text("return "), p.print(n.Argument, "argument"), p.semi())
}

func (p *printer) printThrowStatement(n *ast.Node) doc.Doc {
	return doc.Concat(doc.Text("throw "), p.print(n.Argument, "argument"), p.semi())
}

func (p *printer) printBreakContinue(n *ast.Node, kw string) doc.Doc {
	if n.Label != nil {
		return doc.Concat(doc.Text(kw+" "), p.print(n.Label, "label"), p.semi())
	}
	return doc.Concat(doc.Text(kw), p.semi())
}

func (p *printer) printLabeledStatement(n *ast.Node) doc.Doc {
	if n.Consequent != nil && n.Consequent.Kind == ast.EmptyStatement {
		return doc.Concat(p.print(n.Label, "label"), doc.Text(":;"))
	}
	return doc.Concat(p.print(n.Label, "label"), doc.Text(": "), p.print(n.Consequent, "body"))
}

func (p *printer) printDirective(n *ast.Node) doc.Doc {
	return doc.Concat(doc.Text(n.Raw), p.semi())
}
