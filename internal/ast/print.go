package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer is used to dump the AST to text format.
type Printer struct {
	w       io.Writer
	builder *Builder
	indent  int
	err     error
}

// NewPrinter creates a new AST printer.
func NewPrinter(w io.Writer, builder *Builder) *Printer {
	return &Printer{w: w, builder: builder}
}

// Dump writes an indented tree of the file to the writer.
func Dump(w io.Writer, builder *Builder, file FileID) error {
	p := NewPrinter(w, builder)
	return p.PrintFile(file)
}

// DumpString returns the indented tree of the file as a string.
func DumpString(builder *Builder, file FileID) string {
	var sb strings.Builder
	p := NewPrinter(&sb, builder)
	_ = p.PrintFile(file)
	return sb.String()
}

// PrintFile prints a complete file.
func (p *Printer) PrintFile(id FileID) error {
	file := p.builder.Files.Get(id)
	if file == nil {
		p.printf("File: <nil>\n")
		return p.err
	}
	p.printf("File:\n")
	p.indent++
	for _, itemID := range file.Items {
		p.printItem(itemID)
	}
	p.indent--
	return p.err
}

func (p *Printer) printItem(id ItemID) {
	item := p.builder.Items.Get(id)
	if item == nil {
		return
	}
	switch item.Kind {
	case ItemFn:
		p.printFn(id)
	case ItemImport:
		p.printImport(id)
	case ItemStmt:
		if stmt, ok := p.builder.Items.Stmt(id); ok {
			p.printStmt(stmt)
		}
	case ItemBad:
		p.printIndent()
		p.printf("BadItem\n")
	}
}

func (p *Printer) printFn(id ItemID) {
	fn, ok := p.builder.Items.Fn(id)
	if !ok {
		return
	}
	p.printIndent()
	p.printf("Fn: %s(", p.builder.Lookup(fn.Name))
	params := p.builder.Items.CollectParams(fn.ParamsStart, fn.ParamsCount)
	for i, param := range params {
		if i > 0 {
			p.printf(", ")
		}
		p.printf("%s", p.builder.Lookup(param.Name))
		if param.Type.IsValid() {
			p.printf(": %s", p.typeString(param.Type))
		}
	}
	p.printf(")")
	if fn.ReturnType.IsValid() {
		p.printf(" -> %s", p.typeString(fn.ReturnType))
	}
	p.printf("\n")
	p.indent++
	p.printStmt(fn.Body)
	p.indent--
}

func (p *Printer) printImport(id ItemID) {
	imp, ok := p.builder.Items.Import(id)
	if !ok {
		return
	}
	p.printIndent()
	p.printf("Import: python")
	for _, seg := range imp.Module {
		p.printf(".%s", p.builder.Lookup(seg))
	}
	if len(imp.Names) > 0 {
		p.printf(" (")
		for i, name := range imp.Names {
			if i > 0 {
				p.printf(", ")
			}
			p.printf("%s", p.builder.Lookup(name.Name))
			if name.Alias.IsValid() {
				p.printf(" as %s", p.builder.Lookup(name.Alias))
			}
		}
		p.printf(")")
	}
	p.printf("\n")
}

func (p *Printer) printStmt(id StmtID) {
	stmt := p.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	p.printIndent()

	switch stmt.Kind {
	case StmtBlock:
		data, _ := p.builder.Stmts.Block(id)
		p.printf("Block:\n")
		p.indent++
		for _, child := range data.Stmts {
			p.printStmt(child)
		}
		p.indent--

	case StmtLet:
		data, _ := p.builder.Stmts.Let(id)
		p.printf("Let: ")
		if data.Mut {
			p.printf("mut ")
		}
		p.printf("%s", p.builder.Lookup(data.Name))
		if data.Type.IsValid() {
			p.printf(": %s", p.typeString(data.Type))
		}
		p.printf(" =\n")
		p.indent++
		p.printExpr(data.Value)
		p.indent--

	case StmtAssign:
		data, _ := p.builder.Stmts.Assign(id)
		p.printf("Assign: %s =\n", p.builder.Lookup(data.Name))
		p.indent++
		p.printExpr(data.Value)
		p.indent--

	case StmtIf:
		data, _ := p.builder.Stmts.If(id)
		p.printf("If:\n")
		p.indent++
		p.printIndent()
		p.printf("Cond:\n")
		p.indent++
		p.printExpr(data.Cond)
		p.indent--
		p.printIndent()
		p.printf("Then:\n")
		p.indent++
		p.printStmt(data.Then)
		p.indent--
		if data.Else.IsValid() {
			p.printIndent()
			p.printf("Else:\n")
			p.indent++
			p.printStmt(data.Else)
			p.indent--
		}
		p.indent--

	case StmtWhile:
		data, _ := p.builder.Stmts.While(id)
		p.printf("While:\n")
		p.indent++
		p.printIndent()
		p.printf("Cond:\n")
		p.indent++
		p.printExpr(data.Cond)
		p.indent--
		p.printIndent()
		p.printf("Body:\n")
		p.indent++
		p.printStmt(data.Body)
		p.indent--
		p.indent--

	case StmtFor:
		data, _ := p.builder.Stmts.For(id)
		p.printf("For: %s in\n", p.builder.Lookup(data.Var))
		p.indent++
		p.printExpr(data.Iterable)
		p.printIndent()
		p.printf("Body:\n")
		p.indent++
		p.printStmt(data.Body)
		p.indent--
		p.indent--

	case StmtLoop:
		data, _ := p.builder.Stmts.Loop(id)
		p.printf("Loop:\n")
		p.indent++
		p.printStmt(data.Body)
		p.indent--

	case StmtBreak:
		p.printf("Break\n")

	case StmtContinue:
		p.printf("Continue\n")

	case StmtReturn:
		data, _ := p.builder.Stmts.Return(id)
		if data.Value.IsValid() {
			p.printf("Return:\n")
			p.indent++
			p.printExpr(data.Value)
			p.indent--
		} else {
			p.printf("Return\n")
		}

	case StmtExpr:
		data, _ := p.builder.Stmts.Expr(id)
		p.printf("ExprStmt:\n")
		p.indent++
		p.printExpr(data.Expr)
		p.indent--

	case StmtBad:
		p.printf("BadStmt\n")
	}
}

func (p *Printer) printExpr(id ExprID) {
	expr := p.builder.Exprs.Get(id)
	if expr == nil {
		return
	}
	p.printIndent()

	switch expr.Kind {
	case ExprIdent:
		data, _ := p.builder.Exprs.Ident(id)
		p.printf("Ident: %s\n", p.builder.Lookup(data.Name))

	case ExprLit:
		data, _ := p.builder.Exprs.Lit(id)
		switch data.Kind {
		case ExprLitInt:
			p.printf("Int: %s\n", p.builder.Lookup(data.Value))
		case ExprLitFloat:
			p.printf("Float: %s\n", p.builder.Lookup(data.Value))
		case ExprLitString:
			p.printf("String: %s\n", p.builder.Lookup(data.Value))
		case ExprLitTrue:
			p.printf("Bool: true\n")
		case ExprLitFalse:
			p.printf("Bool: false\n")
		}

	case ExprUnary:
		data, _ := p.builder.Exprs.Unary(id)
		p.printf("Unary: %s\n", data.Op)
		p.indent++
		p.printExpr(data.Operand)
		p.indent--

	case ExprBinary:
		data, _ := p.builder.Exprs.Binary(id)
		p.printf("Binary: %s\n", data.Op)
		p.indent++
		p.printExpr(data.Left)
		p.printExpr(data.Right)
		p.indent--

	case ExprCall:
		data, _ := p.builder.Exprs.Call(id)
		p.printf("Call:\n")
		p.indent++
		p.printExpr(data.Target)
		if len(data.Args) > 0 {
			p.printIndent()
			p.printf("Args:\n")
			p.indent++
			for _, arg := range data.Args {
				p.printExpr(arg)
			}
			p.indent--
		}
		p.indent--

	case ExprField:
		data, _ := p.builder.Exprs.Field(id)
		p.printf("Field: .%s\n", p.builder.Lookup(data.Field))
		p.indent++
		p.printExpr(data.Target)
		p.indent--

	case ExprList:
		data, _ := p.builder.Exprs.List(id)
		p.printf("List:\n")
		p.indent++
		for _, elem := range data.Elements {
			p.printExpr(elem)
		}
		p.indent--

	case ExprGroup:
		data, _ := p.builder.Exprs.Group(id)
		p.printf("Group:\n")
		p.indent++
		p.printExpr(data.Inner)
		p.indent--

	case ExprIf:
		data, _ := p.builder.Exprs.If(id)
		p.printf("IfExpr:\n")
		p.indent++
		p.printStmt(data.If)
		p.indent--

	case ExprMatch:
		data, _ := p.builder.Exprs.Match(id)
		p.printf("Match:\n")
		p.indent++
		p.printIndent()
		p.printf("Subject:\n")
		p.indent++
		p.printExpr(data.Subject)
		p.indent--
		for _, armID := range data.Arms {
			p.printArm(armID)
		}
		p.indent--

	case ExprTry:
		data, _ := p.builder.Exprs.Try(id)
		p.printf("Try:\n")
		p.indent++
		p.printExpr(data.Operand)
		p.indent--

	case ExprBad:
		p.printf("BadExpr\n")
	}
}

func (p *Printer) printArm(id ArmID) {
	arm := p.builder.Exprs.Arm(id)
	if arm == nil {
		return
	}
	p.printIndent()
	p.printf("Arm: ")
	switch arm.Pattern {
	case PatternNone:
		p.printf("None")
	case PatternUnknown:
		p.printf("%s", p.builder.Lookup(arm.Name))
		if arm.Binder.IsValid() {
			p.printf("(%s)", p.builder.Lookup(arm.Binder))
		}
	default:
		p.printf("%s(%s)", arm.Pattern, p.builder.Lookup(arm.Binder))
	}
	p.printf(" =>\n")
	p.indent++
	p.printExpr(arm.Body)
	p.indent--
}

func (p *Printer) typeString(id TypeID) string {
	node := p.builder.Types.Get(id)
	if node == nil {
		return "?"
	}
	switch node.Kind {
	case TypeExprName:
		return p.builder.Lookup(node.Name)
	case TypeExprGeneric:
		var sb strings.Builder
		sb.WriteString(p.builder.Lookup(node.Name))
		sb.WriteByte('[')
		for i, arg := range node.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.typeString(arg))
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return "?"
	}
}

func (p *Printer) printIndent() {
	for range p.indent {
		p.printf("  ")
	}
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
