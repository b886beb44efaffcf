package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"owl/internal/ast"
	"owl/internal/source"
)

// ASTNodeOutput is the JSON shape of one AST node.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty печатает дерево файла с псевдографикой:
//
//	File (span: main.ow:1:1)
//	├─ Fn add
//	│  ├─ Param a: Int
//	│  ...
//	└─ Stmt: expr
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found in AST", fileID)
	}

	header := "File"
	if fs != nil {
		if f := fs.Get(file.Span.File); f != nil {
			header = f.FormatPath("auto", fs.BaseDir())
		}
	}
	root := buildFileNode(builder, fileID)
	root.label = fmt.Sprintf("%s (%d items)", header, len(file.Items))
	printTree(w, root, "", true, true)
	return nil
}

// FormatASTJSON сериализует дерево файла в JSON.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found in AST", fileID)
	}
	root := buildFileNode(builder, fileID)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root.toJSON())
}

// dumpNode is the builder-side tree; label идёт в pretty-вывод, а
// typ/kind/text — в JSON.
type dumpNode struct {
	label    string
	typ      string
	kind     string
	text     string
	span     source.Span
	children []*dumpNode
}

func (n *dumpNode) add(child *dumpNode) { n.children = append(n.children, child) }

func (n *dumpNode) toJSON() ASTNodeOutput {
	out := ASTNodeOutput{
		Type: n.typ,
		Kind: n.kind,
		Span: n.span,
		Text: n.text,
	}
	for _, child := range n.children {
		out.Children = append(out.Children, child.toJSON())
	}
	return out
}

func printTree(w io.Writer, n *dumpNode, prefix string, isLast, isRoot bool) {
	if isRoot {
		fmt.Fprintln(w, n.label)
	} else {
		branch := "├─ "
		if isLast {
			branch = "└─ "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, n.label)
		if isLast {
			prefix += "   "
		} else {
			prefix += "│  "
		}
	}
	for i, child := range n.children {
		printTree(w, child, prefix, i == len(n.children)-1, false)
	}
}

func buildFileNode(builder *ast.Builder, fileID ast.FileID) *dumpNode {
	file := builder.Files.Get(fileID)
	root := &dumpNode{label: "File", typ: "file", span: file.Span}
	for _, itemID := range file.Items {
		root.add(buildItemNode(builder, itemID))
	}
	return root
}

func buildItemNode(builder *ast.Builder, itemID ast.ItemID) *dumpNode {
	item := builder.Items.Get(itemID)
	if item == nil {
		return &dumpNode{label: "<nil item>", typ: "item"}
	}

	switch item.Kind {
	case ast.ItemFn:
		return buildFnNode(builder, itemID, item.Span)
	case ast.ItemImport:
		return buildImportNode(builder, itemID, item.Span)
	case ast.ItemStmt:
		if stmtID, ok := builder.Items.Stmt(itemID); ok {
			return buildStmtNode(builder, stmtID)
		}
	}
	return &dumpNode{label: "Bad item", typ: "item", kind: "bad", span: item.Span}
}

func buildFnNode(builder *ast.Builder, itemID ast.ItemID, span source.Span) *dumpNode {
	fn, ok := builder.Items.Fn(itemID)
	if !ok {
		return &dumpNode{label: "<broken fn>", typ: "fn"}
	}
	name := builder.Lookup(fn.Name)
	node := &dumpNode{label: "Fn " + name, typ: "fn", text: name, span: span}

	for _, param := range builder.Items.CollectParams(fn.ParamsStart, fn.ParamsCount) {
		label := "Param " + builder.Lookup(param.Name)
		if param.Type.IsValid() {
			label += ": " + typeExprString(builder, param.Type)
		}
		node.add(&dumpNode{label: label, typ: "param",
			text: builder.Lookup(param.Name), span: param.Span})
	}
	if fn.ReturnType.IsValid() {
		node.add(&dumpNode{
			label: "Return " + typeExprString(builder, fn.ReturnType),
			typ:   "return_type",
			text:  typeExprString(builder, fn.ReturnType),
		})
	}
	node.add(buildStmtNode(builder, fn.Body))
	return node
}

func buildImportNode(builder *ast.Builder, itemID ast.ItemID, span source.Span) *dumpNode {
	imp, ok := builder.Items.Import(itemID)
	if !ok {
		return &dumpNode{label: "<broken import>", typ: "import"}
	}
	segments := []string{"python"}
	for _, seg := range imp.Module {
		segments = append(segments, builder.Lookup(seg))
	}
	module := strings.Join(segments, ".")
	node := &dumpNode{label: "Import from " + module, typ: "import", text: module, span: span}
	for _, name := range imp.Names {
		label := builder.Lookup(name.Name)
		if name.Alias != source.NoStringID {
			label += " as " + builder.Lookup(name.Alias)
		}
		node.add(&dumpNode{label: label, typ: "import_name", text: label, span: name.Span})
	}
	return node
}

func buildStmtNode(builder *ast.Builder, id ast.StmtID) *dumpNode {
	stmt := builder.Stmts.Get(id)
	if stmt == nil {
		return &dumpNode{label: "<nil stmt>", typ: "stmt"}
	}
	node := &dumpNode{typ: "stmt", span: stmt.Span}

	switch stmt.Kind {
	case ast.StmtBlock:
		node.label, node.kind = "Block", "block"
		if data, ok := builder.Stmts.Block(id); ok {
			for _, child := range data.Stmts {
				node.add(buildStmtNode(builder, child))
			}
		}
	case ast.StmtLet:
		if data, ok := builder.Stmts.Let(id); ok {
			name := builder.Lookup(data.Name)
			label := "Let " + name
			if data.Mut {
				label = "Let mut " + name
			}
			if data.Type.IsValid() {
				label += ": " + typeExprString(builder, data.Type)
			}
			node.label, node.kind, node.text = label, "let", name
			node.add(buildExprNode(builder, data.Value))
		}
	case ast.StmtAssign:
		if data, ok := builder.Stmts.Assign(id); ok {
			name := builder.Lookup(data.Name)
			node.label, node.kind, node.text = "Assign "+name, "assign", name
			node.add(buildExprNode(builder, data.Value))
		}
	case ast.StmtIf:
		node.label, node.kind = "If", "if"
		if data, ok := builder.Stmts.If(id); ok {
			node.add(buildExprNode(builder, data.Cond))
			node.add(buildStmtNode(builder, data.Then))
			if data.Else.IsValid() {
				elseNode := &dumpNode{label: "Else", typ: "else"}
				elseNode.add(buildStmtNode(builder, data.Else))
				node.add(elseNode)
			}
		}
	case ast.StmtWhile:
		node.label, node.kind = "While", "while"
		if data, ok := builder.Stmts.While(id); ok {
			node.add(buildExprNode(builder, data.Cond))
			node.add(buildStmtNode(builder, data.Body))
		}
	case ast.StmtFor:
		if data, ok := builder.Stmts.For(id); ok {
			name := builder.Lookup(data.Var)
			node.label, node.kind, node.text = "For "+name, "for", name
			node.add(buildExprNode(builder, data.Iterable))
			node.add(buildStmtNode(builder, data.Body))
		}
	case ast.StmtLoop:
		node.label, node.kind = "Loop", "loop"
		if data, ok := builder.Stmts.Loop(id); ok {
			node.add(buildStmtNode(builder, data.Body))
		}
	case ast.StmtBreak:
		node.label, node.kind = "Break", "break"
	case ast.StmtContinue:
		node.label, node.kind = "Continue", "continue"
	case ast.StmtReturn:
		node.label, node.kind = "Return", "return"
		if data, ok := builder.Stmts.Return(id); ok && data.Value.IsValid() {
			node.add(buildExprNode(builder, data.Value))
		}
	case ast.StmtExpr:
		node.label, node.kind = "ExprStmt", "expr"
		if data, ok := builder.Stmts.Expr(id); ok {
			node.add(buildExprNode(builder, data.Expr))
		}
	default:
		node.label, node.kind = "Bad stmt", "bad"
	}
	return node
}

func buildExprNode(builder *ast.Builder, id ast.ExprID) *dumpNode {
	expr := builder.Exprs.Get(id)
	if expr == nil {
		return &dumpNode{label: "<nil expr>", typ: "expr"}
	}
	node := &dumpNode{typ: "expr", span: expr.Span}

	switch expr.Kind {
	case ast.ExprIdent:
		if data, ok := builder.Exprs.Ident(id); ok {
			name := builder.Lookup(data.Name)
			node.label, node.kind, node.text = "Ident "+name, "ident", name
		}
	case ast.ExprLit:
		if data, ok := builder.Exprs.Lit(id); ok {
			value := builder.Lookup(data.Value)
			node.label = fmt.Sprintf("Lit %s %s", litKindString(data.Kind), value)
			node.kind, node.text = litKindString(data.Kind), value
		}
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(id); ok {
			op := unaryOpString(data.Op)
			node.label, node.kind, node.text = "Unary "+op, "unary", op
			node.add(buildExprNode(builder, data.Operand))
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(id); ok {
			node.label, node.kind, node.text = "Binary "+data.Op.String(), "binary", data.Op.String()
			node.add(buildExprNode(builder, data.Left))
			node.add(buildExprNode(builder, data.Right))
		}
	case ast.ExprCall:
		node.label, node.kind = "Call", "call"
		if data, ok := builder.Exprs.Call(id); ok {
			node.add(buildExprNode(builder, data.Target))
			for _, arg := range data.Args {
				node.add(buildExprNode(builder, arg))
			}
		}
	case ast.ExprField:
		if data, ok := builder.Exprs.Field(id); ok {
			field := builder.Lookup(data.Field)
			node.label, node.kind, node.text = "Field ."+field, "field", field
			node.add(buildExprNode(builder, data.Target))
		}
	case ast.ExprList:
		node.label, node.kind = "List", "list"
		if data, ok := builder.Exprs.List(id); ok {
			for _, el := range data.Elements {
				node.add(buildExprNode(builder, el))
			}
		}
	case ast.ExprGroup:
		node.label, node.kind = "Group", "group"
		if data, ok := builder.Exprs.Group(id); ok {
			node.add(buildExprNode(builder, data.Inner))
		}
	case ast.ExprIf:
		node.label, node.kind = "IfExpr", "if_expr"
		if data, ok := builder.Exprs.If(id); ok {
			node.add(buildStmtNode(builder, data.If))
		}
	case ast.ExprMatch:
		node.label, node.kind = "Match", "match"
		if data, ok := builder.Exprs.Match(id); ok {
			node.add(buildExprNode(builder, data.Subject))
			for _, armID := range data.Arms {
				node.add(buildArmNode(builder, armID))
			}
		}
	case ast.ExprTry:
		node.label, node.kind = "Try ?", "try"
		if data, ok := builder.Exprs.Try(id); ok {
			node.add(buildExprNode(builder, data.Operand))
		}
	default:
		node.label, node.kind = "Bad expr", "bad"
	}
	return node
}

func buildArmNode(builder *ast.Builder, armID ast.ArmID) *dumpNode {
	arm := builder.Exprs.Arm(armID)
	if arm == nil {
		return &dumpNode{label: "<nil arm>", typ: "arm"}
	}
	label := "Arm " + arm.Pattern.String()
	if arm.Binder != source.NoStringID {
		label += "(" + builder.Lookup(arm.Binder) + ")"
	}
	node := &dumpNode{label: label, typ: "arm", kind: arm.Pattern.String(), span: arm.Span}
	node.add(buildExprNode(builder, arm.Body))
	return node
}

// typeExprString renders an annotation back to its source-like form.
func typeExprString(builder *ast.Builder, id ast.TypeID) string {
	node := builder.Types.Get(id)
	if node == nil {
		return "<?>"
	}
	switch node.Kind {
	case ast.TypeExprName:
		return builder.Lookup(node.Name)
	case ast.TypeExprGeneric:
		args := make([]string, 0, len(node.Args))
		for _, arg := range node.Args {
			args = append(args, typeExprString(builder, arg))
		}
		return builder.Lookup(node.Name) + "[" + strings.Join(args, ", ") + "]"
	default:
		return "<bad type>"
	}
}

func litKindString(kind ast.ExprLitKind) string {
	switch kind {
	case ast.ExprLitInt:
		return "int"
	case ast.ExprLitFloat:
		return "float"
	case ast.ExprLitString:
		return "string"
	case ast.ExprLitTrue, ast.ExprLitFalse:
		return "bool"
	default:
		return "unknown"
	}
}

func unaryOpString(op ast.ExprUnaryOp) string {
	switch op {
	case ast.ExprUnaryNeg:
		return "-"
	case ast.ExprUnaryNot:
		return "!"
	default:
		return "?"
	}
}
