package sema

import (
	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/source"
	"owl/internal/symbols"
	"owl/internal/types"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
}

// Result stores semantic artefacts produced by the checker. Every call to
// Check builds a fresh interner and symbol table: nothing is shared between
// invocations, so repeated checks of the same file are bit-identical.
type Result struct {
	TypeInterner *types.Interner
	Symbols      *symbols.Table
	FileScope    symbols.ScopeID
	ExprTypes    map[ast.ExprID]types.TypeID
}

// Check performs semantic analysis of one parsed file: name resolution,
// type inference, flow checks and the advisory lints. Diagnostics go to
// opts.Reporter; duplicates with the same code, span and message are
// suppressed before they reach it.
func Check(builder *ast.Builder, fileID ast.FileID, opts Options) Result {
	res := Result{
		TypeInterner: types.NewInterner(),
		ExprTypes:    make(map[ast.ExprID]types.TypeID),
	}
	if builder == nil || fileID == ast.NoFileID {
		res.Symbols = symbols.NewTable(symbols.Hints{}, nil)
		return res
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		res.Symbols = symbols.NewTable(symbols.Hints{}, nil)
		return res
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}

	table := symbols.NewTable(symbols.Hints{}, builder.StringsInterner)
	root := table.FileRoot(file.Span.File, file.Span)
	res.Symbols = table
	res.FileScope = root

	c := &checker{
		builder:  builder,
		fileID:   fileID,
		reporter: diag.NewDedupReporter(reporter),
		types:    res.TypeInterner,
		table:    table,
		resolver: symbols.NewResolver(table, root, symbols.ResolverOptions{
			Prelude: symbols.BuiltinPrelude(res.TypeInterner),
		}),
		result: &res,
	}
	c.run(file)
	return res
}

// checker holds the state of one Check invocation. Поля живут ровно один
// проход; межфайлового состояния у проверки нет.
type checker struct {
	builder  *ast.Builder
	fileID   ast.FileID
	reporter diag.Reporter
	types    *types.Interner
	table    *symbols.Table
	resolver *symbols.Resolver
	result   *Result

	// fns keeps declared functions in source order for the second pass and
	// the unused-function sweep.
	fns []*fnInfo

	fn    *fnContext
	loops []loopFrame

	// implicitReturn marks the expression statement acting as the implicit
	// return of the function body under check; it is exempt from the
	// ignored-Result/Option advisories.
	implicitReturn ast.StmtID
}

// fnContext is the current-function record: the declared return type the
// body is checked against.
type fnContext struct {
	name   string
	result types.TypeID
}

// fnInfo is the registration record of one declared function: its resolved
// signature plus the parameter bindings the body pass will declare.
type fnInfo struct {
	item     ast.ItemID
	sym      symbols.SymbolID
	name     source.StringID
	nameSpan source.Span
	sig      *types.Signature
	params   []paramInfo
	body     ast.StmtID
	span     source.Span
}

type paramInfo struct {
	name     source.StringID
	nameSpan source.Span
	typ      types.TypeID
}

// loopFrame tracks one enclosing loop for break/continue validity and the
// loop-without-exit advisory.
type loopFrame struct {
	kind     ast.StmtKind
	sawBreak bool
}

func (c *checker) run(file *ast.File) {
	// Первый проход: сигнатуры функций и импорты, чтобы вызовы работали
	// независимо от порядка объявлений.
	for _, itemID := range file.Items {
		c.collectItem(itemID)
	}

	// Второй проход: тела функций и top-level операторы в порядке записи.
	for _, itemID := range file.Items {
		c.checkItem(itemID)
	}

	c.sweepScope(c.result.FileScope, "")
	c.sweepFunctions()
}

func (c *checker) collectItem(itemID ast.ItemID) {
	item := c.builder.Items.Get(itemID)
	if item == nil {
		return
	}
	switch item.Kind {
	case ast.ItemFn:
		c.collectFn(itemID)
	case ast.ItemImport:
		c.collectImport(itemID)
	case ast.ItemStmt, ast.ItemBad:
		// statements wait for the second pass, bad regions are skipped
	}
}

// collectFn resolves the declared signature and installs the function into
// the file scope. Missing parameter annotations default to Any, a missing
// return clause to Void.
func (c *checker) collectFn(itemID ast.ItemID) {
	fn, ok := c.builder.Items.Fn(itemID)
	if !ok {
		return
	}
	b := c.types.Builtins()

	raw := c.builder.Items.CollectParams(fn.ParamsStart, fn.ParamsCount)
	params := make([]paramInfo, 0, len(raw))
	sig := &types.Signature{Result: b.Void}
	for _, p := range raw {
		typ := b.Any
		if p.Type.IsValid() {
			typ = c.resolveAnnotation(p.Type)
		}
		params = append(params, paramInfo{name: p.Name, nameSpan: p.NameSpan, typ: typ})
		sig.Params = append(sig.Params, typ)
	}
	if fn.ReturnType.IsValid() {
		sig.Result = c.resolveAnnotation(fn.ReturnType)
	}

	symID, conflict := c.resolver.Declare(symbols.Symbol{
		Name:      fn.Name,
		Kind:      symbols.SymbolFunc,
		Span:      fn.NameSpan,
		Flags:     c.underscoreFlag(fn.Name),
		Decl:      symbols.SymbolDecl{Item: itemID},
		Signature: sig,
	})
	c.reportConflict(fn.Name, fn.NameSpan, conflict)

	c.fns = append(c.fns, &fnInfo{
		item:     itemID,
		sym:      symID,
		name:     fn.Name,
		nameSpan: fn.NameSpan,
		sig:      sig,
		params:   params,
		body:     fn.Body,
		span:     fn.Span,
	})
}

// collectImport binds each imported name (or its alias) in the file scope
// with type Any. The python root was already validated by the parser.
func (c *checker) collectImport(itemID ast.ItemID) {
	imp, ok := c.builder.Items.Import(itemID)
	if !ok {
		return
	}
	for _, name := range imp.Names {
		binding := name.Binding()
		_, conflict := c.resolver.Declare(symbols.Symbol{
			Name:  binding,
			Kind:  symbols.SymbolImport,
			Span:  name.BindingSpan(),
			Flags: c.underscoreFlag(binding),
			Decl:  symbols.SymbolDecl{Item: itemID},
			Type:  c.types.Builtins().Any,
		})
		c.reportConflict(binding, name.BindingSpan(), conflict)
	}
}

func (c *checker) checkItem(itemID ast.ItemID) {
	item := c.builder.Items.Get(itemID)
	if item == nil {
		return
	}
	switch item.Kind {
	case ast.ItemFn:
		if info := c.fnByItem(itemID); info != nil {
			c.checkFnBody(info)
		}
	case ast.ItemStmt:
		if stmtID, ok := c.builder.Items.Stmt(itemID); ok {
			c.checkStmt(stmtID)
		}
	case ast.ItemImport, ast.ItemBad:
		// imports were collected in the first pass
	}
}

func (c *checker) fnByItem(itemID ast.ItemID) *fnInfo {
	for _, info := range c.fns {
		if info.item == itemID {
			return info
		}
	}
	return nil
}

// lookupName returns the interned text of an identifier, or "_" when the
// interner has no entry (recovery nodes).
func (c *checker) lookupName(id source.StringID) string {
	if name := c.builder.Lookup(id); name != "" {
		return name
	}
	return "_"
}

func (c *checker) underscoreFlag(name source.StringID) symbols.SymbolFlags {
	if text := c.builder.Lookup(name); len(text) > 0 && text[0] == '_' {
		return symbols.SymbolFlagUnderscore
	}
	return 0
}
