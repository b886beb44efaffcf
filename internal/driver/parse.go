package driver

import (
	"context"

	"fortio.org/safecast"

	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/lexer"
	"owl/internal/parser"
	"owl/internal/source"
)

// ParseResult holds the AST of one file together with its lexical and
// syntactic diagnostics.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse loads one file and builds its AST, recovering from syntax errors.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	result := parser.ParseFile(context.Background(), fs, lx, builder, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  reporter,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}
