package driver

import (
	"context"

	"fortio.org/safecast"

	"owl/internal/ast"
	"owl/internal/diag"
	"owl/internal/lexer"
	"owl/internal/parser"
	"owl/internal/sema"
	"owl/internal/source"
)

// CheckResult holds everything one file produced on its way through the
// pipeline: AST, semantic artefacts and the merged diagnostics of all
// three phases.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Sema    *sema.Result
	Bag     *diag.Bag
}

// Check loads one file and runs the full pipeline: lex, parse, then the
// semantic pass. Каждая фаза пишет в общий bag; вывод отсортирован.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return checkLoaded(fs, fileID, maxDiagnostics, nil)
}

// checkLoaded runs the pipeline over an already loaded file. Used by
// CheckDir so the directory FileSet keeps one entry per file; onStage (если
// задан) получает фазу перед её стартом.
func checkLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int, onStage func(Stage)) (*CheckResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	// лексер ленивый: токены рождаются по мере запроса парсером, так что
	// отдельной фазы лексирования снаружи не видно
	if onStage != nil {
		onStage(StageParse)
	}
	parsed := parser.ParseFile(context.Background(), fs, lx, builder, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  reporter,
	})

	if onStage != nil {
		onStage(StageCheck)
	}
	semaRes := sema.Check(builder, parsed.File, sema.Options{Reporter: reporter})

	bag.Sort()
	return &CheckResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  parsed.File,
		Sema:    &semaRes,
		Bag:     bag,
	}, nil
}
