package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"owl/internal/diag"
	"owl/internal/source"
)

// DirOptions configures a directory-wide check.
type DirOptions struct {
	MaxDiagnostics int
	// Jobs ограничивает число параллельных файлов; <=0 — GOMAXPROCS.
	Jobs int
	// Cache is the content-addressed result store; nil disables caching.
	Cache *CheckCache
	// Progress receives per-file stage events; nil disables.
	Progress ProgressFunc
}

// FileCheckResult is the outcome of checking one file inside a directory
// run.
type FileCheckResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// ListOwlFiles возвращает отсортированный список всех *.ow файлов под dir.
func ListOwlFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ow") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// сортировка фиксирует порядок вывода и нумерацию прогресса
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.ow file under dir. Files run in parallel, each
// in its own bag/interner/scope universe; результаты ложатся в слот своего
// индекса, поэтому порядок вывода не зависит от планировщика.
func CheckDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []FileCheckResult, error) {
	files, err := ListOwlFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	results := make([]FileCheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOFailed,
					Message:  "cannot read `" + path + "`: " + loadErr.Error(),
				})
				results[i] = FileCheckResult{Path: path, Bag: bag}
				opts.Progress.emit(Event{Path: path, Index: i, Total: len(files), Stage: StageError})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if bag, hit := opts.Cache.Load(HashContent(file.Content), fileID, opts.MaxDiagnostics); hit {
				results[i] = FileCheckResult{Path: path, FileID: fileID, Bag: bag, FromCache: true}
				stage := StageDone
				if bag.HasErrors() {
					stage = StageError
				}
				opts.Progress.emit(Event{Path: path, Index: i, Total: len(files), Stage: stage, FromCache: true})
				return nil
			}

			opts.Progress.emit(Event{Path: path, Index: i, Total: len(files), Stage: StageLex})
			res, err := checkLoaded(fileSet, fileID, opts.MaxDiagnostics, func(stage Stage) {
				opts.Progress.emit(Event{Path: path, Index: i, Total: len(files), Stage: stage})
			})
			if err != nil {
				return err
			}

			// кеш пишется по принципу best effort: промахнуться дёшево,
			// сломать прогон из-за диска нельзя
			_ = opts.Cache.Store(HashContent(file.Content), fileID, res.Bag)

			results[i] = FileCheckResult{Path: path, FileID: fileID, Bag: res.Bag}
			stage := StageDone
			if res.Bag.HasErrors() {
				stage = StageError
			}
			opts.Progress.emit(Event{Path: path, Index: i, Total: len(files), Stage: stage})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
