package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"litlint/internal/checker"
	"litlint/internal/diag"
	"litlint/internal/source"
)

// CheckDirResult holds the analysis outcome for one file of a directory run.
type CheckDirResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// CheckDirOptions configures a parallel directory run.
type CheckDirOptions struct {
	MaxDiagnostics int
	Jobs           int        // <= 0 means GOMAXPROCS
	Cache          *DiskCache // nil disables caching
}

// listPyFiles returns a sorted list of all *.py files under dir.
func listPyFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// CheckDir analyzes every *.py file under dir in parallel. Safe because the
// Config is read-only and each goroutine owns its file's tokens, units, and
// bag exclusively.
func CheckDir(ctx context.Context, dir string, cfg checker.Config, opts CheckDirOptions) (*source.FileSet, []CheckDirResult, error) {
	files, err := listPyFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Preload files; the FileSet is not written to after this point.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			// Register an empty stand-in so spans still resolve to the
			// right path in reports.
			fileIDs[path] = fileSet.AddVirtual(path, nil)
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slots are unique per goroutine, no mutex needed.
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileID := fileIDs[path]
			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFile, source.Span{File: fileID},
					"failed to load file: "+loadErr.Error()))
				results[i] = CheckDirResult{Path: path, FileID: fileID, Bag: bag}
				return nil
			}

			file := fileSet.Get(fileID)

			if opts.Cache != nil {
				key := CacheKey(file.Hash, cfg)
				if payload, ok := opts.Cache.Get(key); ok {
					results[i] = CheckDirResult{
						Path:      path,
						FileID:    fileID,
						Bag:       payload.Restore(fileID, opts.MaxDiagnostics),
						FromCache: true,
					}
					return nil
				}
			}

			bag := CheckFile(fileSet, fileID, cfg, opts.MaxDiagnostics)
			results[i] = CheckDirResult{Path: path, FileID: fileID, Bag: bag}

			if opts.Cache != nil {
				key := CacheKey(file.Hash, cfg)
				// Cache write failures are not worth failing the run over.
				_ = opts.Cache.Put(key, NewDiskPayload(bag))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
