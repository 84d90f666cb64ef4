package driver

import (
	"litlint/internal/checker"
	"litlint/internal/diag"
	"litlint/internal/literal"
	"litlint/internal/source"
)

// CheckResult is the outcome of analyzing one file.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
}

// CheckFile runs the full pipeline — tokenize, classify, check — for one
// already-loaded file and returns its sorted diagnostic bag. A scan failure
// yields a single unparseable-source diagnostic and no rule diagnostics.
func CheckFile(fileSet *source.FileSet, fileID source.FileID, cfg checker.Config, maxDiagnostics int) *diag.Bag {
	file := fileSet.Get(fileID)

	scanBag := diag.NewBag(maxDiagnostics)
	tokens := tokenizeFile(file, scanBag)

	bag := diag.NewBag(maxDiagnostics)
	if scanBag.HasErrors() {
		first := scanBag.Items()[0]
		msg := "Unable to tokenize source: " + first.Message
		if cfg.IncludeName {
			msg += " (" + checker.Name + ")"
		}
		bag.Add(diag.NewError(diag.UnparseableSource, first.Primary, msg))
		return bag
	}

	units := literal.Classify(tokens)
	reporter := diag.NewDedupReporter(&diag.BagReporter{Bag: bag})
	checker.New(cfg, reporter).Check(units)

	bag.Sort()
	return bag
}

// CheckPath loads a single file from disk and checks it.
func CheckPath(path string, cfg checker.Config, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}

	bag := CheckFile(fs, fileID, cfg, maxDiagnostics)
	return &CheckResult{
		FileSet: fs,
		File:    fs.Get(fileID),
		Bag:     bag,
	}, nil
}

// CheckSource checks in-memory source text under a virtual file name.
// Useful for tests and stdin.
func CheckSource(name string, content []byte, cfg checker.Config, maxDiagnostics int) *CheckResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)

	bag := CheckFile(fs, fileID, cfg, maxDiagnostics)
	return &CheckResult{
		FileSet: fs,
		File:    fs.Get(fileID),
		Bag:     bag,
	}
}
