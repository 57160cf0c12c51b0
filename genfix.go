package genfix

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
)

type Config struct {
	Root       string
	Generated  string
	Extensions []string
	Files      []string
	FromList   bool
	DryRun     bool
	Diff       bool
	Reload     bool
}

type ProgressUpdate func(current, total int)

type App struct {
	cfg              *Config
	pathResolver     *PathResolver
	sourceProvider   *SourceProvider
	progressCallback ProgressUpdate
}

type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string { return e.Err.Error() }

type Summary struct {
	Fixed          []string
	AlreadyPatched int
	NoMatch        int
	Message        string
}

func NewApp(cfg *Config) (*App, error) {
	pr, err := NewPathResolver()
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:            cfg,
		pathResolver:   pr,
		sourceProvider: NewSourceProvider(),
	}, nil
}

func (a *App) SetProgressCallback(cb ProgressUpdate) { a.progressCallback = cb }

func (a *App) Execute() (summary Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
	}()

	files, err := a.targetFiles()
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{Message: "No files to process"}, nil
	}
	return a.processFiles(files)
}

func (a *App) targetFiles() ([]string, error) {
	if len(a.cfg.Files) > 0 {
		resolved := make([]string, 0, len(a.cfg.Files))
		for _, f := range a.cfg.Files {
			resolved = append(resolved, a.pathResolver.Resolve(f))
		}
		return resolved, nil
	}

	if a.cfg.FromList {
		listed, err := a.sourceProvider.GetFileList()
		if err != nil {
			return nil, err
		}
		var resolved []string
		for _, f := range listed {
			abs := a.pathResolver.Resolve(f)
			if !HasAllowedExtension(abs, a.cfg.Extensions) {
				continue
			}
			resolved = append(resolved, abs)
		}
		return resolved, nil
	}

	return DiscoverFiles(a.pathResolver.Resolve(a.cfg.Root), a.cfg.Extensions)
}

// processFiles runs the rewrite over each file in turn. Files are independent;
// the first read or write error aborts the run.
func (a *App) processFiles(files []string) (Summary, error) {
	generated := a.pathResolver.Resolve(filepath.Join(a.cfg.Root, a.cfg.Generated))

	var s Summary
	total := len(files)
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return s, fmt.Errorf("reading %s: %w", file, err)
		}

		res := Rewrite(string(data), SubstitutionPath(file, generated))
		switch res.Outcome {
		case SkippedPatched:
			s.AlreadyPatched++
		case SkippedNoMatch:
			s.NoMatch++
		case Fixed:
			if a.cfg.Diff {
				fmt.Print(RenderDiff(a.pathResolver.Relative(file), string(data), res.Text))
			}
			if !a.cfg.DryRun {
				if err := os.WriteFile(file, []byte(res.Text), 0644); err != nil {
					return s, fmt.Errorf("writing %s: %w", file, err)
				}
			}
			s.Fixed = append(s.Fixed, file)
		}
		a.reportProgress(i+1, total)
	}

	if a.cfg.Reload && !a.cfg.DryRun && len(s.Fixed) > 0 {
		a.reloadBuffers(s.Fixed)
	}

	s.Message = fmt.Sprintf("Fixed %d, skipped %d", len(s.Fixed), s.AlreadyPatched+s.NoMatch)
	a.relativizeFixedPaths(&s)
	return s, nil
}

// reloadBuffers is best-effort: no reachable editor is not an error.
func (a *App) reloadBuffers(paths []string) {
	m, err := NewNvimManager()
	if err != nil {
		return
	}
	defer m.Close()
	_ = m.ReloadFiles(paths)
}

func (a *App) reportProgress(current, total int) {
	if a.progressCallback != nil {
		a.progressCallback(current, total)
	}
}

func (a *App) relativizeFixedPaths(s *Summary) {
	for i, p := range s.Fixed {
		s.Fixed[i] = a.pathResolver.Relative(p)
	}
}
