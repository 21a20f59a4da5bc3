package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/signal-lang/sigc/internal/cli/ui"
	"github.com/signal-lang/sigc/internal/compiler/cache"
	"github.com/signal-lang/sigc/internal/compiler/errors"
	"github.com/signal-lang/sigc/internal/compiler/parser"
	"github.com/signal-lang/sigc/internal/utils"
	"github.com/signal-lang/sigc/internal/watch"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check many Signal source files",
		Long: `Check every Signal source file under the given files and directories
(the current directory by default) and print one line per diagnostic.

With --watch sigc keeps running and re-checks files as they change. Files
whose content did not change are not analyzed again.

Examples:
  sigc check
  sigc check src lib/main.sig
  sigc check --watch`,
		ValidArgsFunction: completeSourcePaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, watchMode)
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-check files when they change")

	return cmd
}

const (
	// pruneInterval is how often watch mode drops stale cache entries
	pruneInterval = 10 * time.Minute
	// cacheMaxAge is how long an unchecked result stays cached
	cacheMaxAge = time.Hour
)

// checker analyzes files concurrently, skipping unchanged content
type checker struct {
	parser *parser.Parser
	cache  *cache.ResultCache
	hasher *cache.FileHasher
	logger *zap.Logger
}

// checkResult is the outcome for one file
type checkResult struct {
	path   string
	result *parser.Result
	cached bool
	err    error
}

func newChecker(p *parser.Parser, logger *zap.Logger) *checker {
	return &checker{
		parser: p,
		cache:  cache.NewResultCache(),
		hasher: cache.NewFileHasher(),
		logger: logger,
	}
}

// checkFiles analyzes paths with a bounded worker pool; results keep the
// order of paths
func (c *checker) checkFiles(paths []string) []checkResult {
	results := make([]checkResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(runtime.NumCPU(), len(paths)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.checkFile(paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (c *checker) checkFile(path string) checkResult {
	data, err := os.ReadFile(path)
	if err != nil {
		c.cache.Invalidate(path)
		return checkResult{path: path, err: err}
	}

	hash := c.hasher.HashContent(data)
	if result, ok := c.cache.Lookup(path, hash); ok {
		c.cache.Touch(path)
		return checkResult{path: path, result: result, cached: true}
	}

	result := c.parser.ParseSource(string(data))
	c.cache.Set(path, result, hash)
	c.logger.Debug("file checked",
		zap.String("file", path),
		zap.Bool("accepted", result.Accepted()))

	return checkResult{path: path, result: result}
}

// prune drops results for files not checked within maxAge
func (c *checker) prune(maxAge time.Duration) int {
	pruned := c.cache.Prune(maxAge)
	if pruned > 0 {
		c.logger.Debug("pruned cached results", zap.Int("pruned", pruned), zap.Int("remaining", c.cache.Size()))
	}
	return pruned
}

// collectSources expands directories into their source files
func collectSources(args []string, ext string) (files, dirs []string, err error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	seenDirs := make(map[string]bool)
	addDir := func(dir string) {
		if !seenDirs[dir] {
			seenDirs[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot check %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			addDir(filepath.Dir(arg))
			continue
		}

		found, err := utils.FindSources(arg, ext)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list sources in %s: %w", arg, err)
		}
		files = append(files, found...)
		addDir(arg)
		for _, f := range found {
			addDir(filepath.Dir(f))
		}
	}

	sort.Strings(dirs)
	return files, dirs, nil
}

// writeCheckResults prints diagnostics in file:line:column form and returns
// the number of rejected files
func writeCheckResults(w io.Writer, results []checkResult, noColor bool) int {
	rejected := 0
	for _, r := range results {
		switch {
		case r.err != nil:
			rejected++
			fmt.Fprint(w, ui.Warning(fmt.Sprintf("%s: %v", r.path, r.err), noColor))
		case r.result.Accepted():
			ui.WriteSuccess(w, r.path, noColor)
		default:
			rejected++
			for _, d := range r.result.Diagnostics.Diagnostics() {
				fmt.Fprintln(w, errors.FormatCompact(d.WithFile(r.path)))
			}
		}
	}
	return rejected
}

func runCheck(cmd *cobra.Command, args []string, watchMode bool) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	files, dirs, err := collectSources(args, s.cfg.SourceExtension)
	if err != nil {
		return err
	}

	c := newChecker(s.newParser(), s.logger.Named("check"))
	out := cmd.OutOrStdout()

	results := c.checkFiles(files)
	rejected := writeCheckResults(out, results, s.noColor)

	fmt.Fprintln(out)
	summary := ui.NewKeyValueTable(out, s.noColor)
	summary.AddRow("Files", strconv.Itoa(len(files)))
	summary.AddRow("Accepted", strconv.Itoa(len(files)-rejected))
	summary.AddRow("Rejected", strconv.Itoa(rejected))
	summary.Render()

	if !watchMode {
		if rejected > 0 {
			return fmt.Errorf("%d of %d file(s) rejected", rejected, len(files))
		}
		return nil
	}

	return watchSources(cmd.Context(), cmd, s, c, dirs)
}

// watchSources re-checks changed files until interrupted
func watchSources(ctx context.Context, cmd *cobra.Command, s *settings, c *checker, dirs []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	watcher, err := watch.NewFileWatcher(watch.Options{
		Dirs:      dirs,
		Extension: s.cfg.SourceExtension,
		Ignored:   []string{"*.swp", "*~"},
		Logger:    s.logger.Named("watch"),
	}, func(files []string) error {
		results := c.checkFiles(files)
		fresh := results[:0]
		for _, r := range results {
			if !r.cached {
				fresh = append(fresh, r)
			}
		}
		writeCheckResults(out, fresh, s.noColor)
		return nil
	})
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return err
	}

	ui.WriteMessage(out, ui.MessageOptions{
		Level:   ui.LevelInfo,
		Problem: "Watching for changes (Ctrl+C to stop)",
		NoColor: s.noColor,
	})

	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.prune(cacheMaxAge)
		}
	}
}
