// Package gradle is the sub-process driver behind the dependency_tree
// collaborator (§6): it shells out to a project's Gradle wrapper and
// parses its textual output, caching the result until InvalidateCache is
// called.
// The subprocess idiom is grounded on the teacher's vcs/git git_runner.go.
package gradle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	ErrWrapperNotFound = errors.New("gradle wrapper not found")
	ErrCommandFailed   = errors.New("gradle command failed")
	ErrGradleParse     = errors.New("gradle output parse error")
)

const commandTimeout = 2 * time.Minute

// Info is the cached result of a successful gradlew invocation.
type Info struct {
	Modules      []string
	Dependencies map[string][]DependencyNode
}

// Runner drives a project's Gradle wrapper and caches its output. The
// cache is kept until InvalidateCache is called; rebuilding the symbol
// index does not clear it.
type Runner struct {
	projectRoot string

	mu    sync.RWMutex
	cache *Info
}

// NewRunner returns a Runner rooted at projectRoot.
func NewRunner(projectRoot string) *Runner {
	return &Runner{projectRoot: projectRoot}
}

func (r *Runner) wrapperPath() string {
	name := "gradlew"
	if runtime.GOOS == "windows" {
		name = "gradlew.bat"
	}
	return filepath.Join(r.projectRoot, name)
}

// HasWrapper reports whether the project has a gradlew script.
func (r *Runner) HasWrapper() bool {
	info, err := os.Stat(r.wrapperPath())
	return err == nil && !info.IsDir()
}

// InvalidateCache drops any cached Gradle output; call this after a
// reindex.
func (r *Runner) InvalidateCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
}

// Modules returns the project's Gradle module paths (`gradlew projects -q`).
func (r *Runner) Modules(ctx context.Context) ([]string, error) {
	info, err := r.ensureCache(ctx)
	if err != nil {
		return nil, err
	}
	return info.Modules, nil
}

// Dependencies returns the compile-classpath dependency tree for module
// (`gradlew :module:dependencies --configuration compileClasspath -q`).
func (r *Runner) Dependencies(ctx context.Context, module string) ([]DependencyNode, error) {
	info, err := r.ensureCache(ctx)
	if err != nil {
		return nil, err
	}
	deps, ok := info.Dependencies[module]
	if !ok {
		out, err := r.runDependencies(ctx, module)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		if r.cache != nil {
			r.cache.Dependencies[module] = out
		}
		r.mu.Unlock()
		return out, nil
	}
	return deps, nil
}

func (r *Runner) ensureCache(ctx context.Context) (*Info, error) {
	r.mu.RLock()
	cached := r.cache
	r.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	if !r.HasWrapper() {
		return nil, fmt.Errorf("%w: %s", ErrWrapperNotFound, r.wrapperPath())
	}

	out, _, err := r.run(ctx, "projects", "-q")
	if err != nil {
		return nil, err
	}
	modules, err := parseProjectsOutput(string(out))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGradleParse, err)
	}

	info := &Info{Modules: modules, Dependencies: make(map[string][]DependencyNode)}
	r.mu.Lock()
	r.cache = info
	r.mu.Unlock()
	return info, nil
}

func (r *Runner) runDependencies(ctx context.Context, module string) ([]DependencyNode, error) {
	target := fmt.Sprintf("%s:dependencies", module)
	out, _, err := r.run(ctx, target, "--configuration", "compileClasspath", "-q")
	if err != nil {
		return nil, err
	}
	deps, err := parseDependenciesOutput(string(out))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGradleParse, err)
	}
	return deps, nil
}

func (r *Runner) run(ctx context.Context, args ...string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.wrapperPath(), args...)
	cmd.Dir = r.projectRoot

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrText := strings.TrimSpace(stderr.String())
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, stderrText, fmt.Errorf("%w: timed out after %s", ErrCommandFailed, commandTimeout)
		}
		if stderrText != "" {
			return nil, stderrText, fmt.Errorf("%w: %s", ErrCommandFailed, stderrText)
		}
		return nil, stderrText, fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}

	return stdout.Bytes(), strings.TrimSpace(stderr.String()), nil
}
