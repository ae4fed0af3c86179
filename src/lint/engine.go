package lint

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sofmeright/nbforge/src/notebook"
	"golang.org/x/sync/semaphore"
)

// Engine runs lint modules across the blocks of a document.
type Engine struct {
	Modules []Module
}

// NewEngine creates a lint engine with the selected modules.
// An empty selection means every default-enabled registered module.
func NewEngine(moduleNames []string, skipNames []string) (*Engine, error) {
	skipSet := make(map[string]bool, len(skipNames))
	for _, name := range skipNames {
		skipSet[name] = true
	}

	var modules []Module

	if len(moduleNames) > 0 {
		for _, name := range moduleNames {
			if skipSet[name] {
				continue
			}
			m, err := Get(name)
			if err != nil {
				return nil, err
			}
			modules = append(modules, m)
		}
	} else {
		for _, name := range All() {
			if skipSet[name] {
				continue
			}
			m, err := Get(name)
			if err != nil {
				return nil, err
			}
			if m.DefaultEnabled() {
				modules = append(modules, m)
			}
		}
	}

	if len(modules) == 0 {
		return nil, fmt.Errorf("no lint modules selected")
	}

	return &Engine{Modules: modules}, nil
}

// ModuleNames returns the names of all active modules in this engine.
func (e *Engine) ModuleNames() []string {
	names := make([]string, len(e.Modules))
	for i, m := range e.Modules {
		names[i] = m.Name()
	}
	return names
}

// Run executes every module against every block of doc and returns the
// findings sorted by block, line, module and message.
func (e *Engine) Run(ctx context.Context, doc notebook.Document) ([]Finding, error) {
	var (
		mu       sync.Mutex
		findings []Finding
		wg       sync.WaitGroup
		errs     []error
	)

	sem := semaphore.NewWeighted(int64(runtime.NumCPU() * 2))
	seen := make(map[notebook.Kind]bool)

	for i, block := range doc.Blocks() {
		info := BlockInfo{
			Index:       i,
			Block:       block,
			FirstOfKind: !seen[block.Kind()],
		}
		seen[block.Kind()] = true

		for _, mod := range e.Modules {
			if err := sem.Acquire(ctx, 1); err != nil {
				wg.Wait()
				return nil, err
			}
			wg.Add(1)
			go func(m Module, b BlockInfo) {
				defer wg.Done()
				defer sem.Release(1)

				results, err := m.Check(ctx, b)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: block %d: %w", m.Name(), b.Index, err))
					return
				}
				findings = append(findings, results...)
			}(mod, info)
		}
	}

	wg.Wait()

	sortFindings(findings)
	if len(errs) > 0 {
		return findings, fmt.Errorf("%d module errors (first: %w)", len(errs), errs[0])
	}
	return findings, nil
}
