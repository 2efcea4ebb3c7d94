// Package catalog holds loaded cubes under their names.
//
// A Catalog is safe for concurrent use. Registering a cube replaces any cube
// of the same name as a whole; entries are never patched in place. Cubes
// handed in or out are copied, so callers cannot mutate catalog state.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/simonhull/firebird-suite/heron/internal/cube"
)

// Catalog manages loaded cube definitions
type Catalog struct {
	mu    sync.RWMutex
	cubes map[string]*cube.Cube
	log   *slog.Logger
}

// New creates an empty catalog
func New(log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{
		cubes: make(map[string]*cube.Cube),
		log:   log,
	}
}

// Register adds def to the catalog, replacing any cube with the same name
func (c *Catalog) Register(def *cube.Cube) error {
	if def == nil {
		return fmt.Errorf("cannot register nil cube")
	}
	if def.Name == "" {
		return fmt.Errorf("cannot register cube with empty name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, replaced := c.cubes[def.Name]
	c.cubes[def.Name] = def.Clone()

	c.log.Debug("cube registered", "cube", def.Name, "replaced", replaced,
		"measures", len(def.Measures), "dimensions", len(def.Dimensions))
	return nil
}

// Get returns a copy of the named cube
func (c *Catalog) Get(name string) (*cube.Cube, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.cubes[name]
	if !ok {
		return nil, false
	}
	return def.Clone(), true
}

// List returns all registered cube names in sorted order
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.cubes))
	for name := range c.cubes {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Len returns the number of registered cubes
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cubes)
}

// Remove removes a cube from the catalog
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.cubes[name]; exists {
		delete(c.cubes, name)
		return true
	}
	return false
}

// Apply merges overlay into the registered cube of the same name and stores
// the result. When no such cube exists, overlay is registered as is.
func (c *Catalog) Apply(overlay *cube.Cube) (*cube.Cube, error) {
	if overlay == nil {
		return nil, fmt.Errorf("cannot apply nil cube")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	base, ok := c.cubes[overlay.Name]
	if !ok {
		c.cubes[overlay.Name] = overlay.Clone()
		c.log.Debug("cube registered", "cube", overlay.Name, "replaced", false)
		return overlay.Clone(), nil
	}

	merged, err := cube.MergeCube(base, overlay)
	if err != nil {
		return nil, err
	}
	c.cubes[merged.Name] = merged

	changes := cube.Changes(base, overlay)
	c.log.Info("cube revised", "cube", merged.Name, "changes", len(changes))
	return merged.Clone(), nil
}

// LoadFailure records a schema file that could not be loaded
type LoadFailure struct {
	Path string
	Err  error
}

// LoadReport summarizes a directory load
type LoadReport struct {
	Loaded []string // Cube names, in file order
	Failed []LoadFailure
}

// LoadDir parses every schema file under dir and registers the valid cubes.
// A file either loads completely or not at all; one failing file does not
// prevent the others from loading. Two files defining the same cube name are
// reported as a failure for the second file.
func (c *Catalog) LoadDir(ctx context.Context, dir string, extensions []string) (*LoadReport, error) {
	files, err := SchemaFiles(dir, extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to scan schema directory: %w", err)
	}

	c.log.Debug("scanning schemas", "dir", dir, "files", len(files))

	report := &LoadReport{}
	seen := make(map[string]string, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		def, err := cube.Parse(path)
		if err != nil {
			c.log.Warn("schema rejected", "path", path, "error", err)
			report.Failed = append(report.Failed, LoadFailure{Path: path, Err: err})
			continue
		}

		if first, dup := seen[def.Name]; dup {
			err := fmt.Errorf("cube '%s' is already defined in %s", def.Name, first)
			report.Failed = append(report.Failed, LoadFailure{Path: path, Err: err})
			continue
		}
		seen[def.Name] = path

		if err := c.Register(def); err != nil {
			report.Failed = append(report.Failed, LoadFailure{Path: path, Err: err})
			continue
		}
		report.Loaded = append(report.Loaded, def.Name)
	}

	c.log.Info("schemas loaded", "dir", dir, "loaded", len(report.Loaded), "failed", len(report.Failed))
	return report, nil
}
