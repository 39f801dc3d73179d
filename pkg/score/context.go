package score

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// Framework identifies a detected frontend framework.
type Framework string

const (
	FrameworkNone    Framework = ""
	FrameworkReact   Framework = "react"
	FrameworkNext    Framework = "next"
	FrameworkVue     Framework = "vue"
	FrameworkSvelte  Framework = "svelte"
	FrameworkAngular Framework = "angular"
)

// Manifest is the subset of package.json the detectors care about.
type Manifest struct {
	Name            string            `json:"name"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// HasDependency reports whether name appears in dependencies or
// devDependencies.
func (m *Manifest) HasDependency(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// Context is the shared state accumulated across one analysis run.
//
// Earlier plugins write the optional fields; later plugins read them. The
// orchestrator creates one Context per run, fields are only ever added
// during a run, and execution is sequential, so no locking is needed.
type Context struct {
	// Ctx carries cancellation for the run.
	Ctx context.Context

	// RootDir is the project directory under inspection.
	RootDir string

	// Manifest is set by the manifest plugin when package.json parses.
	Manifest *Manifest

	// Framework is set by the framework plugin.
	Framework Framework

	// HasTypeScript is set by the typescript plugin.
	HasTypeScript bool

	// Languages is set by the languages plugin, most common first.
	Languages []string
}

// NewContext creates the per-run context for a project root.
func NewContext(ctx context.Context, rootDir string) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{Ctx: ctx, RootDir: rootDir}
}

// Path joins elem onto the project root.
func (c *Context) Path(elem ...string) string {
	return filepath.Join(append([]string{c.RootDir}, elem...)...)
}

// FileExists reports whether the named file exists under the project root
// and is not a directory.
func (c *Context) FileExists(name string) bool {
	info, err := os.Stat(c.Path(name))
	return err == nil && !info.IsDir()
}

// DirExists reports whether the named directory exists under the project root.
func (c *Context) DirExists(name string) bool {
	info, err := os.Stat(c.Path(name))
	return err == nil && info.IsDir()
}

// ReadJSON decodes the named JSON file under the project root into v.
func (c *Context) ReadJSON(name string, v any) error {
	data, err := os.ReadFile(c.Path(name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
