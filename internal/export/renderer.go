package export

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Table is the flat, presentation-ready form of a report.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Report pairs the structured report with its tabular form. Renderers pick
// whichever suits the format.
type Report struct {
	Name  string
	Data  any
	Table Table
}

// Renderer turns a report into a document of one format. PDF or spreadsheet
// renderers are registered from outside this package.
type Renderer interface {
	Format() string
	ContentType() string
	Extension() string
	Render(report Report) ([]byte, error)
}

// Registry holds renderers keyed by format name.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns a registry preloaded with the given renderers.
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[string]Renderer)}
	for _, renderer := range renderers {
		r.Register(renderer)
	}
	return r
}

// NewDefaultRegistry returns a registry with the built-in JSON and CSV renderers.
func NewDefaultRegistry() *Registry {
	return NewRegistry(JSONRenderer{}, CSVRenderer{})
}

// Register adds or replaces the renderer for its format.
func (r *Registry) Register(renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[strings.ToLower(renderer.Format())] = renderer
}

// Get returns the renderer for a format.
func (r *Registry) Get(format string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	return renderer, nil
}

// Formats lists the registered formats, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	formats := make([]string, 0, len(r.renderers))
	for f := range r.renderers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
