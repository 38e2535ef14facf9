package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/search"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"

	"github.com/jonwraymond/vizexec/remote"
	"github.com/jonwraymond/vizexec/session"
)

// DefaultNamespace is the namespace the tools are registered under.
const DefaultNamespace = "visualization"

// Errors returned by the catalog.
var (
	ErrClientRequired  = errors.New("catalog: Client is required")
	ErrToolNotFound    = errors.New("tool not found")
	ErrInvalidArgs     = errors.New("invalid tool arguments")
)

// Handler runs a tool with decoded JSON arguments.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Config configures a Catalog.
type Config struct {
	// Client launches visualization jobs.
	// Required.
	Client remote.Client

	// Logger is an optional logger passed to each generate call's session.
	Logger session.Logger

	// Namespace prefixes tool IDs.
	// Default: DefaultNamespace
	Namespace string
}

func (c *Config) validate() error {
	if c.Client == nil {
		return ErrClientRequired
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
}

// Catalog indexes, documents, and dispatches the visualization tools.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Context: Run passes ctx to the handler; Search and Describe check it first.
// - Isolation: each generate call runs in its own session, so concurrent calls
//   never cancel one another.
type Catalog struct {
	namespace string
	index     index.Index
	docs      tooldoc.Store
	client    remote.Client
	logger    session.Logger

	mu       sync.RWMutex
	tools    map[string]model.Tool
	handlers map[string]Handler
}

// New creates a Catalog and registers the visualization tools.
func New(cfg Config) (*Catalog, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	idx := index.NewInMemoryIndex(index.IndexOptions{
		Searcher: search.NewBM25Searcher(search.BM25Config{}),
	})
	var docs tooldoc.Store = tooldoc.NewInMemoryStore(tooldoc.StoreOptions{Index: idx})

	c := &Catalog{
		namespace: cfg.Namespace,
		index:     idx,
		docs:      docs,
		client:    cfg.Client,
		logger:    cfg.Logger,
		tools:     make(map[string]model.Tool),
		handlers:  make(map[string]Handler),
	}

	for _, def := range c.definitions() {
		if err := c.register(def); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ToolID returns the canonical ID for a tool name in this catalog.
func (c *Catalog) ToolID(name string) string {
	return c.namespace + ":" + name
}

// Namespace returns the namespace the tools are registered under.
func (c *Catalog) Namespace() string {
	return c.namespace
}

func (c *Catalog) register(def definition) error {
	id := c.ToolID(def.tool.Name)
	def.tool.Namespace = c.namespace
	def.tool.Tags = model.NormalizeTags(def.tool.Tags)

	if err := c.index.RegisterTool(def.tool, model.NewLocalBackend(id)); err != nil {
		return fmt.Errorf("register %s: %w", id, err)
	}
	if store, ok := c.docs.(*tooldoc.InMemoryStore); ok {
		if err := store.RegisterDoc(id, def.doc); err != nil {
			return fmt.Errorf("register doc %s: %w", id, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tools[id] = def.tool
	c.handlers[id] = def.handler
	return nil
}

// Tools returns the registered tools sorted by ID.
func (c *Catalog) Tools() []model.Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.tools))
	for id := range c.tools {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]model.Tool, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.tools[id])
	}
	return out
}

// Search finds tools matching query.
func (c *Catalog) Search(ctx context.Context, query string, limit int) ([]index.Summary, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return c.index.Search(query, limit)
}

// ListNamespaces returns the namespaces known to the index.
func (c *Catalog) ListNamespaces(ctx context.Context) ([]string, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return c.index.ListNamespaces()
}

// Describe returns documentation for a tool at the given detail level.
func (c *Catalog) Describe(ctx context.Context, id string, level tooldoc.DetailLevel) (tooldoc.ToolDoc, error) {
	if ctx.Err() != nil {
		return tooldoc.ToolDoc{}, ctx.Err()
	}
	return c.docs.DescribeTool(id, level)
}

// Run executes the tool identified by id.
func (c *Catalog) Run(ctx context.Context, id string, args map[string]any) (any, error) {
	c.mu.RLock()
	h, ok := c.handlers[id]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	if args == nil {
		args = map[string]any{}
	}
	return h(ctx, args)
}
