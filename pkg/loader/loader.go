package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/araignee/internal/dto"
	"github.com/aretw0/araignee/internal/validator"
	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/registry"
	"github.com/aretw0/araignee/pkg/strategy"
	"github.com/mitchellh/mapstructure"
)

// Factory builds a node of one kind from its attributes.
// Factories decode attrs with Context.Decode and build nested nodes with
// Context.Node and Context.Nodes.
type Factory func(c *Context, attrs map[string]any) (ports.Node, error)

// Loader turns definitions into node trees.
type Loader struct {
	kinds   *registry.Registry[Factory]
	filters *registry.Registry[strategy.Filter]
	sorters *registry.Registry[strategy.Sorter]
	pickers *registry.Registry[func() strategy.Picker]

	logger    *slog.Logger
	recorders ports.RecorderFactory
	idGen     func() string
	clock     func() time.Time
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger threaded into every built node.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithRecorders sets the factory giving every built node its recorder.
func WithRecorders(f ports.RecorderFactory) Option {
	return func(l *Loader) {
		l.recorders = f
	}
}

// WithIDGenerator sets the generator used for nodes without an id.
func WithIDGenerator(gen func() string) Option {
	return func(l *Loader) {
		l.idGen = gen
	}
}

// WithClock sets the time source of every built node.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.clock = now
	}
}

// New returns a Loader knowing the built-in kinds and strategies.
func New(opts ...Option) *Loader {
	l := &Loader{
		kinds:   registry.New[Factory]("node kind"),
		filters: registry.New[strategy.Filter]("filter"),
		sorters: registry.New[strategy.Sorter]("sorter"),
		pickers: registry.New[func() strategy.Picker]("picker"),
	}
	for _, opt := range opts {
		opt(l)
	}

	registerBuiltins(l)
	return l
}

// Register adds or replaces the factory of a kind.
func (l *Loader) Register(kind string, f Factory) {
	l.kinds.Register(kind, f)
}

// RegisterFilter adds or replaces a named filter.
func (l *Loader) RegisterFilter(name string, f strategy.Filter) {
	l.filters.Register(name, f)
}

// RegisterSorter adds or replaces a named sorter.
func (l *Loader) RegisterSorter(name string, s strategy.Sorter) {
	l.sorters.Register(name, s)
}

// RegisterPicker adds or replaces a named picker. Pickers are stateful, so
// a new one is made for every node.
func (l *Loader) RegisterPicker(name string, newPicker func() strategy.Picker) {
	l.pickers.Register(name, newPicker)
}

// Kinds lists the registered kinds, sorted.
func (l *Loader) Kinds() []string { return l.kinds.Names() }

// Filters lists the registered filter names, sorted.
func (l *Loader) Filters() []string { return l.filters.Names() }

// Sorters lists the registered sorter names, sorted.
func (l *Loader) Sorters() []string { return l.sorters.Names() }

// Pickers lists the registered picker names, sorted.
func (l *Loader) Pickers() []string { return l.pickers.Names() }

// Definition is a loaded tree, not yet started.
type Definition struct {
	Name string
	Root ports.Node
}

// Parse decodes data in the given format and builds its tree.
func (l *Loader) Parse(data []byte, format Format) (*Definition, error) {
	raw, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return l.Build(raw)
}

// LoadFile reads the definition at path and builds its tree.
// Without a name in the file, the file name is used.
func (l *Loader) LoadFile(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	def, err := l.Parse(data, format)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = baseName(path)
	}
	return def, nil
}

// Build validates a decoded definition and builds its tree.
// Shape problems are reported together as a validator.AggregateError.
func (l *Loader) Build(raw map[string]any) (*Definition, error) {
	var doc dto.Document
	if err := decodeStrict(raw, &doc); err != nil {
		return nil, domain.InvalidArgument("definition: %v", err)
	}

	var root any
	if doc.Root != nil {
		root = doc.Root
	}
	if err := validator.ValidateTree(root, l.kinds.Has); err != nil {
		return nil, err
	}

	node, err := l.build("root", doc.Root)
	if err != nil {
		return nil, err
	}
	return &Definition{Name: doc.Name, Root: node}, nil
}

func (l *Loader) build(path string, raw map[string]any) (ports.Node, error) {
	var rec dto.NodeRecord
	if err := decodeStrict(raw, &rec); err != nil {
		return nil, &BuildError{Path: path, Err: domain.InvalidArgument("%v", err)}
	}

	factory, err := l.kinds.Lookup(rec.Kind)
	if err != nil {
		return nil, &BuildError{Path: path, Err: domain.InvalidArgument("%v", err)}
	}

	c := &Context{loader: l, path: path, id: rec.ID, kind: rec.Kind}
	attrs := rec.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	node, err := factory(c, attrs)
	if err != nil {
		var located *BuildError
		if errors.As(err, &located) {
			return nil, err
		}
		return nil, &BuildError{Path: path, Err: err}
	}
	return node, nil
}

// BuildError locates a problem found while building a node.
type BuildError struct {
	Path string
	Err  error
}

func (e *BuildError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *BuildError) Unwrap() error { return e.Err }

// Context gives a Factory access to the loader while building one node.
type Context struct {
	loader *Loader
	path   string
	id     string
	kind   string
}

// Path locates the node in the definition, e.g. root.children[0].
func (c *Context) Path() string { return c.path }

// Options returns the node options derived from the definition and the loader.
func (c *Context) Options() []core.Option {
	var opts []core.Option
	if c.id != "" {
		opts = append(opts, core.WithID(c.id))
	}
	if c.loader.logger != nil {
		opts = append(opts, core.WithLogger(c.loader.logger))
	}
	if c.loader.idGen != nil {
		opts = append(opts, core.WithIDGenerator(c.loader.idGen))
	}
	if c.loader.clock != nil {
		opts = append(opts, core.WithClock(c.loader.clock))
	}
	if c.loader.recorders != nil {
		opts = append(opts, core.WithRecorderFactory(c.loader.recorders))
	}
	return opts
}

// Decode decodes attrs into out, a pointer to an attribute struct tagged for
// mapstructure. Unknown attributes are an error.
func (c *Context) Decode(attrs map[string]any, out any) error {
	if err := decodeStrict(attrs, out); err != nil {
		return domain.InvalidArgument("%s attributes: %v", c.kind, err)
	}
	return nil
}

// Node builds the nested node stored under key.
func (c *Context) Node(key string, raw map[string]any) (ports.Node, error) {
	if raw == nil {
		return nil, nil
	}
	return c.loader.build(c.path+"."+key, raw)
}

// Nodes builds the nested nodes stored under key.
func (c *Context) Nodes(key string, raw []map[string]any) ([]ports.Node, error) {
	nodes := make([]ports.Node, 0, len(raw))
	for i, r := range raw {
		n, err := c.loader.build(fmt.Sprintf("%s.%s[%d]", c.path, key, i), r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Filters resolves filter names.
func (c *Context) Filters(names []string) ([]strategy.Filter, error) {
	filters := make([]strategy.Filter, 0, len(names))
	for _, name := range names {
		f, err := c.loader.filters.Lookup(name)
		if err != nil {
			return nil, domain.InvalidArgument("%v", err)
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// Sorter resolves a sorter name. An empty name means no sorter.
func (c *Context) Sorter(name string) (strategy.Sorter, error) {
	if name == "" {
		return nil, nil
	}
	s, err := c.loader.sorters.Lookup(name)
	if err != nil {
		return nil, domain.InvalidArgument("%v", err)
	}
	return s, nil
}

// Picker makes a new picker from its name. An empty name means the default.
func (c *Context) Picker(name string) (strategy.Picker, error) {
	if name == "" {
		return nil, nil
	}
	newPicker, err := c.loader.pickers.Lookup(name)
	if err != nil {
		return nil, domain.InvalidArgument("%v", err)
	}
	return newPicker(), nil
}

func decodeStrict(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			millisecondsToDurationHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

var durationType = reflect.TypeOf(time.Duration(0))

// millisecondsToDurationHook reads bare numbers as milliseconds.
func millisecondsToDurationHook(from, to reflect.Type, data any) (any, error) {
	if to != durationType {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.Duration(reflect.ValueOf(data).Int()) * time.Millisecond, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return time.Duration(reflect.ValueOf(data).Uint()) * time.Millisecond, nil
	case reflect.Float32, reflect.Float64:
		return time.Duration(reflect.ValueOf(data).Float() * float64(time.Millisecond)), nil
	}
	return data, nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
