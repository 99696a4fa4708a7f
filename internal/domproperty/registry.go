package domproperty

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// defaultStandardNames seeds the development-mode hint table.
var defaultStandardNames = map[string]string{
	"autofocus": "autoFocus",
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	mode          Mode
	logger        *slog.Logger
	standardNames map[string]string
}

// WithMode selects development or production behavior.
func WithMode(m Mode) Option { return func(o *options) { o.mode = m } }

// WithLogger sets the logger used to trace injections at debug level.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// WithStandardNames adds entries to the development-mode hint table. Keys are
// lowercased. Ignored in production mode.
func WithStandardNames(names map[string]string) Option {
	return func(o *options) {
		if o.standardNames == nil {
			o.standardNames = make(map[string]string, len(names))
		}
		for k, v := range names {
			o.standardNames[strings.ToLower(k)] = v
		}
	}
}

// Registry holds the resolved PropertyInfo of every injected property and the
// chain of custom attribute predicates. It is safe for concurrent use, though
// injection is expected to finish before lookups begin.
type Registry struct {
	mu                 sync.RWMutex
	properties         map[string]*PropertyInfo
	customAttributeFns []func(string) bool
	standardNames      map[string]string
	mode               Mode
	logger             *slog.Logger
	sealed             atomic.Bool
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	r := &Registry{
		properties: make(map[string]*PropertyInfo),
		mode:       o.mode,
		logger:     o.logger,
	}
	if !o.mode.IsProduction() {
		r.standardNames = maps.Clone(defaultStandardNames)
		maps.Copy(r.standardNames, o.standardNames)
	}
	return r
}

// Mode reports the mode the registry was created with.
func (r *Registry) Mode() Mode { return r.mode }

// Sealed reports whether further injections are rejected.
func (r *Registry) Sealed() bool { return r.sealed.Load() }

// Seal rejects further injections. It returns true if this call sealed the
// registry. An Inject running concurrently either completes before Seal
// returns or fails with ErrSealed.
func (r *Registry) Seal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.sealed.Swap(true)
}

// Inject merges cfg into the registry.
//
// Properties are processed in lexical order. The first property that is
// already registered, or whose flags combine more than one value kind, stops
// the injection with a *DuplicateRegistrationError or
// *ConflictingValueKindError. Properties processed before the failure stay
// registered.
func (r *Registry) Inject(cfg Config) error {
	verbose := !r.mode.IsProduction()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrSealed
	}

	if cfg.IsCustomAttribute != nil {
		r.customAttributeFns = append(r.customAttributeFns, cfg.IsCustomAttribute)
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Properties)) {
		if _, exists := r.properties[name]; exists {
			return &DuplicateRegistrationError{Property: name, verbose: verbose}
		}

		flags := cfg.Properties[name]
		info := decodeFlags(flags)
		if info.valueKinds() > 1 {
			return &ConflictingValueKindError{Property: name, Flags: flags, verbose: verbose}
		}

		info.AttributeName = strings.ToLower(name)
		info.PropertyName = name
		if v, ok := cfg.AttributeNames[name]; ok {
			info.AttributeName = v
		}
		if v, ok := cfg.AttributeNamespaces[name]; ok {
			info.AttributeNamespace = v
		}
		if v, ok := cfg.PropertyNames[name]; ok {
			info.PropertyName = v
		}
		if v, ok := cfg.MutationMethods[name]; ok {
			info.MutationMethod = v
		}

		r.properties[name] = &info
		r.logger.Debug("Injected DOM property.",
			"property", name,
			"attribute", info.AttributeName,
			"namespace", info.AttributeNamespace,
			"kind", info.Kind().String(),
		)
	}
	return nil
}

// MustInject panics if cfg cannot be injected. Useful during startup.
func MustInject(r *Registry, cfg Config) {
	if err := r.Inject(cfg); err != nil {
		panic(err)
	}
}

// Property returns a copy of the descriptor registered under name.
func (r *Registry) Property(name string) (PropertyInfo, bool) {
	r.mu.RLock()
	info, ok := r.properties[name]
	r.mu.RUnlock()
	if !ok {
		return PropertyInfo{}, false
	}
	return *info, true
}

// Properties returns the registered property names in lexical order.
func (r *Registry) Properties() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.properties))
}

// Snapshot returns a copy of every registered descriptor.
func (r *Registry) Snapshot() map[string]PropertyInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]PropertyInfo, len(r.properties))
	for name, info := range r.properties {
		out[name] = *info
	}
	return out
}

// Len returns the number of registered properties.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.properties)
}

// IsCustomAttribute reports whether any registered predicate accepts
// attributeName. Predicates run in registration order and the first match
// wins.
func (r *Registry) IsCustomAttribute(attributeName string) bool {
	r.mu.RLock()
	fns := r.customAttributeFns
	r.mu.RUnlock()

	for _, fn := range fns {
		if fn(attributeName) {
			return true
		}
	}
	return false
}

// PossibleStandardName returns the canonical spelling for a commonly
// miscapitalized attribute name. It always reports false in production mode.
func (r *Registry) PossibleStandardName(name string) (string, bool) {
	if r.standardNames == nil {
		return "", false
	}
	std, ok := r.standardNames[strings.ToLower(name)]
	return std, ok
}

// PossibleStandardNames returns a copy of the hint table, or nil in
// production mode.
func (r *Registry) PossibleStandardNames() map[string]string {
	return maps.Clone(r.standardNames)
}
