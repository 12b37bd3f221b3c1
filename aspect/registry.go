package aspect

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/ardnew/calltrace/log"
)

// TypeAnnotated is implemented by types that carry their own type-level
// attachment. See [Registry.Annotate].
type TypeAnnotated interface {
	CallTrace() Config
}

// MethodAnnotated is implemented by types that carry member-level
// attachments, keyed by method name. See [Registry.Annotate].
type MethodAnnotated interface {
	CallTraceMethods() map[string]Config
}

// Registry holds the attachments consulted by an [Interceptor].
//
// Attachments live at two levels: on a declaring type, applying to all of its
// methods, and on an individual method. Resolution prefers the type level
// wholesale; flags are never merged across levels.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	types   map[string]Config
	methods map[Site]Config
	rules   []Rule
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		types:   make(map[string]Config),
		methods: make(map[Site]Config),
	}
}

// AttachType attaches cfg to every method of the named type, replacing any
// previous type-level attachment.
func (r *Registry) AttachType(name string, cfg Config) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types[name] = cfg

	return r
}

// AttachMethod attaches cfg to site, replacing any previous member-level
// attachment.
func (r *Registry) AttachMethod(site Site, cfg Config) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.methods[site] = cfg

	return r
}

// AddRule appends a pointcut rule. Rules are consulted after explicit
// attachments of the same level, in the order they were added.
func (r *Registry) AddRule(rule Rule) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule)

	return r
}

// Annotate attaches the configuration declared by v itself, using the
// dynamic type name of v as the declaring type.
// It reports whether v declared anything.
func (r *Registry) Annotate(v any) bool {
	var declared bool

	if ta, ok := v.(TypeAnnotated); ok {
		r.AttachType(SiteOf(v, "").Type, ta.CallTrace())

		declared = true
	}

	if ma, ok := v.(MethodAnnotated); ok {
		for method, cfg := range ma.CallTraceMethods() {
			r.AttachMethod(SiteOf(v, method), cfg)
		}

		declared = true
	}

	return declared
}

// Detach removes the attachment named by site: the member-level attachment
// when site has a method, otherwise the type-level attachment of site.Type.
func (r *Registry) Detach(site Site) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if site.Method == "" {
		delete(r.types, site.Type)

		return
	}

	delete(r.methods, site)
}

// Resolve returns the effective configuration for site and whether the site
// is attached at all.
//
// Resolution order:
//  1. type-level attachment on site.Type
//  2. first type-scoped rule matching site.Type
//  3. member-level attachment on site
//  4. first method-scoped rule matching site
func (r *Registry) Resolve(site Site) (Config, bool) {
	if r == nil {
		return Config{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if cfg, ok := r.types[site.Type]; ok && site.Type != "" {
		return cfg, true
	}

	if cfg, ok := r.match(ScopeType, site); ok {
		return cfg, true
	}

	if cfg, ok := r.methods[site]; ok {
		return cfg, true
	}

	return r.match(ScopeMethod, site)
}

// match returns the configuration of the first rule in scope matching site.
// The caller must hold the read lock.
func (r *Registry) match(scope Scope, site Site) (Config, bool) {
	for _, rule := range r.rules {
		if rule.Scope != scope {
			continue
		}

		ok, err := rule.Match(site)
		if err != nil {
			log.Warn("rule skipped", slog.Any("error", err))

			continue
		}

		if ok {
			return rule.Config, true
		}
	}

	return Config{}, false
}

// Sites returns the sorted names of all explicit attachments: type names for
// type-level attachments and "Type.Method" for member-level ones.
func (r *Registry) Sites() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Collect(maps.Keys(r.types))
	for site := range r.methods {
		names = append(names, site.String())
	}

	slices.Sort(names)

	return names
}

// Rules returns a copy of the registered rules.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.rules)
}
