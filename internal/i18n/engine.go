package i18n

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/soundhaus/locale-service/internal/domain/model"
	"github.com/soundhaus/locale-service/internal/metrics"
)

// MissingKeyHook is called when a lookup falls through to the literal key.
// Used for event reporting; may be nil.
type MissingKeyHook func(locale, key string)

// Options configures an Engine.
type Options struct {
	Registry    *Registry
	Store       *Store
	Site        SiteURL
	Preferences PreferenceStore
	Languages   LanguageSource
	// CacheSize and CacheTTL enable the resolution cache when CacheSize > 0.
	CacheSize int
	CacheTTL  time.Duration
	// MissingKey is invoked on every literal-key fallback.
	MissingKey MissingKeyHook
}

// Engine is the locale resolution and translation engine. One Engine exists
// per process; all state lives on the struct and every collaborator is
// injected. The active locale is written only by SwitchTo (and Initialize),
// translation trees only by the Store.
type Engine struct {
	registry    *Registry
	store       *Store
	site        SiteURL
	preferences PreferenceStore
	languages   LanguageSource
	missingKey  MissingKeyHook
	cache       *resolutionCache

	mu        sync.RWMutex
	active    string
	direction model.Direction

	// switching guards against concurrent and re-entrant switches.
	switching atomic.Bool

	listenerMu sync.RWMutex
	listeners  []ChangeListener
}

// NewEngine constructs an engine. The registry and store are required.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		registry:    opts.Registry,
		store:       opts.Store,
		site:        opts.Site,
		preferences: opts.Preferences,
		languages:   opts.Languages,
		missingKey:  opts.MissingKey,
		active:      opts.Registry.DefaultCode(),
		direction:   model.DirectionLTR,
	}
	if def, ok := opts.Registry.Get(opts.Registry.DefaultCode()); ok {
		e.direction = def.Direction
	}
	if opts.CacheSize > 0 {
		e.cache = newResolutionCache(opts.CacheSize, opts.CacheTTL)
	}
	return e
}

// Initialize detects the startup locale, loads the default tree so the
// fallback chain is always walkable, then loads and activates the detected
// locale. Fetch failures degrade to built-in tables inside the store, so
// Initialize only fails on context cancellation.
func (e *Engine) Initialize(ctx context.Context) error {
	detected := NewDetector(e.registry, e.site, e.preferences, e.languages).Detect()

	if err := e.store.EnsureFallback(ctx, e.registry.DefaultCode()); err != nil {
		return err
	}
	if err := e.store.Load(ctx, detected); err != nil {
		return err
	}

	cfg, _ := e.registry.Get(detected)

	e.mu.Lock()
	e.active = detected
	e.direction = cfg.Direction
	e.mu.Unlock()

	log.Info().
		Str("locale", detected).
		Str("direction", string(cfg.Direction)).
		Msg("Locale engine initialized")
	return nil
}

// ActiveLocale returns the code lookups currently resolve in.
func (e *Engine) ActiveLocale() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

// Direction returns the active locale's text direction.
func (e *Engine) Direction() model.Direction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.direction
}

// SitePath returns the canonical localized site path.
func (e *Engine) SitePath() string {
	if e.site == nil {
		return "/"
	}
	return e.site.Path()
}

// SupportedLocales returns the enabled locales in registration order.
func (e *Engine) SupportedLocales() []model.LocaleConfig {
	return e.registry.ListEnabled()
}

// IsSupported reports whether the code names an enabled locale.
func (e *Engine) IsSupported(code string) bool {
	return e.registry.IsSupported(code)
}

// LocaleConfig returns the configuration for an enabled locale.
func (e *Engine) LocaleConfig(code string) (model.LocaleConfig, bool) {
	return e.registry.Get(code)
}

// DefaultLocale returns the registry's default code.
func (e *Engine) DefaultLocale() string {
	return e.registry.DefaultCode()
}

// Resolve looks up a dotted key in the active locale and interpolates the
// given params. It never fails: a key missing from both the active and the
// default tree resolves to the literal key.
func (e *Engine) Resolve(key string, params map[string]string) string {
	msg, _ := e.ResolveIn(e.ActiveLocale(), key, params)
	return msg
}

// ResolveIn is Resolve with an explicit locale. It also reports where the
// template came from: active, fallback, or miss. An unsupported locale
// resolves through the default tree only.
func (e *Engine) ResolveIn(locale, key string, params map[string]string) (string, string) {
	locale = NormalizeCode(locale)
	if !e.registry.IsSupported(locale) {
		locale = e.registry.DefaultCode()
	}

	template, source := e.template(locale, key)
	metrics.RecordTranslationLookup(locale, source)

	if source == SourceMiss && e.missingKey != nil {
		e.missingKey(locale, key)
	}
	return Interpolate(template, params), source
}

// template returns the post-fallback template for a key, consulting the
// resolution cache first.
func (e *Engine) template(locale, key string) (string, string) {
	if e.cache != nil {
		if tpl, source, ok := e.cache.Get(locale, key); ok {
			return tpl, source
		}
	}

	active := e.store.Tree(locale)
	fallback := e.store.Tree(e.registry.DefaultCode())
	template, source := lookupTemplate(key, active, fallback)

	if e.cache != nil {
		e.cache.Set(locale, key, template, source)
	}
	return template, source
}

// OnChange registers a listener that receives one notification per
// completed switch.
func (e *Engine) OnChange(listener ChangeListener) {
	e.listenerMu.Lock()
	defer e.listenerMu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// SwitchTo changes the active locale. It reports true when the switch
// completed. Unsupported codes, the already-active code, and calls that
// arrive while another switch is running are silent no-ops: (false, nil).
// A load aborted by context cancellation rolls the active locale back and
// returns the error.
func (e *Engine) SwitchTo(ctx context.Context, code string) (bool, error) {
	code = NormalizeCode(code)
	if !e.registry.IsSupported(code) {
		log.Debug().Str("locale", code).Msg("Ignoring switch to unsupported locale")
		metrics.RecordLocaleSwitch("unsupported")
		return false, nil
	}
	if e.ActiveLocale() == code {
		metrics.RecordLocaleSwitch("noop")
		return false, nil
	}
	if !e.switching.CompareAndSwap(false, true) {
		metrics.RecordLocaleSwitch("rejected")
		return false, nil
	}
	defer e.switching.Store(false)

	// Re-check under the guard: a concurrent switch may have landed here.
	previous := e.ActiveLocale()
	if previous == code {
		metrics.RecordLocaleSwitch("noop")
		return false, nil
	}

	if err := e.store.Load(ctx, code); err != nil {
		// The active locale was never changed; verify the rollback target
		// is still sound and force the default when it is not.
		e.recoverTo(previous)
		log.Error().
			Err(err).
			Str("locale", code).
			Msg("Locale switch aborted, keeping previous locale")
		metrics.RecordLocaleSwitch("failed")
		return false, err
	}

	cfg, _ := e.registry.Get(code)

	e.mu.Lock()
	e.active = code
	e.direction = cfg.Direction
	e.mu.Unlock()

	if e.cache != nil {
		e.cache.Clear()
	}

	if e.preferences != nil {
		if err := e.preferences.SetPreference(code); err != nil {
			log.Warn().Err(err).Str("locale", code).Msg("Failed to persist locale preference")
		}
	}

	if e.site != nil {
		e.site.ReplacePath(e.localizePath(e.site.Path(), code))
	}

	e.notify(Change{Code: code, Config: cfg, Direction: cfg.Direction})
	metrics.RecordLocaleSwitch("success")

	log.Info().
		Str("from", previous).
		Str("to", code).
		Msg("Locale switched")
	return true, nil
}

// recoverTo restores the engine to the previous locale after a failed
// switch. When the previous locale is no longer usable the engine falls
// back to the default unconditionally and notifies listeners, so the site
// is never left in a mixed state.
func (e *Engine) recoverTo(previous string) {
	if e.registry.IsSupported(previous) && e.store.Loaded(previous) {
		return
	}

	def := e.registry.DefaultCode()
	cfg, _ := e.registry.Get(def)

	e.mu.Lock()
	e.active = def
	e.direction = cfg.Direction
	e.mu.Unlock()

	if e.cache != nil {
		e.cache.Clear()
	}

	log.Error().
		Str("previous", previous).
		Str("default", def).
		Msg("Rollback target unusable, forcing default locale")
	e.notify(Change{Code: def, Config: cfg, Direction: cfg.Direction})
}

// notify delivers one change notification to every listener.
func (e *Engine) notify(change Change) {
	e.listenerMu.RLock()
	listeners := make([]ChangeListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.listenerMu.RUnlock()

	for _, l := range listeners {
		l(change)
	}
}

// localizePath rewrites a site path for the target locale: an existing
// locale segment is replaced, the default locale carries no segment, and
// any other locale is prefixed.
func (e *Engine) localizePath(path, code string) string {
	rest := strings.TrimPrefix(path, "/")
	if seg := firstPathSegment(path); len(seg) == 2 && e.registry.IsSupported(seg) {
		rest = strings.TrimPrefix(rest[len(seg):], "/")
	}

	if code == e.registry.DefaultCode() {
		return "/" + rest
	}
	if rest == "" {
		return "/" + code
	}
	return "/" + code + "/" + rest
}

// ReloadLocale refetches a locale's bundle, replacing the resident tree,
// and clears the resolution cache so stale templates cannot be served.
func (e *Engine) ReloadLocale(ctx context.Context, code string) error {
	if err := e.store.Reload(ctx, code); err != nil {
		return err
	}
	if e.cache != nil {
		e.cache.Clear()
	}
	return nil
}

// CacheStats reports resolution cache hits, misses, and size. It returns
// zeros when the cache is disabled.
func (e *Engine) CacheStats() (hits, misses int64, size int) {
	if e.cache == nil {
		return 0, 0, 0
	}
	return e.cache.Stats()
}

// Close releases the engine's background resources.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Stop()
	}
}

// LocaleFromHeader picks the best supported locale from an Accept-Language
// header value, falling back to the default. Quality values are ignored;
// the header's order is taken as the preference order.
func (e *Engine) LocaleFromHeader(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := part
		if i := strings.IndexByte(tag, ';'); i >= 0 {
			tag = tag[:i]
		}
		if base := BaseSubtag(tag); base != "" && e.registry.IsSupported(base) {
			return base
		}
	}
	return e.registry.DefaultCode()
}
