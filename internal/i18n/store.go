package i18n

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/soundhaus/locale-service/internal/domain/model"
)

// LoadObserver is notified when a bundle fetch or parse fails and the store
// substitutes a fallback tree. Used for event reporting; may be nil.
type LoadObserver func(code string, err error)

// Store owns the per-locale translation trees. Trees are fetched lazily,
// at most once per locale, and kept until an explicit reload replaces them.
type Store struct {
	fetcher  ContentFetcher
	observer LoadObserver

	mu    sync.RWMutex
	trees map[string]*model.Node
}

// NewStore creates a store backed by the given fetcher.
func NewStore(fetcher ContentFetcher, observer LoadObserver) *Store {
	return &Store{
		fetcher:  fetcher,
		observer: observer,
		trees:    make(map[string]*model.Node),
	}
}

// Load ensures the locale's tree is resident. A tree already in the cache is
// never re-fetched. When the fetch or parse fails the store substitutes the
// built-in table for the locale (or an empty tree), logs the failure, and
// returns nil: a missing bundle is recoverable. The only error Load returns
// is context cancellation, which callers treat as a failed switch.
func (s *Store) Load(ctx context.Context, code string) error {
	code = NormalizeCode(code)

	s.mu.RLock()
	_, loaded := s.trees[code]
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	tree, err := s.fetch(ctx, code)
	if err != nil {
		// Cancellation aborts the load without caching anything, so a
		// later attempt can retry.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().
			Err(err).
			Str("locale", code).
			Msg("Bundle load failed, substituting built-in table")
		if s.observer != nil {
			s.observer(code, err)
		}
		tree = BuiltinTable(code)
		if tree == nil {
			tree = model.EmptyTree()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another goroutine may have won the race; the first tree stays.
	if _, loaded := s.trees[code]; !loaded {
		s.trees[code] = tree
	}
	return nil
}

// fetch retrieves and parses a locale's bundle.
func (s *Store) fetch(ctx context.Context, code string) (*model.Node, error) {
	data, err := s.fetcher.FetchLocale(ctx, code)
	if err != nil {
		return nil, err
	}
	return model.ParseTree(data)
}

// EnsureFallback loads the default locale's tree so the resolver's fallback
// chain always has something to walk.
func (s *Store) EnsureFallback(ctx context.Context, defaultCode string) error {
	return s.Load(ctx, defaultCode)
}

// Tree returns the resident tree for a locale, or nil when it has not been
// loaded.
func (s *Store) Tree(code string) *model.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trees[NormalizeCode(code)]
}

// Loaded reports whether a locale's tree is resident.
func (s *Store) Loaded(code string) bool {
	return s.Tree(code) != nil
}

// Reload discards the locale's resident tree and fetches a fresh one,
// replacing the tree wholesale. Unlike Load, a fetch failure here is
// returned to the caller: an explicit reload that cannot produce a tree
// should be visible to whoever requested it. The previous tree stays
// resident on failure.
func (s *Store) Reload(ctx context.Context, code string) error {
	code = NormalizeCode(code)

	tree, err := s.fetch(ctx, code)
	if err != nil {
		if s.observer != nil {
			s.observer(code, err)
		}
		return err
	}

	s.mu.Lock()
	s.trees[code] = tree
	s.mu.Unlock()
	return nil
}
