// Package repository adapts stored bundles to the engine's fetch interface.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soundhaus/locale-service/internal/metrics"
)

// BundleGetter is the read side of the bundles repository, satisfied by
// both the raw repository and its circuit breaker wrapper.
type BundleGetter interface {
	Get(ctx context.Context, locale string) (*BundleDocument, error)
}

// BundleFetcher exposes stored bundles as a translation content fetcher.
type BundleFetcher struct {
	bundles BundleGetter
}

// NewBundleFetcher creates a fetcher over the bundles repository.
func NewBundleFetcher(bundles BundleGetter) *BundleFetcher {
	return &BundleFetcher{bundles: bundles}
}

// FetchLocale returns the locale's bundle data as a JSON document. A locale
// with no stored bundle is an error; the translation store degrades to its
// built-in table.
func (f *BundleFetcher) FetchLocale(ctx context.Context, code string) ([]byte, error) {
	doc, err := f.bundles.Get(ctx, code)
	if err != nil {
		metrics.RecordBundleLoad("mongodb", "error")
		return nil, err
	}
	if doc == nil {
		metrics.RecordBundleLoad("mongodb", "missing")
		return nil, fmt.Errorf("no bundle stored for locale %q", code)
	}

	data, err := json.Marshal(doc.Data)
	if err != nil {
		metrics.RecordBundleLoad("mongodb", "error")
		return nil, err
	}
	metrics.RecordBundleLoad("mongodb", "success")
	return data, nil
}
