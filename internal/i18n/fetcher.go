package i18n

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/soundhaus/locale-service/internal/metrics"
)

// FileFetcher reads per-locale bundles from a directory of <code>.json
// files.
type FileFetcher struct {
	dir string
}

// NewFileFetcher creates a fetcher over the given directory.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{dir: dir}
}

// FetchLocale implements ContentFetcher.
func (f *FileFetcher) FetchLocale(ctx context.Context, code string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	code = NormalizeCode(code)
	if !validCode(code) {
		return nil, fmt.Errorf("invalid locale code %q", code)
	}
	data, err := os.ReadFile(filepath.Join(f.dir, code+".json"))
	if err != nil {
		metrics.RecordBundleLoad("file", "error")
		return nil, fmt.Errorf("read bundle for %q: %w", code, err)
	}
	metrics.RecordBundleLoad("file", "success")
	return data, nil
}

// validCode accepts lowercase ASCII letters only, keeping codes from
// escaping the bundle directory.
func validCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'a' || code[i] > 'z' {
			return false
		}
	}
	return true
}
