// Package fetch retrieves image bytes for slide backgrounds and illustrations.
//
// References may be http(s) URLs, data: URIs, or local paths (optionally
// prefixed with file://) resolved against a base directory. Successful
// results are kept in an LRU cache so a background image repeated on every
// page of a deck is downloaded once.
package fetch

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alnah/go-deckgen/internal/fileutil"
)

// Defaults for fetching.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultMaxBytes  = 20 << 20
	DefaultCacheSize = 64
	userAgent        = "deckgen/1 (+image fetch)"
)

// Sentinel errors for fetch operations.
var (
	ErrEmptyReference = errors.New("empty image reference")
	ErrStatus         = errors.New("unexpected HTTP status")
	ErrTooLarge       = errors.New("image exceeds size limit")
	ErrLocalDisabled  = errors.New("local file references are disabled")
	ErrInvalidDataURI = errors.New("invalid data URI")
)

// Options configures a Fetcher. Zero values select defaults.
type Options struct {
	Timeout    time.Duration
	MaxBytes   int64
	CacheSize  int
	BaseDir    string // resolves relative local paths
	AllowLocal bool   // permits file paths and file:// URLs
}

// Fetcher retrieves image bytes with a bounded timeout.
// It is safe for concurrent use.
type Fetcher struct {
	client     *resty.Client
	cache      *lru.Cache[string, []byte]
	maxBytes   int64
	baseDir    string
	allowLocal bool
}

// New creates a Fetcher.
func New(opts Options) (*Fetcher, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, []byte](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating image cache: %w", err)
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "image/*").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetResponseBodyLimit(int(min(opts.MaxBytes, math.MaxInt32)))

	return &Fetcher{
		client:     client,
		cache:      cache,
		maxBytes:   opts.MaxBytes,
		baseDir:    opts.BaseDir,
		allowLocal: opts.AllowLocal,
	}, nil
}

// Fetch returns the bytes behind ref. Errors are never fatal to callers that
// can degrade; they carry enough context for a log line.
func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptyReference
	}

	if data, ok := f.cache.Get(ref); ok {
		return data, nil
	}

	var (
		data []byte
		err  error
	)
	switch {
	case fileutil.IsURL(ref):
		data, err = f.fetchHTTP(ctx, ref)
	case strings.HasPrefix(ref, "data:"):
		data, err = decodeDataURI(ref)
	default:
		data, err = f.readLocal(ref)
	}
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), f.maxBytes)
	}

	f.cache.Add(ref, data)
	return data, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, ref string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(ref)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return nil, fmt.Errorf("%w: %s body over %d bytes", ErrTooLarge, ref, f.maxBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", ref, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s returned %d", ErrStatus, ref, resp.StatusCode())
	}
	return resp.Body(), nil
}

func (f *Fetcher) readLocal(ref string) ([]byte, error) {
	if !f.allowLocal {
		return nil, fmt.Errorf("%w: %s", ErrLocalDisabled, ref)
	}

	path := ref
	if strings.HasPrefix(ref, "file://") {
		u, err := url.Parse(ref)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ref, err)
		}
		path = u.Path
	}
	if !filepath.IsAbs(path) && f.baseDir != "" {
		path = filepath.Join(f.baseDir, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ref, err)
	}
	if info.Size() > f.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, info.Size(), f.maxBytes)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- local references are opt-in
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ref, err)
	}
	return data, nil
}

// decodeDataURI handles data:[<mediatype>][;base64],<data>.
func decodeDataURI(ref string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing comma", ErrInvalidDataURI)
	}
	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
		return data, nil
	}
	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return []byte(decoded), nil
}
