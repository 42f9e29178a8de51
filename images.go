package deckgen

import (
	"context"
	"fmt"

	"github.com/alnah/go-deckgen/internal/fetch"
	"github.com/alnah/go-deckgen/internal/layout"
	"github.com/alnah/go-deckgen/internal/media"
)

var (
	_ ImageFetcher       = (*fetch.Fetcher)(nil)
	_ layout.ImageSource = (*imageSource)(nil)
)

// imageSource decodes fetched bytes into embeddable pictures.
type imageSource struct {
	fetcher ImageFetcher
}

func (s *imageSource) Image(ctx context.Context, ref string) (*media.Image, error) {
	data, err := s.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, err := media.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ref, err)
	}
	return img, nil
}

// imageFetcher returns the injected fetcher or builds the HTTP one.
func (s *settings) imageFetcher() (ImageFetcher, error) {
	if s.fetcher != nil {
		return s.fetcher, nil
	}
	f, err := fetch.New(fetch.Options{
		Timeout:    s.fetchTimeout,
		BaseDir:    s.imageBaseDir,
		AllowLocal: s.allowLocal,
		CacheSize:  s.cacheSize,
		MaxBytes:   s.maxImageSize,
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}
