package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"landing_cms_backend/internal/models"
	"landing_cms_backend/internal/repositories"
)

var (
	ErrMalformedStoredConfig = errors.New("stored site config is not valid JSON")
	ErrMalformedRequestBody  = errors.New("request body is not valid JSON")
)

// SiteConfigService reads and replaces the single site config document.
type SiteConfigService interface {
	// Load returns the stored document, or the default document when nothing was saved yet.
	Load(ctx context.Context) (json.RawMessage, error)
	// Save replaces the stored document with doc. Any well-formed JSON value is accepted.
	Save(ctx context.Context, doc []byte) error
}

type siteConfigService struct {
	kvRepo     repositories.KVRepository
	key        string
	defaultDoc json.RawMessage
}

// NewSiteConfigService creates a SiteConfigService storing its document under key.
func NewSiteConfigService(kvRepo repositories.KVRepository, key string) (SiteConfigService, error) {
	defaultDoc, err := json.Marshal(models.DefaultSiteConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to encode default site config: %w", err)
	}
	return &siteConfigService{kvRepo: kvRepo, key: key, defaultDoc: defaultDoc}, nil
}

func (s *siteConfigService) Load(ctx context.Context) (json.RawMessage, error) {
	stored, err := s.kvRepo.Get(ctx, s.key)
	if errors.Is(err, repositories.ErrNotFound) {
		return s.defaultDoc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load site config: %w", err)
	}
	if !gjson.Valid(stored) {
		return nil, ErrMalformedStoredConfig
	}
	return json.RawMessage(stored), nil
}

func (s *siteConfigService) Save(ctx context.Context, doc []byte) error {
	if !gjson.ValidBytes(doc) {
		return ErrMalformedRequestBody
	}
	if err := s.kvRepo.Put(ctx, s.key, string(pretty.Ugly(doc))); err != nil {
		return fmt.Errorf("failed to save site config: %w", err)
	}
	return nil
}
