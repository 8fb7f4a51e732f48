package classify

import (
	"context"
	"fmt"

	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/ports"
)

// Service classifies decoded documents against the discriminant tags.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Logger         ports.Logger
}

// Request carries a decoded document and an optional mode override.
type Request struct {
	Document domain.Document
	Mode     string
}

// Result is the classification and the mode that produced it.
type Result struct {
	Mode           domain.TagMode
	Classification domain.Classification
}

// Classify resolves the tag mode (request, then config, then strict) and
// classifies the document.
func (s *Service) Classify(ctx context.Context, req Request) (Result, error) {
	raw := req.Mode
	if raw == "" && s.ConfigProvider != nil {
		cfg, err := s.ConfigProvider.Load(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("load config: %w", err)
		}
		raw = cfg.Preferences.TagMode
	}
	mode, err := domain.ParseTagMode(raw)
	if err != nil {
		return Result{}, err
	}

	classification := domain.Classifier{Mode: mode}.Classify(req.Document)
	if s.Logger != nil {
		s.Logger.Debug("classified document", map[string]interface{}{
			"mode": string(mode),
			"tags": classification.Tags.String(),
		})
	}
	return Result{Mode: mode, Classification: classification}, nil
}
