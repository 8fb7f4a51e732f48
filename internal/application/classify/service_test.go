package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/envctx/internal/domain"
	"github.com/doeshing/envctx/internal/pkg/logger"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

func TestClassifyModeResolution(t *testing.T) {
	doc := domain.Document{"isContext": false, "isExecutionEnvironments": true}

	tests := []struct {
		name       string
		configMode string
		reqMode    string
		wantMode   domain.TagMode
		wantCtx    bool
	}{
		{name: "defaults to strict", wantMode: domain.TagModeStrict},
		{name: "config selects presence", configMode: "presence", wantMode: domain.TagModePresence, wantCtx: true},
		{name: "request overrides config", configMode: "presence", reqMode: "strict", wantMode: domain.TagModeStrict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{
				ConfigProvider: stubConfigProvider{cfg: domain.Config{Preferences: domain.Preferences{TagMode: tt.configMode}}},
				Logger:         logger.NewNop(),
			}
			result, err := svc.Classify(context.Background(), Request{Document: doc, Mode: tt.reqMode})
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if result.Mode != tt.wantMode {
				t.Errorf("mode = %s, want %s", result.Mode, tt.wantMode)
			}
			if got := result.Classification.Tags.Has(domain.TagContext); got != tt.wantCtx {
				t.Errorf("isContext = %v, want %v", got, tt.wantCtx)
			}
			if !result.Classification.Tags.Has(domain.TagExecutionEnvironments) {
				t.Error("isExecutionEnvironments=true must hold in every mode")
			}
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfigProvider{err: errors.New("boom")}}
	if _, err := svc.Classify(context.Background(), Request{Document: domain.Document{}}); err == nil {
		t.Fatal("expected config error")
	}

	if _, err := svc.Classify(context.Background(), Request{Document: domain.Document{}, Mode: "fuzzy"}); err == nil {
		t.Fatal("expected mode error")
	}
}
