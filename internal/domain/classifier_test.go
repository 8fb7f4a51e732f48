package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/envctx/internal/domain"
)

func TestClassifierModes(t *testing.T) {
	tests := []struct {
		name     string
		doc      domain.Document
		strict   []string
		presence []string
	}{
		{
			name:     "true discriminant",
			doc:      domain.Document{"isContext": true},
			strict:   []string{"isContext"},
			presence: []string{"isContext"},
		},
		{
			name:     "false discriminant",
			doc:      domain.Document{"isContext": false},
			strict:   []string{},
			presence: []string{"isContext"},
		},
		{
			name:     "non boolean discriminant",
			doc:      domain.Document{"isProductionEnvironment": "yes", "isExecutionEnvironment": true},
			strict:   []string{"isExecutionEnvironment"},
			presence: []string{"isExecutionEnvironment", "isProductionEnvironment"},
		},
		{
			name:     "null discriminant",
			doc:      domain.Document{"isStagingEnvironment": nil},
			strict:   []string{},
			presence: []string{"isStagingEnvironment"},
		},
		{
			name:     "keys are case sensitive",
			doc:      domain.Document{"IsContext": true, "iscontext": true},
			strict:   []string{},
			presence: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strict := domain.Classifier{Mode: domain.TagModeStrict}.Tags(tt.doc).Keys()
			if diff := cmp.Diff(tt.strict, strict); diff != "" {
				t.Errorf("strict mismatch (-want +got):\n%s", diff)
			}
			presence := domain.Classifier{Mode: domain.TagModePresence}.Tags(tt.doc).Keys()
			if diff := cmp.Diff(tt.presence, presence); diff != "" {
				t.Errorf("presence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPredicatesUseStrictModeForDocuments(t *testing.T) {
	if !domain.IsContext(domain.Document{"isContext": true}) {
		t.Fatal("document with isContext=true must be a context")
	}
	if domain.IsContext(domain.Document{"isContext": false}) {
		t.Fatal("document with isContext=false must not be a context in strict mode")
	}
	staging := domain.Document{
		"isExecutionEnvironment":  true,
		"isProductionEnvironment": true,
		"isStagingEnvironment":    true,
	}
	if !domain.IsExecutionEnvironment(staging) || !domain.IsProductionEnvironment(staging) || !domain.IsStagingEnvironment(staging) {
		t.Fatalf("staging document tags = %s", domain.TagsOf(staging))
	}
}

func TestClassifyNestedDocument(t *testing.T) {
	doc := domain.Document{
		"isContext":        true,
		"isProjectContext": true,
		"projectPath":      "/src/app",
		"execEnvs": domain.Document{
			"isExecutionEnvironments":     true,
			"isSomeExecutionEnvironments": true,
			"environments": []any{
				domain.Document{
					"isExecutionEnvironment":   true,
					"isEngineeringEnvironment": true,
					"isTestEnvironment":        true,
				},
				"not an object",
			},
		},
	}

	got := domain.StrictClassifier.Classify(doc)

	if !got.Tags.Has(domain.TagProjectContext) {
		t.Fatalf("top-level tags = %s", got.Tags)
	}
	if got.ExecEnvs == nil {
		t.Fatal("expected execEnvs classification")
	}
	if !got.ExecEnvs.Tags.Has(domain.TagSomeExecutionEnvironments) {
		t.Fatalf("execEnvs tags = %s", got.ExecEnvs.Tags)
	}
	if len(got.ExecEnvs.Environments) != 2 {
		t.Fatalf("expected 2 environment entries, got %d", len(got.ExecEnvs.Environments))
	}
	if !got.ExecEnvs.Environments[0].Tags.Has(domain.TagTestEnvironment) {
		t.Fatalf("first entry tags = %s", got.ExecEnvs.Environments[0].Tags)
	}
	if !got.ExecEnvs.Environments[1].Tags.Empty() {
		t.Fatalf("non-object entry must classify empty, got %s", got.ExecEnvs.Environments[1].Tags)
	}
}

func TestParseTagMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.TagMode
		wantErr bool
	}{
		{raw: "", want: domain.TagModeStrict},
		{raw: "strict", want: domain.TagModeStrict},
		{raw: " Presence ", want: domain.TagModePresence},
		{raw: "loose", wantErr: true},
	}

	for _, tt := range tests {
		got, err := domain.ParseTagMode(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTagMode(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseTagMode(%q) = %q, %v; want %q", tt.raw, got, err, tt.want)
		}
	}
}
