package domain_test

import (
	"testing"

	"github.com/doeshing/envctx/internal/domain"
)

func TestTagKeysRoundTrip(t *testing.T) {
	for _, tag := range domain.AllTags() {
		got, ok := domain.ParseTag(tag.Key())
		if !ok || got != tag {
			t.Errorf("ParseTag(%q) = %v, %v; want %v", tag.Key(), got, ok, tag)
		}
	}
	if _, ok := domain.ParseTag("isUnknown"); ok {
		t.Error("unknown key must not parse")
	}
}

func TestTagSetIsAdditive(t *testing.T) {
	set := domain.NewTagSet(domain.TagExecutionEnvironment)
	extended := set.With(domain.TagProductionEnvironment)

	if set.Has(domain.TagProductionEnvironment) {
		t.Fatal("With must not modify the receiver")
	}
	if !extended.Has(domain.TagExecutionEnvironment) || !extended.Has(domain.TagProductionEnvironment) {
		t.Fatalf("extended = %s", extended)
	}
	if got := extended.With(domain.TagExecutionEnvironment); got != extended {
		t.Fatalf("adding a present tag changed the set: %s", got)
	}
	if got := extended.String(); got != "isExecutionEnvironment,isProductionEnvironment" {
		t.Fatalf("String() = %q", got)
	}
}
