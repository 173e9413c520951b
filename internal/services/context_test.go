package services_test

import (
	"context"
	"testing"

	"marquee/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithUserID(ctx, 42)
	ctx = services.WithLanguage(ctx, "fa-IR")
	ctx = services.WithRequestID(ctx, "req-123")

	if id, ok := services.UserIDFromContext(ctx); !ok || id != 42 {
		t.Fatalf("unexpected user id: %v %v", id, ok)
	}
	if lang, ok := services.LanguageFromContext(ctx); !ok || lang != "fa-IR" {
		t.Fatalf("unexpected language: %v %v", lang, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithLanguage(ctx, "")
	ctx = services.WithUserID(ctx, 0)
	if _, ok := services.LanguageFromContext(ctx); ok {
		t.Fatal("expected no language value")
	}
	if _, ok := services.UserIDFromContext(ctx); ok {
		t.Fatal("expected no user value")
	}
}
