package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/ports"
)

func strOf(s string) *string { return &s }

func TestDestinationService_Create(t *testing.T) {
	svc := NewDestinationService(newStubDestinationRepo(), zerolog.Nop())

	dest, err := svc.Create(context.Background(), ports.CreateDestinationInput{
		Name:   "Easter Island",
		Region: "Valparaíso",
		Price:  priceOf(120),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dest.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !dest.HasPrice() {
		t.Fatalf("expected price to be set")
	}
}

func TestDestinationService_Update_PartialMerge(t *testing.T) {
	repo := newStubDestinationRepo()
	svc := NewDestinationService(repo, zerolog.Nop())
	dest, _ := repo.Create(context.Background(), &domain.Destination{
		Name:        "Chiloé",
		Description: "island",
		Region:      "Los Lagos",
		Price:       priceOf(80),
	})

	updated, err := svc.Update(context.Background(), dest.ID, ports.DestinationPatch{
		Price: priceOf(95),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Chiloé" || updated.Description != "island" || updated.Region != "Los Lagos" {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
	if updated.Price == nil || *updated.Price != 95 {
		t.Fatalf("patched price not applied: %+v", updated.Price)
	}

	// Empty patch is a no-op that returns the current row.
	same, err := svc.Update(context.Background(), dest.ID, ports.DestinationPatch{})
	if err != nil {
		t.Fatalf("empty patch: %v", err)
	}
	if *same.Price != 95 {
		t.Fatalf("empty patch changed price: %v", *same.Price)
	}
}

func TestDestinationService_Update_NotFound(t *testing.T) {
	svc := NewDestinationService(newStubDestinationRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", ports.DestinationPatch{Name: strOf("x")})
	if !errors.Is(err, domain.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestDestinationService_Delete_Twice(t *testing.T) {
	repo := newStubDestinationRepo()
	svc := NewDestinationService(repo, zerolog.Nop())
	dest, _ := repo.Create(context.Background(), &domain.Destination{Name: "Elqui"})

	if err := svc.Delete(context.Background(), dest.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), dest.ID); !errors.Is(err, domain.ErrDestinationNotFound) {
		t.Fatalf("second delete: expected ErrDestinationNotFound, got %v", err)
	}
}
