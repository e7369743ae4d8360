package usecases

import (
	"context"
	"errors"
	"testing"
)

func TestDraftsRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	drafts := NewDrafts(newFakeSession())

	w := NewEditWizard(tenantA, UseCase{ID: 5, ApplicationID: appA, Fields: validFields(), Risks: []Risk{loadedRisk(1, "a"), loadedRisk(2, "b")}})
	if err := w.Risks.Remove("r2"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	w.Risks.Add(validRisk("c"))
	if _, err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if err := drafts.Save(ctx, w); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := drafts.Load(ctx, tenantA, w.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Current != TabRisks || got.Mode != ModeEdit || got.UseCaseID != 5 {
		t.Fatalf("Load() = %+v", got)
	}
	if got.Risks.Total() != 2 {
		t.Fatalf("Total() = %d, want 2", got.Risks.Total())
	}
	plan := got.Risks.Plan()
	if len(plan.Deletes) != 1 || plan.Deletes[0] != 2 || len(plan.Creates) != 1 {
		t.Fatalf("Plan() = %+v", plan)
	}

	if _, err := drafts.Load(ctx, tenantB, w.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("Load() from other tenant error = %v, want ErrDraftNotFound", err)
	}

	drafts.Discard(ctx, w.ID)
	if _, err := drafts.Load(ctx, tenantA, w.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("Load() after Discard error = %v, want ErrDraftNotFound", err)
	}
}
