package profile

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreLookup(t *testing.T) {
	store := NewMemoryStore(ReferenceProfiles())
	ctx := context.Background()

	p, err := store.Lookup(ctx, "fraud-001")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if p.Name != "Vikram Malhotra" {
		t.Errorf("unexpected name: %s", p.Name)
	}
	if !p.FraudLabel {
		t.Error("fraud-001 should carry the fraud label")
	}
	if p.TxnType != TypeCashOut {
		t.Errorf("txn type = %s, want CASH_OUT", p.TxnType)
	}
	if p.TypicalAmount != 9839.64 {
		t.Errorf("typical amount = %f, want 9839.64", p.TypicalAmount)
	}
}

func TestMemoryStoreLookupNotFound(t *testing.T) {
	store := NewMemoryStore(ReferenceProfiles())

	_, err := store.Lookup(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreLookupReturnsCopy(t *testing.T) {
	store := NewMemoryStore(ReferenceProfiles())
	ctx := context.Background()

	p1, _ := store.Lookup(ctx, "legit-001")
	p1.FraudLabel = true

	p2, _ := store.Lookup(ctx, "legit-001")
	if p2.FraudLabel {
		t.Error("mutating a returned profile must not affect the store")
	}
}

func TestMemoryStoreList(t *testing.T) {
	store := NewMemoryStore(ReferenceProfiles())
	ctx := context.Background()

	all, err := store.List(ctx, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 35 {
		t.Errorf("expected 35 profiles, got %d", len(all))
	}

	fraud, err := store.List(ctx, true)
	if err != nil {
		t.Fatalf("List(fraudOnly) failed: %v", err)
	}
	if len(fraud) != 15 {
		t.Errorf("expected 15 fraudulent profiles, got %d", len(fraud))
	}
	for _, p := range fraud {
		if !p.FraudLabel {
			t.Errorf("profile %s in fraud-only list without fraud label", p.ID)
		}
	}
}

func TestMemoryStoreCount(t *testing.T) {
	store := NewMemoryStore(ReferenceProfiles())
	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 35 {
		t.Errorf("Count = %d, want 35", n)
	}
}

func TestReferenceProfilesInvariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range ReferenceProfiles() {
		if seen[p.ID] {
			t.Errorf("duplicate profile id %s", p.ID)
		}
		seen[p.ID] = true

		if p.TypicalAmount <= 0 {
			t.Errorf("%s: typical amount must be positive", p.ID)
		}
		if p.FraudLabel && p.FlaggedCount == 0 {
			t.Errorf("%s: fraudulent profile should have flagged history", p.ID)
		}
	}
}

func TestStats(t *testing.T) {
	store := NewMemoryStore(ReferenceProfiles())

	stats, err := Stats(context.Background(), store)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.Total != 35 {
		t.Errorf("Total = %d, want 35", stats.Total)
	}
	if stats.Fraudulent != 15 {
		t.Errorf("Fraudulent = %d, want 15", stats.Fraudulent)
	}
	if stats.Legitimate != 20 {
		t.Errorf("Legitimate = %d, want 20", stats.Legitimate)
	}
	if stats.FraudShare <= 0.4 || stats.FraudShare >= 0.5 {
		t.Errorf("FraudShare = %f, want 15/35", stats.FraudShare)
	}
	if stats.MaxAmount != 10000000.0 {
		t.Errorf("MaxAmount = %f, want 10000000", stats.MaxAmount)
	}
	if stats.ByTxnType[TypeCashOut] == 0 {
		t.Error("expected CASH_OUT entries in type histogram")
	}
}
