package risk

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRecordAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		err := store.Record(ctx, &Assessment{
			ID:          "risk_" + string(rune('a'+i)),
			RecipientID: "fraud-001",
			RiskLevel:   LevelCritical,
			RiskFactors: []string{factorConfirmedPattern},
			EvaluatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	assessments, err := store.ListByRecipient(ctx, "fraud-001", time.Time{}, 3)
	if err != nil {
		t.Fatalf("ListByRecipient failed: %v", err)
	}
	if len(assessments) != 3 {
		t.Errorf("expected 3 assessments, got %d", len(assessments))
	}
	// Most recent first
	if assessments[0].ID != "risk_e" {
		t.Errorf("first assessment = %s, want risk_e", assessments[0].ID)
	}

	// Cursor excludes everything at or after the given timestamp
	older, err := store.ListByRecipient(ctx, "fraud-001", assessments[2].EvaluatedAt, 10)
	if err != nil {
		t.Fatalf("ListByRecipient with cursor failed: %v", err)
	}
	if len(older) != 2 {
		t.Fatalf("expected 2 older assessments, got %d", len(older))
	}
	if older[0].ID != "risk_b" {
		t.Errorf("first older assessment = %s, want risk_b", older[0].ID)
	}
}

func TestMemoryStoreListUnknownRecipient(t *testing.T) {
	store := NewMemoryStore()

	assessments, err := store.ListByRecipient(context.Background(), "nobody", time.Time{}, 10)
	if err != nil {
		t.Fatalf("ListByRecipient failed: %v", err)
	}
	if assessments != nil {
		t.Errorf("expected nil for unknown recipient, got %v", assessments)
	}
}

func TestMemoryStoreCopiesFactors(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := &Assessment{
		ID:          "risk_x",
		RecipientID: "legit-001",
		RiskFactors: []string{factorPaymentType},
		Source:      &Source{TxnType: "PAYMENT", TypicalAmount: 500},
	}
	if err := store.Record(ctx, original); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	original.RiskFactors[0] = "mutated"
	original.Source.TypicalAmount = 999

	stored, _ := store.ListByRecipient(ctx, "legit-001", time.Time{}, 1)
	if stored[0].RiskFactors[0] != factorPaymentType {
		t.Error("stored factors must not alias the caller's slice")
	}
	if stored[0].Source.TypicalAmount != 500 {
		t.Error("stored source must not alias the caller's struct")
	}
}
