package data

import (
	"os"
	"path/filepath"
	"testing"

	"debt-coach/internal/model"
)

func TestLoadLoansJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loans.json")
	content := `{"loans":[{"name":"card","balance":1800,"rate":19.9,"min_payment":60}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	loans, err := LoadLoansJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 1 {
		t.Fatalf("expected 1 loan, got %d", len(loans))
	}
	if loans[0].Name != "card" || loans[0].Balance != 1800 || loans[0].Rate != 19.9 || loans[0].MinPayment != 60 {
		t.Errorf("unexpected loan: %+v", loans[0])
	}
}

func TestLoadLoansJSONErrors(t *testing.T) {
	if _, err := LoadLoansJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLoansJSON(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestGroupByName(t *testing.T) {
	loans := []model.Loan{
		{Name: "card", Balance: 100},
		{Name: "car", Balance: 200},
		{Name: "card", Balance: 300},
	}
	groups := GroupByName(loans)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups["card"]) != 2 {
		t.Errorf("duplicate names should share a bucket, got %d", len(groups["card"]))
	}
}
