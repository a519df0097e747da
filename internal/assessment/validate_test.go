package assessment

import (
	"strings"
	"testing"
)

func TestDefaultBankIsValid(t *testing.T) {
	bank := DefaultBank()
	if err := ValidateBank(bank); err != nil {
		t.Fatalf("ValidateBank(DefaultBank()) = %v", err)
	}
	if got := bank.TotalMaxPoints(); got != 100 {
		t.Errorf("TotalMaxPoints() = %d, want 100", got)
	}
	if got := bank.TotalQuestions(); got != 17 {
		t.Errorf("TotalQuestions() = %d, want 17", got)
	}
}

func TestValidateBankRejectsBadBanks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Bank)
		wantMsg string
	}{
		{
			name:    "no sections",
			mutate:  func(b *Bank) { b.Sections = nil },
			wantMsg: "no sections",
		},
		{
			name: "duplicate section id",
			mutate: func(b *Bank) {
				b.Sections[1].ID = b.Sections[0].ID
			},
			wantMsg: "duplicate section ID",
		},
		{
			name: "duplicate question id",
			mutate: func(b *Bank) {
				b.Sections[0].Questions[1].ID = b.Sections[0].Questions[0].ID
			},
			wantMsg: "duplicate question ID",
		},
		{
			name: "empty section",
			mutate: func(b *Bank) {
				b.Sections[2].Questions = nil
			},
			wantMsg: "has no questions",
		},
		{
			name: "question without options",
			mutate: func(b *Bank) {
				b.Sections[0].Questions[0].Options = nil
			},
			wantMsg: "has no options",
		},
		{
			name: "overstated question max",
			mutate: func(b *Bank) {
				b.Sections[0].Questions[0].MaxPoints++
			},
			wantMsg: "are achievable",
		},
		{
			name: "section max off by one",
			mutate: func(b *Bank) {
				b.Sections[0].MaxPoints++
			},
			wantMsg: "its questions sum to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := DefaultBank()
			tt.mutate(bank)
			err := ValidateBank(bank)
			if err == nil {
				t.Fatal("ValidateBank accepted a broken bank")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateBankEnforcesTotalBudget(t *testing.T) {
	bank := DefaultBank()
	// Shrink one question and its section consistently so only the
	// global budget check fires.
	q := &bank.Sections[0].Questions[0]
	q.Options = []Option{{Text: "None", Points: 0}, {Text: "Some", Points: 4}}
	q.MaxPoints = 4
	bank.Sections[0].MaxPoints -= 4

	err := ValidateBank(bank)
	if err == nil {
		t.Fatal("bank with 96 total points passed validation")
	}
	if !strings.Contains(err.Error(), "sum to 96, want 100") {
		t.Errorf("unexpected error: %v", err)
	}
}
