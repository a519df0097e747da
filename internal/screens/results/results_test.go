package results

import (
	"testing"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/plan"
)

func newTestScreen() (*Screen, *assessment.State) {
	bank := assessment.DefaultBank()
	st := assessment.NewState(bank)
	st.SetProfile(assessment.CompanyProfile{
		UserName:    "Jane Doe",
		CompanyName: "Acme Corp",
		Industry:    "Energy & Utilities",
	})
	for _, sec := range bank.Sections {
		for _, q := range sec.Questions {
			st.RecordAnswer(sec.ID, assessment.SingleAnswer(q, q.Options[len(q.Options)-1].Text))
		}
	}
	return New(st, plan.NewService(nil, plan.DefaultConfig())), st
}

func TestExportsDisabledWhilePlanPending(t *testing.T) {
	s, _ := newTestScreen()

	if !s.menu.Items[0].Disabled || !s.menu.Items[1].Disabled {
		t.Error("PDF and email actions enabled before the plan resolved")
	}
	if s.menu.Items[2].Disabled || s.menu.Items[3].Disabled {
		t.Error("restart and quit should always be available")
	}
}

func TestPlanArrivalEnablesExports(t *testing.T) {
	s, _ := newTestScreen()

	msg := s.requestPlan()()
	s.Update(msg)

	if !s.planReady {
		t.Fatal("planReady = false after delivery")
	}
	if s.planResult.Status != plan.StatusNoCredentials {
		t.Errorf("Status = %v, want StatusNoCredentials for a nil provider", s.planResult.Status)
	}
	if s.menu.Items[0].Disabled || s.menu.Items[1].Disabled {
		t.Error("exports still disabled after the plan resolved")
	}
}

func TestStalePlanResultDropped(t *testing.T) {
	s, st := newTestScreen()

	pending := s.requestPlan()
	st.Reset()

	s.Update(pending())

	if s.planReady {
		t.Error("result for a restarted session was accepted")
	}
}

func TestHighScoreClassifiesLeader(t *testing.T) {
	s, _ := newTestScreen()

	// Every question answered with its best single option; the one
	// multi-select contributes only its top single option, so the total
	// lands just under the full budget.
	if s.level.Label != "Climate Tech Leader" {
		t.Errorf("level = %q, want Climate Tech Leader", s.level.Label)
	}
}
