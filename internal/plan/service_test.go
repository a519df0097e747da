package plan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/llm"
	"github.com/resonancehq/climatecheck/internal/scoring"
)

func testInput() Input {
	bank := assessment.DefaultBank()
	st := assessment.NewState(bank)
	st.RecordAnswer("section1", assessment.Answer{QuestionID: "q1_1", Points: 6, Kind: assessment.AnswerSingle})
	return Input{
		Bank: bank,
		Profile: assessment.CompanyProfile{
			UserName:    "Jane Doe",
			CompanyName: "Acme Corp",
			Industry:    "Energy & Utilities",
			PrimaryGoal: "Achieve net-zero emissions by 2030",
		},
		Scores:    scoring.Compute(bank, st),
		SessionID: "session-abc",
	}
}

func plannedJSON() json.RawMessage {
	out := planOutput{
		PriorityAreas:                   []string{"Grid modernization"},
		ImmediateActions:                []string{"Audit energy usage"},
		ShortTermActions:                []string{"Pilot battery storage"},
		LongTermActions:                 []string{"Green hydrogen roadmap"},
		IndustrySpecificRecommendations: []string{"Smart metering rollout"},
		GoalSpecificRecommendations:     []string{"Interim 2027 target"},
	}
	b, _ := json.Marshal(out)
	return b
}

func TestGenerateReturnsModelPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: plannedJSON()})
	svc := NewService(mock, DefaultConfig())

	res := svc.Generate(context.Background(), testInput())

	if res.Status != StatusGenerated {
		t.Fatalf("Status = %v, want StatusGenerated", res.Status)
	}
	if res.Fallback() {
		t.Error("Fallback() = true for a generated plan")
	}
	if res.SessionID != "session-abc" {
		t.Errorf("SessionID = %q", res.SessionID)
	}
	if len(res.Plan.ShortTermActions) != 1 || res.Plan.ShortTermActions[0] != "Pilot battery storage" {
		t.Errorf("ShortTermActions = %v", res.Plan.ShortTermActions)
	}
	if len(res.Plan.GoalSpecific) != 1 {
		t.Errorf("GoalSpecific = %v", res.Plan.GoalSpecific)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1", mock.CallCount())
	}
}

func TestGenerateRequestCarriesProfileAndScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: plannedJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Generate(context.Background(), testInput())

	req := mock.Calls[0]
	if req.Schema != ActionPlanSchema {
		t.Error("request does not use the action plan schema")
	}
	body := req.Prompt
	for _, want := range []string{"Acme Corp", "Energy & Utilities", "Research & Development Capacity", "6/20"} {
		if !strings.Contains(body, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateNilProviderFallsBack(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	res := svc.Generate(context.Background(), testInput())

	if res.Status != StatusNoCredentials {
		t.Fatalf("Status = %v, want StatusNoCredentials", res.Status)
	}
	if !res.Fallback() {
		t.Error("Fallback() = false")
	}
	if res.Err != nil {
		t.Errorf("Err = %v, want nil for the no-credentials case", res.Err)
	}
	assertFallbackShape(t, res.Plan)
}

func TestGenerateProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	res := svc.Generate(context.Background(), testInput())

	if res.Status != StatusFailed {
		t.Fatalf("Status = %v, want StatusFailed", res.Status)
	}
	if res.Err == nil {
		t.Error("Err = nil, want the underlying failure")
	}
	assertFallbackShape(t, res.Plan)
}

func TestGenerateMalformedResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"priorityAreas": "not-an-array"`)})
	svc := NewService(mock, DefaultConfig())

	res := svc.Generate(context.Background(), testInput())

	if res.Status != StatusFailed {
		t.Fatalf("Status = %v, want StatusFailed", res.Status)
	}
	assertFallbackShape(t, res.Plan)
}

func TestFallbackWordingsDiffer(t *testing.T) {
	nc := noCredentialsPlan()
	fp := failurePlan()
	if nc.ImmediateActions[0] == fp.ImmediateActions[0] {
		t.Error("the two fallback plans must be distinguishable by wording")
	}
}

// assertFallbackShape checks the fixed fallback contract: only priority
// areas and immediate actions populated, the other four lists empty.
func assertFallbackShape(t *testing.T, p ActionPlan) {
	t.Helper()
	if len(p.PriorityAreas) == 0 || len(p.ImmediateActions) == 0 {
		t.Error("fallback plan missing priority areas or immediate actions")
	}
	for name, list := range map[string][]string{
		"ShortTermActions": p.ShortTermActions,
		"LongTermActions":  p.LongTermActions,
		"IndustrySpecific": p.IndustrySpecific,
		"GoalSpecific":     p.GoalSpecific,
	} {
		if len(list) != 0 {
			t.Errorf("fallback plan populated %s: %v", name, list)
		}
	}
}
