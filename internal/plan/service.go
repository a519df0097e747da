package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/llm"
	"github.com/resonancehq/climatecheck/internal/scoring"
)

// Input holds everything a plan request needs.
type Input struct {
	Bank    *assessment.Bank
	Profile assessment.CompanyProfile
	Scores  scoring.Scores

	// SessionID stamps the Result so the caller can drop plans generated
	// for an assessment run that has since been restarted.
	SessionID string
}

// Service turns completed assessments into action plans. A nil provider
// means no credential is configured. Stateless; safe to call from
// concurrent goroutines for independent assessments.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a plan service. Pass a nil provider when no
// credential is configured; every request then resolves to the
// no-credentials fallback.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate resolves a plan request. It never returns an error: failures
// resolve to one of the two fixed fallback plans, distinguished by the
// Status tag. Exactly one provider call is made per invocation (the
// provider stack may retry transient failures internally).
func (s *Service) Generate(ctx context.Context, input Input) Result {
	if s.provider == nil {
		return Result{
			Plan:      noCredentialsPlan(),
			Status:    StatusNoCredentials,
			SessionID: input.SessionID,
		}
	}

	p, err := s.generate(ctx, input)
	if err != nil {
		return Result{
			Plan:      failurePlan(),
			Status:    StatusFailed,
			SessionID: input.SessionID,
			Err:       err,
		}
	}

	return Result{
		Plan:      p,
		Status:    StatusGenerated,
		SessionID: input.SessionID,
	}
}

// planOutput mirrors the wire shape of ActionPlanSchema.
type planOutput struct {
	PriorityAreas                   []string `json:"priorityAreas"`
	ImmediateActions                []string `json:"immediateActions"`
	ShortTermActions                []string `json:"shortTermActions"`
	LongTermActions                 []string `json:"longTermActions"`
	IndustrySpecificRecommendations []string `json:"industrySpecificRecommendations"`
	GoalSpecificRecommendations     []string `json:"goalSpecificRecommendations"`
}

func (s *Service) generate(ctx context.Context, input Input) (ActionPlan, error) {
	ctx = llm.WithPurpose(ctx, "action-plan")

	req := llm.Request{
		System:      planSystemPrompt,
		Prompt:      buildPlanUserMessage(input.Bank, input.Profile, input.Scores),
		Schema:      ActionPlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return ActionPlan{}, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return ActionPlan{}, fmt.Errorf("parse plan response: %w", err)
	}

	return ActionPlan{
		PriorityAreas:    out.PriorityAreas,
		ImmediateActions: out.ImmediateActions,
		ShortTermActions: out.ShortTermActions,
		LongTermActions:  out.LongTermActions,
		IndustrySpecific: out.IndustrySpecificRecommendations,
		GoalSpecific:     out.GoalSpecificRecommendations,
	}, nil
}
