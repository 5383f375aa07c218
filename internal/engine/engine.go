package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"risk-engine/internal/events"
	"risk-engine/internal/jsonpatch"
	"risk-engine/internal/model"
	"risk-engine/internal/riskprofile"
)

// Engine replays Portfolio View events and evaluates risk assessments. It
// is immutable after New and shared by all request workers.
type Engine struct {
	registry *events.Registry
	currency string
	now      func() time.Time
	log      zerolog.Logger
}

type Option func(*Engine)

func WithPolicy(p events.OverridePolicy) Option {
	return func(e *Engine) { e.registry = events.NewRegistry(p) }
}

// WithCurrency sets the ISO 4217 code used to format contribution advice.
func WithCurrency(code string) Option {
	return func(e *Engine) { e.currency = code }
}

// WithClock replaces the wall clock. The advice horizon depends on the
// current calendar year.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l.With().Str("component", "engine").Logger() }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		registry: events.NewRegistry(events.PolicyPin),
		currency: "USD",
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Policy() events.OverridePolicy { return e.registry.Policy() }

func (e *Engine) Currency() string { return e.currency }

// Evaluate answers a one-shot request for the two raw text inputs.
func (e *Engine) Evaluate(req model.EvaluateRequest) model.EvaluateResponse {
	in := riskprofile.ParseInput(req.RetirementAge, req.WealthGoal)
	tier := riskprofile.ComputeTier(in)
	return model.EvaluateResponse{
		RiskLevel: int(tier),
		Profile:   tier.Profile(),
		Advice:    e.Advice(in),
	}
}

// Advice computes and renders the allocation advice for in.
func (e *Engine) Advice(in riskprofile.Input) model.AdviceView {
	a := riskprofile.ComputeAllocationAdvice(in, e.now().Year())
	view := model.AdviceView{
		Kind:    string(a.Kind),
		Message: a.Message(e.currency),
	}
	if a.Kind == riskprofile.AdviceMonthlyContribution {
		view.MonthlyAmount = a.Amount.StringFixed(2)
		view.Currency = e.currency
		view.YearsToRetirement = a.YearsToRetirement
	}
	return view
}

// Process replays req's events in order, starting from a freshly mounted
// assessment. Processing stops at the first critical message; the end
// situation is the state after the last event that applied cleanly.
func (e *Engine) Process(req *model.AssessmentRequest) *model.AssessmentResponse {
	start := e.now()

	initial := events.NewAssessment()
	state := initial
	evs := req.AssessmentInstructions.Events

	var allMessages []model.AssessmentMessage
	var processedEvents []model.ProcessedEvent
	outcome := model.OutcomeSuccess

	var initialAt string
	if len(evs) > 0 {
		initialAt = evs[0].OccurredAt
	}
	end := model.SituationEnvelope{OccurredAt: initialAt}

	for i := range evs {
		ev := evs[i]
		processed := model.ProcessedEvent{Event: ev}

		handler, ok := e.registry.Get(ev.EventName)
		if !ok {
			msg := model.AssessmentMessage{
				ID:      len(allMessages),
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_EVENT",
				Message: fmt.Sprintf("Unknown event: %s", ev.EventName),
			}
			allMessages = append(allMessages, msg)
			processed.AssessmentMessageIndexes = []int{msg.ID}
			processedEvents = append(processedEvents, processed)
			outcome = model.OutcomeFailure
			break
		}

		next := state
		hasCritical := false
		record := func(msgs []model.AssessmentMessage) {
			for _, m := range msgs {
				m.ID = len(allMessages)
				allMessages = append(allMessages, m)
				processed.AssessmentMessageIndexes = append(processed.AssessmentMessageIndexes, m.ID)
				if m.Level == model.LevelCritical {
					hasCritical = true
				}
			}
		}

		record(handler.Validate(&next, &ev))
		if !hasCritical {
			record(handler.Apply(&next, &ev))
		}
		if hasCritical {
			processedEvents = append(processedEvents, processed)
			outcome = model.OutcomeFailure
			break
		}

		fwd, bwd, err := diff(state, next)
		if err != nil {
			e.log.Error().Err(err).Str("event_id", ev.EventID).Msg("patch computation failed")
		}
		processed.ForwardPatch = fwd
		processed.BackwardPatch = bwd
		processedEvents = append(processedEvents, processed)

		state = next
		end = model.SituationEnvelope{
			EventID:    ev.EventID,
			EventIndex: i,
			OccurredAt: ev.OccurredAt,
		}
	}
	end.Assessment = state

	elapsed := e.now().Sub(start)
	completed := start.Add(elapsed).UTC()

	if allMessages == nil {
		allMessages = []model.AssessmentMessage{}
	}
	if processedEvents == nil {
		processedEvents = []model.ProcessedEvent{}
	}

	tier := riskprofile.Tier(state.RiskLevel)
	resp := &model.AssessmentResponse{
		AssessmentMetadata: model.AssessmentMetadata{
			AssessmentID:          uuid.New().String(),
			TenantID:              req.TenantID,
			AssessmentStartedAt:   start.UTC().Format(time.RFC3339),
			AssessmentCompletedAt: completed.Format(time.RFC3339),
			AssessmentDurationMs:  elapsed.Milliseconds(),
			AssessmentOutcome:     outcome,
		},
		AssessmentResult: model.AssessmentResult{
			Messages:     allMessages,
			Events:       processedEvents,
			EndSituation: end,
			InitialSituation: model.InitialSituation{
				OccurredAt: initialAt,
				Assessment: initial,
			},
			Profile: tier.Profile(),
			Advice:  e.Advice(riskprofile.ParseInput(state.RetirementAge, state.WealthGoal)),
		},
	}

	e.log.Debug().
		Str("assessment_id", resp.AssessmentMetadata.AssessmentID).
		Str("tenant_id", req.TenantID).
		Int("events", len(processedEvents)).
		Str("outcome", outcome).
		Int("risk_level", state.RiskLevel).
		Msg("assessment processed")

	return resp
}

func diff(before, after model.Assessment) (fwd, bwd []jsonpatch.Op, err error) {
	a, err := jsonpatch.Document(before)
	if err != nil {
		return nil, nil, err
	}
	b, err := jsonpatch.Document(after)
	if err != nil {
		return nil, nil, err
	}
	fwd, bwd = jsonpatch.DiffBoth(a, b, "")
	return fwd, bwd, nil
}
