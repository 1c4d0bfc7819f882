package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// PipelineStage is the state of a recommendation request as it moves
// through the pipeline.
type PipelineStage string

const (
	PipelineStage_Received   PipelineStage = "RECEIVED"
	PipelineStage_Understood PipelineStage = "UNDERSTOOD"
	PipelineStage_Extracted  PipelineStage = "EXTRACTED"
	PipelineStage_Searched   PipelineStage = "SEARCHED"
	PipelineStage_Ranked     PipelineStage = "RANKED"
	PipelineStage_Explained  PipelineStage = "EXPLAINED"
	PipelineStage_Done       PipelineStage = "DONE"
	PipelineStage_NoMatch    PipelineStage = "NO_MATCH"
	PipelineStage_Failed     PipelineStage = "FAILED"
)

// FailureReason is the machine-readable reason attached to a FAILED pipeline.
type FailureReason string

const (
	FailureReason_None                 FailureReason = ""
	FailureReason_AssistantUnavailable FailureReason = "assistant_unavailable"
	FailureReason_Timeout              FailureReason = "timeout"
)

// stageOrder gives each non-terminal stage its position in the forward-only chain.
var stageOrder = map[PipelineStage]int{
	PipelineStage_Received:   0,
	PipelineStage_Understood: 1,
	PipelineStage_Extracted:  2,
	PipelineStage_Searched:   3,
	PipelineStage_Ranked:     4,
	PipelineStage_Explained:  5,
	PipelineStage_Done:       6,
}

// CandidateSource records which search path produced a candidate.
type CandidateSource string

const (
	CandidateSource_Vector   CandidateSource = "vector"
	CandidateSource_Fallback CandidateSource = "fallback"
	CandidateSource_Popular  CandidateSource = "popular"
)

// Candidate is a product eligible for ranking, with the relevance score
// assigned by whichever search path found it.
type Candidate struct {
	Product Product
	Score   float64
	Source  CandidateSource
}

// PipelineState is the request-scoped state threaded through the
// pipeline stages. It is owned by a single request and mutated only by
// the stage currently executing; it is never shared across requests.
type PipelineState struct {
	Query    string
	Market   Market
	Audience Audience

	Conversation []LLMChatMessage
	Intent       string

	Requirements RequirementFilter
	Candidates   []Candidate
	Selected     []uuid.UUID
	Confidence   float64
	Explanation  string

	Stage         PipelineStage
	FailureReason FailureReason
}

// NewPipelineState creates the initial state for one recommendation request.
func NewPipelineState(query string, market Market, audience Audience) *PipelineState {
	return &PipelineState{
		Query:    query,
		Market:   market,
		Audience: audience,
		Stage:    PipelineStage_Received,
	}
}

// Advance moves the pipeline to the next stage. Transitions are
// strictly forward; a backward or repeated transition is a programming
// error and is rejected.
func (s *PipelineState) Advance(next PipelineStage) error {
	from, okFrom := stageOrder[s.Stage]
	to, okTo := stageOrder[next]
	if !okFrom {
		return fmt.Errorf("cannot advance from terminal stage %s", s.Stage)
	}
	if !okTo {
		return fmt.Errorf("cannot advance to stage %s", next)
	}
	if to <= from {
		return fmt.Errorf("backward transition %s -> %s", s.Stage, next)
	}
	s.Stage = next
	return nil
}

// Fail moves the pipeline to the terminal FAILED stage with a reason.
func (s *PipelineState) Fail(reason FailureReason) {
	s.Stage = PipelineStage_Failed
	s.FailureReason = reason
}

// NoMatch moves the pipeline to the terminal NO_MATCH stage. Ranking
// and explanation are skipped; the caller renders the fixed payload.
func (s *PipelineState) NoMatch() {
	s.Stage = PipelineStage_NoMatch
	s.Selected = nil
	s.Confidence = 0
}

// SelectedCandidates returns the selected candidates in ranking order.
func (s *PipelineState) SelectedCandidates() []Candidate {
	byID := make(map[uuid.UUID]Candidate, len(s.Candidates))
	for _, c := range s.Candidates {
		byID[c.Product.ID] = c
	}
	out := make([]Candidate, 0, len(s.Selected))
	for _, id := range s.Selected {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// RecommendationResult is what the orchestrator hands back to the
// inbound adapter once the pipeline reaches a terminal stage.
type RecommendationResult struct {
	Stage         PipelineStage
	FailureReason FailureReason
	Items         []Candidate
	Explanation   string
	Confidence    float64
	Requirements  RequirementFilter
}
