package dto

type SubmitTurnRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}

type TurnResponse struct {
	UserMessage MessageResponse `json:"user_message"`
	AIMessage   MessageResponse `json:"ai_message"`
	ReplySource string          `json:"reply_source"`
	State       InterviewState  `json:"state"`
}

type InterviewState struct {
	Survey          SurveyResponse    `json:"survey"`
	Messages        []MessageResponse `json:"messages,omitempty"`
	CompletedProbes int               `json:"completed_probes"`
	Probes          int               `json:"probes"`
	Completed       bool              `json:"completed"`
}

type TranscribeResponse struct {
	Text string `json:"text"`
}
