package model

// PromptRequest documents the inbound body. Only "prompt" is read; other keys
// are ignored.
type PromptRequest struct {
	Prompt string `json:"prompt" example:"Say hi"`
}

// GenerationRequest is the Cohere Command payload sent to Bedrock.
// Field order is the order on the wire.
type GenerationRequest struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	P           float64 `json:"p"`
	K           int     `json:"k"`
	MaxTokens   int     `json:"max_tokens"`
}

// GenerationResponse is the subset of the Cohere Command response that is consumed.
type GenerationResponse struct {
	ID          string       `json:"id,omitempty"`
	Prompt      string       `json:"prompt,omitempty"`
	Generations []Generation `json:"generations"`
}

type Generation struct {
	ID           string  `json:"id,omitempty"`
	Text         *string `json:"text"`
	FinishReason string  `json:"finish_reason,omitempty"`
}
