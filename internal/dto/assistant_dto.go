package dto

// AssistantRequest is the body for the copywriting endpoint. Auth travels
// in the body for legacy dashboard callers, or as a bearer token.
type AssistantRequest struct {
	Prompt        string `json:"prompt"`
	Type          string `json:"type"`
	AdminPassword string `json:"adminPassword"`
	Test          bool   `json:"test"`
}

type AssistantResponse struct {
	Suggestion string `json:"suggestion"`
}
