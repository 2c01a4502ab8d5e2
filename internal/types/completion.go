package types

// PromptRole tags a turn of the prompt sent to the completion provider.
type PromptRole string

const (
	PromptRoleSystem PromptRole = "system"
	PromptRoleHuman  PromptRole = "human"
	PromptRoleAI     PromptRole = "ai"
)

type PromptMessage struct {
	Role    PromptRole `json:"role"`
	Content string     `json:"content"`
}

// CompletionRequest is everything a completion provider needs for one call.
type CompletionRequest struct {
	Messages    []PromptMessage `json:"messages"`
	Model       string          `json:"model"`
	Temperature float32         `json:"temperature"`
}
