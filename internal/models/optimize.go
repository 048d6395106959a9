package models

// OptimizeRequest is the body of POST /optimize. Pointers distinguish an
// absent resume_content from an empty one.
type OptimizeRequest struct {
	ResumeContent  *string `json:"resume_content"`
	Guidelines     string  `json:"guidelines,omitempty"`
	JobDescription string  `json:"job_description,omitempty"`
	CustomPrompt   string  `json:"custom_prompt,omitempty"`
	AIProvider     string  `json:"ai_provider,omitempty"`
	Model          string  `json:"model,omitempty"`
}

type OptimizeResponse struct {
	Status           string `json:"status"`
	OptimizedContent string `json:"optimized_content"`
	Provider         string `json:"provider"`
	Model            string `json:"model"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
