package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildOptimizationPrompt appends the optional sections and the resume to the
// base template. Sections are emitted in a fixed order and only when non-empty.
// Inputs are inserted verbatim.
func (pb *PromptBuilder) BuildOptimizationPrompt(basePrompt, jobDescription, guidelines, customPrompt, resumeContent string) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	if jobDescription != "" {
		fmt.Fprintf(&b, "Job Description to optimize for:\n```\n%s\n```\n\n", jobDescription)
	}

	if guidelines != "" {
		fmt.Fprintf(&b, "Resume Guidelines:\n```\n%s\n```\n\n", guidelines)
		b.WriteString("Follow these guidelines strictly for formatting and structure.\n\n")
	}

	if customPrompt != "" {
		fmt.Fprintf(&b, "Custom prompt:\n%s\n\n", customPrompt)
	}

	fmt.Fprintf(&b, "Resume content:\n```\n%s\n```\n\n", resumeContent)

	return b.String()
}

// LoadTemplate reads the base prompt template from path.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newError(KindTemplateNotFound, err, "Base prompt file not found: %s", path)
		}
		return "", fmt.Errorf("failed to read base prompt: %w", err)
	}
	return string(data), nil
}
