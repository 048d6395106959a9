package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type OptimizationRequest struct {
	// RequestID correlates log lines; a new UUID is assigned when empty.
	RequestID      string
	ResumeContent  string
	Guidelines     string
	JobDescription string
	CustomPrompt   string
	Provider       string
	Model          string
}

type OptimizationResult struct {
	RequestID string
	Content   string
	Provider  string
	Model     string
}

type OptimizerService interface {
	Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error)
}

type optimizerService struct {
	registry       ProviderRegistry
	promptBuilder  *PromptBuilder
	basePromptPath string
	logger         *logrus.Logger
}

func NewOptimizerService(
	registry ProviderRegistry,
	basePromptPath string,
	logger *logrus.Logger,
) OptimizerService {
	return &optimizerService{
		registry:       registry,
		promptBuilder:  NewPromptBuilder(),
		basePromptPath: basePromptPath,
		logger:         logger,
	}
}

// Optimize implements OptimizerService.
func (o *optimizerService) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := o.logger.WithField("request_id", requestID)

	basePrompt, err := LoadTemplate(o.basePromptPath)
	if err != nil {
		log.WithError(err).Error("❌ Failed to load base prompt")
		return nil, err
	}

	provider := req.Provider
	if provider == "" {
		provider = o.registry.DefaultProvider()
	}

	client, model, err := o.registry.Resolve(ctx, provider, req.Model)
	if err != nil {
		log.WithError(err).WithField("provider", provider).Warn("⚠️  Failed to resolve provider")
		return nil, err
	}

	log = log.WithFields(logrus.Fields{
		"provider": provider,
		"model":    model,
	})

	prompt := o.promptBuilder.BuildOptimizationPrompt(
		basePrompt,
		req.JobDescription,
		req.Guidelines,
		req.CustomPrompt,
		req.ResumeContent,
	)
	log.Debugf("📝 Optimization prompt length: %d characters", len(prompt))

	start := time.Now()
	content, err := client.Complete(ctx, model, SystemPrompt, prompt)
	if err != nil {
		log.WithError(err).Error("❌ Resume optimization failed")
		return nil, newError(KindOptimizationFailed, err,
			"Error optimizing resume with %s (%s): %v", provider, model, err)
	}

	log.WithField("latency", time.Since(start)).Infof("✅ Optimized resume received: %d characters", len(content))

	return &OptimizationResult{
		RequestID: requestID,
		Content:   content,
		Provider:  provider,
		Model:     model,
	}, nil
}
