package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	HealthPollInterval = 500 * time.Millisecond
	HealthTimeout      = 10 * time.Second
)

// Options configures one demo run.
type Options struct {
	ResumePath         string
	GuidelinesPath     string
	JobDescriptionPath string
	CustomPrompt       string
	Provider           string
	Model              string
	BasePromptPath     string
	OutputDir          string
	Debug              bool

	APIURL       string
	ConverterURL string

	// Spawn starts both servers as child processes before the run.
	Spawn            bool
	APICommand       []string
	ConverterCommand []string
	ConverterDir     string
}

// Runner chains document conversion and resume optimization.
type Runner struct {
	client *Client
	out    io.Writer
	logger *logrus.Logger
	now    func() time.Time
}

func NewRunner(client *Client, out io.Writer, logger *logrus.Logger) *Runner {
	return &Runner{
		client: client,
		out:    out,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes the demo and returns the path of the written output file.
// Spawned servers are terminated on every return path.
func (r *Runner) Run(ctx context.Context, opts Options) (string, error) {
	if opts.Spawn {
		stop, err := r.startServers(ctx, opts)
		defer stop()
		if err != nil {
			return "", err
		}
	}

	r.logger.WithField("file", opts.ResumePath).Info("📄 Converting resume document...")
	resumeText, err := r.client.Convert(ctx, opts.ResumePath)
	if err != nil {
		return "", err
	}

	payload := OptimizePayload{
		ResumeContent: resumeText,
		CustomPrompt:  opts.CustomPrompt,
		AIProvider:    opts.Provider,
		Model:         opts.Model,
	}

	if opts.GuidelinesPath != "" {
		if payload.Guidelines, err = readFile(opts.GuidelinesPath); err != nil {
			return "", err
		}
	}
	if opts.JobDescriptionPath != "" {
		if payload.JobDescription, err = readFile(opts.JobDescriptionPath); err != nil {
			return "", err
		}
	}

	if opts.Debug {
		r.printJSON("Request Payload:", payload)
	}

	r.logger.WithFields(logrus.Fields{
		"provider": opts.Provider,
		"model":    opts.Model,
	}).Info("🤖 Optimizing resume...")
	resp, raw, err := r.client.Optimize(ctx, payload)
	if err != nil {
		return "", err
	}

	path, err := WriteOutput(opts.OutputDir, resp.OptimizedContent, r.now())
	if err != nil {
		return "", err
	}

	if opts.Debug {
		r.printJSON("Response:", json.RawMessage(raw))
	} else {
		fmt.Fprintln(r.out, "\nOptimized Resume:")
		fmt.Fprintln(r.out, resp.OptimizedContent)
	}
	fmt.Fprintf(r.out, "\nOutput saved to: %s\n", path)

	return path, nil
}

// startServers launches the converter and the API and waits until both
// report healthy. The returned stop func is always non-nil.
func (r *Runner) startServers(ctx context.Context, opts Options) (func(), error) {
	var output io.Writer
	if opts.Debug {
		output = r.out
	}

	var procs []*Process
	stop := func() {
		for _, p := range procs {
			p.Stop()
		}
	}

	converter, err := StartProcess("converter", opts.ConverterCommand, opts.ConverterDir, nil, output)
	if err != nil {
		return stop, err
	}
	procs = append(procs, converter)

	var apiEnv []string
	if opts.BasePromptPath != "" {
		apiEnv = append(apiEnv, "BASE_PROMPT_PATH="+opts.BasePromptPath)
	}
	api, err := StartProcess("api", opts.APICommand, "", apiEnv, output)
	if err != nil {
		return stop, err
	}
	procs = append(procs, api)

	for _, url := range []string{opts.ConverterURL, opts.APIURL} {
		if err := r.client.WaitForHealth(ctx, url, HealthPollInterval, HealthTimeout); err != nil {
			return stop, fmt.Errorf("one or both servers failed to start: %w", err)
		}
	}

	r.logger.Info("✅ Servers ready")
	return stop, nil
}

func (r *Runner) printJSON(title string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		r.logger.WithError(err).Warn("⚠️  Failed to render JSON")
		return
	}
	fmt.Fprintf(r.out, "\n%s\n%s\n", title, data)
}

// WriteOutput stores content in dir/output_<YYYYMMDD_HHMMSS>.txt.
func WriteOutput(dir, content string, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("output_%s.txt", at.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return path, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
