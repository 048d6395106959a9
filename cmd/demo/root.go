package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-optimizer/internal/demo"
	"alfredoptarigan/resume-optimizer/internal/logging"
	"alfredoptarigan/resume-optimizer/internal/services"
)

const defaultGuidelinesPath = "inputs/RESUME_GUIDELINES.md"

var (
	opts         demo.Options
	apiCmd       string
	converterCmd string
	noSpawn      bool
)

var rootCmd = &cobra.Command{
	Use:   "resume-demo",
	Short: "Convert a resume document and optimize it end to end",
	Long: "Starts the document converter and the optimizer API, converts the resume " +
		"document to text, sends it for optimization and saves the result.",
	SilenceUsage: true,
	RunE:         runDemo,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.ResumePath, "resume", "", "path to resume document (required)")
	f.StringVar(&opts.GuidelinesPath, "guidelines", defaultGuidelinesPath, "path to guidelines file")
	f.StringVar(&opts.JobDescriptionPath, "job-description", "", "path to job description file")
	f.StringVar(&opts.CustomPrompt, "custom-prompt", "", "additional instructions for optimization")
	f.StringVar(&opts.Provider, "provider", services.ProviderMistral, "AI provider to use")
	f.StringVar(&opts.Model, "model", "", "specific model to use")
	f.StringVar(&opts.BasePromptPath, "base-prompt", "inputs/base_prompt.md", "path to base prompt template")
	f.StringVar(&opts.OutputDir, "output-dir", "outputs", "directory for the optimized resume")
	f.BoolVar(&opts.Debug, "debug", false, "show request/response payloads and server output")
	f.StringVar(&opts.APIURL, "api-url", "http://localhost:5000", "optimizer API base URL")
	f.StringVar(&opts.ConverterURL, "converter-url", "http://localhost:5001", "document converter base URL")
	f.StringVar(&apiCmd, "api-cmd", "go run ./cmd/api", "command that starts the optimizer API")
	f.StringVar(&converterCmd, "converter-cmd", "go run ./cmd/converter", "command that starts the document converter")
	f.StringVar(&opts.ConverterDir, "converter-dir", "", "working directory for the converter command")
	f.BoolVar(&noSpawn, "no-spawn", false, "use already running servers instead of starting them")
	_ = rootCmd.MarkFlagRequired("resume")
}

func runDemo(cmd *cobra.Command, args []string) error {
	// Optional: the demo only reads MISTRAL_DEFAULT_MODEL from it.
	_ = godotenv.Load()
	logger := logging.New(opts.Debug)

	// A missing default guidelines file is not an error.
	if !cmd.Flags().Changed("guidelines") {
		if _, err := os.Stat(opts.GuidelinesPath); errors.Is(err, fs.ErrNotExist) {
			logger.WithField("path", opts.GuidelinesPath).Debug("No guidelines file, skipping")
			opts.GuidelinesPath = ""
		}
	}

	if opts.Model == "" && opts.Provider == services.ProviderMistral {
		opts.Model = os.Getenv("MISTRAL_DEFAULT_MODEL")
		if opts.Model == "" {
			opts.Model = "mistral-large-latest"
		}
	}

	opts.Spawn = !noSpawn
	opts.APICommand = strings.Fields(apiCmd)
	opts.ConverterCommand = strings.Fields(converterCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := demo.NewClient(opts.APIURL, opts.ConverterURL, &http.Client{})
	runner := demo.NewRunner(client, cmd.OutOrStdout(), logger)

	if _, err := runner.Run(ctx, opts); err != nil {
		logger.WithError(err).Error("❌ Demo failed")
		return err
	}
	return nil
}
