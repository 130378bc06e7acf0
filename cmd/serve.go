package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Dipin-Adhikari/akshara/internal/assess"
	"github.com/Dipin-Adhikari/akshara/internal/cnn"
	"github.com/Dipin-Adhikari/akshara/internal/curriculum"
	"github.com/Dipin-Adhikari/akshara/internal/llm"
	"github.com/Dipin-Adhikari/akshara/internal/media"
	"github.com/Dipin-Adhikari/akshara/internal/scoring"
	"github.com/Dipin-Adhikari/akshara/internal/server"
	"github.com/Dipin-Adhikari/akshara/internal/speech"
	"github.com/Dipin-Adhikari/akshara/internal/story"
	"github.com/Dipin-Adhikari/akshara/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the screening HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("scoring", "", "Path to a scoring policy YAML (defaults to the embedded tables)")
}

// runServe opens the store, builds the service graph, and serves HTTP.
// LLM-backed features (speech analysis, stories) and media synthesis
// degrade gracefully when their credentials are missing.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "err", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	scoringPath, _ := cmd.Flags().GetString("scoring")
	scoringCfg, err := scoring.LoadConfig(scoringPath)
	if err != nil {
		return fmt.Errorf("load scoring config: %w", err)
	}

	registry := cnn.NewRegistry(cnn.ConfigFromEnv(), logger)
	writing := assess.NewService(registry, scoring.NewScorer(scoringCfg), logger)
	progress := curriculum.NewService(st.AttemptRepo(), st.LearnerRepo(), logger)

	var synth media.Synthesizer
	if g, err := media.NewGoogleSynthesizer(ctx); err != nil {
		logger.Warn("speech synthesis unavailable", "err", err)
	} else {
		synth = g
	}
	mediaSvc := media.NewService(media.ConfigFromEnv(), synth, logger)

	var speaking server.SpeechAnalyzer
	var stories server.StorySource
	provider, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		logger.Warn("LLM provider not configured, speech analysis and stories disabled", "err", err)
	} else {
		speaking = speech.NewAnalyzer(provider, speech.DefaultAnalyzerConfig(), logger)
		stories = story.NewService(st.AttemptRepo(), st.StoryRepo(), provider, mediaSvc, story.DefaultGeneratorConfig(), logger)
	}

	srv := server.New(server.ConfigFromEnv(), writing, speaking, stories, mediaSvc, progress, st.ContentRepo(), logger)
	return srv.ListenAndServe()
}
