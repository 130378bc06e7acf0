package cmd

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Dipin-Adhikari/akshara/internal/assess"
	"github.com/Dipin-Adhikari/akshara/internal/cnn"
	"github.com/Dipin-Adhikari/akshara/internal/scoring"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a single handwriting image from the command line",
	Long:  "Analyze runs one image through the assessment pipeline without the HTTP server. Useful for checking weight files and scoring tables.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("image", "", "Path to the drawing (PNG, JPEG or GIF)")
	analyzeCmd.Flags().String("target", "", "Expected letter")
	analyzeCmd.Flags().String("language", "english", "Model language: english or nepali")
	analyzeCmd.Flags().String("scoring", "", "Path to a scoring policy YAML (defaults to the embedded tables)")
	_ = analyzeCmd.MarkFlagRequired("image")
	_ = analyzeCmd.MarkFlagRequired("target")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	imagePath, _ := cmd.Flags().GetString("image")
	target, _ := cmd.Flags().GetString("target")
	language, _ := cmd.Flags().GetString("language")
	scoringPath, _ := cmd.Flags().GetString("scoring")

	raw, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	scoringCfg, err := scoring.LoadConfig(scoringPath)
	if err != nil {
		return fmt.Errorf("load scoring config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	registry := cnn.NewRegistry(cnn.ConfigFromEnv(), logger)
	svc := assess.NewService(registry, scoring.NewScorer(scoringCfg), logger)

	result, err := svc.AnalyzeWriting(cmd.Context(), assess.Submission{
		TargetLetter: target,
		ImageBase64:  base64.StdEncoding.EncodeToString(raw),
		Language:     language,
	})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
