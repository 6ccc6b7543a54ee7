package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/document"
	"github.com/abhisek/quizforge/internal/input"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/pipeline"
	"github.com/abhisek/quizforge/internal/questiongen"
	"github.com/abhisek/quizforge/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate question variants and write them to a DOCX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	generateCmd.Flags().StringP("input", "i", "", "File with base questions separated by --- (default: interactive)")
	generateCmd.Flags().StringP("out", "o", "", "Output DOCX path (default: ~/Documents/generated_questions_<timestamp>.docx)")
	generateCmd.Flags().String("provider", "", "LLM provider: ollama, openai, anthropic, gemini, mock")
	generateCmd.Flags().String("model", "", "Model to use with the selected provider")
	generateCmd.Flags().IntP("count", "c", 1, "Number of variants per base question")
}

func runGenerate(cmd *cobra.Command) error {
	cfg := llm.ConfigFromEnv()
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.Provider = p
	} else if os.Getenv("QUIZFORGE_LLM_PROVIDER") == "" {
		cfg = cfg.Discover(cmd.Context())
	}
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		switch cfg.Provider {
		case "ollama":
			cfg.Ollama.Model = m
		case "openai":
			cfg.OpenAI.Model = m
		case "anthropic":
			cfg.Anthropic.Model = m
		case "gemini":
			cfg.Gemini.Model = m
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()

	provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
	if err != nil {
		return err
	}

	bases, err := readBases(cmd)
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("count")
	outPath, err := resolveOutPath(cmd)
	if err != nil {
		return err
	}

	generator := questiongen.NewLLMGenerator(provider, questiongen.DefaultConfig())
	writer := document.NewWriter(document.NewResolver())
	svc := pipeline.NewService(generator, writer, s.EventRepo(), cmd.OutOrStdout())

	fmt.Fprintf(cmd.OutOrStdout(), "Generating with %s (%s)...\n", cfg.Provider, provider.ModelID())

	result, err := svc.Run(ctx, bases, count, outPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nGenerated %d question(s)", result.Generated)
	if result.Failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d failed)", result.Failed)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nDocument written to %s\n", result.Document.Path)
	if result.Document.ImageCount > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Embedded %d image(s)\n", result.Document.ImageCount)
	}
	return nil
}

func readBases(cmd *cobra.Command) ([]*input.BaseQuestion, error) {
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		return input.ReadFile(path)
	}

	reader := input.NewInteractiveReader(cmd.InOrStdin(), cmd.OutOrStdout())
	var bases []*input.BaseQuestion
	for {
		q, err := reader.Read()
		if err != nil {
			break
		}
		bases = append(bases, q)
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("no base questions entered")
	}
	return bases, nil
}

// resolveOutPath returns the --out flag, or a timestamped default under the
// user's Documents directory.
func resolveOutPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("out"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	name := fmt.Sprintf("generated_questions_%s.docx", time.Now().Format("20060102_150405"))
	return filepath.Join(home, "Documents", name), nil
}
