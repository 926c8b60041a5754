package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Config stores CLI arguments and flags.
type Config struct {
	input      string
	output     string
	sourceLang string
	targetLang string
	provider   string
	apiURL     string
	apiKey     string
	modelName  string
	batchSize  int
	dual       bool
	clean      bool
	cacheFile  string
	addr       string
}

func main() {
	config := &Config{}

	rootCmd := &cobra.Command{
		Use:   "nea <input> -t <language>",
		Short: "Tag-preserving subtitle translator",
		Long: `nea translates ASS/SRT/SSA subtitle files through Google web translation
or an OpenAI-compatible API while preserving inline override tags like
{\an8} and {\pos(x,y)}, keeping the output Aegisub-compatible.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A .env file is optional; flags and the real environment win.
			_ = godotenv.Load()
			if config.apiKey == "" {
				config.apiKey = os.Getenv("OPENAI_API_KEY")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.input == "" && len(args) > 0 {
				config.input = args[0]
			}
			if config.input == "" {
				_ = cmd.Help()
				return errors.New("input subtitle file is required")
			}
			if config.targetLang == "" {
				return errors.New("target language is required: use -t (see 'nea languages')")
			}
			return runTranslate(cmd.Context(), config)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&config.targetLang, "target", "t", "", "Target language code (e.g. ar, en, ja).")
	rootCmd.PersistentFlags().StringVarP(&config.sourceLang, "source", "s", "auto", "Source language code; 'auto' detects it.")
	rootCmd.PersistentFlags().StringVarP(&config.output, "output", "o", "", "Output file path; defaults to <stem>_<target><ext>.")
	rootCmd.PersistentFlags().StringVar(&config.provider, "provider", "google", "Translation provider, 'google' or 'openai'.")
	rootCmd.PersistentFlags().StringVar(&config.apiKey, "api-key", "", "API key for the openai provider; falls back to OPENAI_API_KEY.")
	rootCmd.PersistentFlags().StringVar(&config.apiURL, "api-url", "", "Custom base URL for an OpenAI-compatible API.")
	rootCmd.PersistentFlags().StringVar(&config.modelName, "model", defaultOpenAIModel, "Model name for the openai provider.")
	rootCmd.PersistentFlags().IntVar(&config.batchSize, "batch-size", 1, "Content spans per provider request; values above 1 enable batched requests.")
	rootCmd.PersistentFlags().BoolVar(&config.dual, "dual", false, "Keep the original text below the translated line in each event.")
	rootCmd.PersistentFlags().BoolVar(&config.clean, "clean", false, "Collapse stuttered character runs in dialogue before translating.")
	rootCmd.PersistentFlags().StringVar(&config.cacheFile, "cache-file", "", "JSON file used to persist the translation cache across runs.")

	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List commonly used language codes",
		Run: func(cmd *cobra.Command, args []string) {
			printLanguages()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web translation form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(config)
		},
	}
	serveCmd.Flags().StringVar(&config.addr, "addr", ":7860", "Listen address for the web form.")

	rootCmd.AddCommand(languagesCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func runTranslate(ctx context.Context, config *Config) error {
	if _, err := os.Stat(config.input); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", config.input)
		}
		return err
	}
	ext := strings.ToLower(filepath.Ext(config.input))
	if !supportedExtensions[ext] {
		return fmt.Errorf("unsupported subtitle format %q: supported formats are ASS, SRT, SSA", ext)
	}

	// Fail on a missing credential before any work is done.
	tr, err := newTranslator(config)
	if err != nil {
		return err
	}

	printInfo("loading file: " + config.input)
	doc, err := LoadSubtitleFile(config.input)
	if err != nil {
		return err
	}

	dialogue := doc.Dialogue()
	if len(dialogue) == 0 {
		return errors.New("no translatable dialogue lines in file")
	}
	printInfo(fmt.Sprintf("dialogue lines: %d", len(dialogue)))
	printInfo(fmt.Sprintf("translating to: %s", config.targetLang))

	if config.clean {
		cleanEvents(dialogue)
	}

	cache := newTranslationCache()
	if config.cacheFile != "" {
		if err := cache.LoadFile(config.cacheFile); err != nil {
			printError(err.Error())
		} else if cache.Len() > 0 {
			printInfo(fmt.Sprintf("cache primed with %d entries", cache.Len()))
		}
	}

	progress := func(done, total int) {
		fmt.Printf("\r %0.2f%% completed", float64(done)/float64(total)*100)
		if done == total {
			fmt.Println()
		}
	}

	var stats *translateStats
	if config.batchSize > 1 {
		stats, err = translateEventsBatched(ctx, dialogue, doc.LineBreak(), tr, cache, config, progress)
	} else {
		stats, err = translateEventsByLine(ctx, dialogue, doc.LineBreak(), tr, cache, config, progress)
	}
	if err != nil {
		return err
	}

	output := config.output
	if output == "" {
		output = defaultOutputPath(config.input, config.targetLang)
	}
	if err := doc.Save(output); err != nil {
		return err
	}
	if config.cacheFile != "" {
		if err := cache.SaveFile(config.cacheFile); err != nil {
			printError(err.Error())
		}
	}

	printSuccess("saved translated file: " + output)
	printInfo(fmt.Sprintf("%d content spans, %d cache hits", stats.Spans, stats.CacheHits))
	if stats.FailedBatches > 0 {
		printError(fmt.Sprintf("%d provider requests failed; original text kept for those spans", stats.FailedBatches))
	}
	return nil
}
