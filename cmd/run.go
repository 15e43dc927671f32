package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recruiterlab/resume-screener/internal/ai/gemini"
	"github.com/recruiterlab/resume-screener/internal/assess"
	"github.com/recruiterlab/resume-screener/internal/document"
	"github.com/recruiterlab/resume-screener/internal/identity"
	"github.com/recruiterlab/resume-screener/internal/identity/prose"
	"github.com/recruiterlab/resume-screener/internal/logger"
	"github.com/recruiterlab/resume-screener/internal/screening"
	"github.com/recruiterlab/resume-screener/internal/secrets"
)

const (
	PromptShowSummary   = "Show summary"
	PromptFollowUp      = "Generate follow-up for a candidate"
	PromptRecordsToFile = "Dump records to file"
	PromptExit          = "Exit"
	PromptBack          = "back"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowSummary, PromptFollowUp, PromptRecordsToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the resume-screener main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("jd", "", "path to the job description file (txt/pdf/docx)")
	runCmd.Flags().String("resumes", "", "directory with candidate resumes")
	runCmd.Flags().BoolP("no-prompt", "y", false, "print results and exit without the interactive action loop")

	viper.BindPFlag("job-description", runCmd.Flags().Lookup("jd"))
	viper.BindPFlag("resumes", runCmd.Flags().Lookup("resumes"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-screener", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.JobDescription == "" {
		logger.Fatal("job description path is required under job-description or via --jd")
	}

	if config.Resumes == "" {
		logger.Fatal("resumes directory is required under resumes or via --resumes")
	}

	apiKey, err := resolveAPIKey(config)
	if err != nil {
		logger.Fatal(
			"loading gemini api key",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE environment variable or the 'ai.gemini.api-key-file' key in the configuration file"),
		)
	}

	pipeline, err := buildPipeline(ctx, config, apiKey, logger)
	if err != nil {
		logger.Fatal("building the screening pipeline", zap.Error(err))
	}

	jd, err := document.LoadFile(config.JobDescription)
	if err != nil {
		logger.Fatal("loading job description", zap.Error(err))
	}

	docs, err := document.LoadDir(config.Resumes, logger)
	if err != nil {
		logger.Fatal("loading resumes", zap.Error(err))
	}

	if len(docs) == 0 {
		logger.Info("exiting", zap.String("reason", "no resumes found"))
		return
	}

	logger.Info("starting the screening",
		zap.String("job_description", jd.ID),
		zap.Int("resumes", len(docs)),
	)

	records := pipeline.ProcessBatch(ctx, jd.Text, docs)

	for _, record := range records.Items {
		printRecord(record)
	}

	printSummary(pipeline.Summary())

	if cmd.Flag("no-prompt").Value.String() == "true" {
		return
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, pipeline, jd.Text, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, pipeline *screening.Pipeline, jdText string, logger *zap.Logger) error {
	switch action {
	case PromptShowSummary:
		printSummary(pipeline.Summary())
		return nil
	case PromptFollowUp:
		return followUp(ctx, pipeline, jdText, logger)
	case PromptRecordsToFile:
		filename, err := pipeline.Records().DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump records to file: %w", err)
		}
		logger.Info("dumping records to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func followUp(ctx context.Context, pipeline *screening.Pipeline, jdText string, logger *zap.Logger) error {
	records := pipeline.Records()

	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(candidateItems(records), PromptBack),
	}

	// Selection is recovered by index, not by parsing the rendered item:
	// document identifiers are filenames and may contain spaces.
	index, _, err := candidatePrompt.Run()
	if err != nil {
		return err
	}

	record := recordAt(records, index)
	if record == nil {
		return nil
	}

	message, err := pipeline.FollowUp(ctx, jdText, record)
	if err != nil {
		return fmt.Errorf("generating follow-up: %w", err)
	}

	fmt.Printf("\n--- Follow-up for %s ---\n%s\n", record.Identity.Name, message)

	logger.Info("follow-up generated",
		zap.String("document_id", record.DocumentID),
		zap.String("candidate", record.Identity.Name),
	)

	return nil
}

// candidateItems renders one selectable line per record.
func candidateItems(records *screening.Records) []string {
	items := make([]string, 0, records.Len())
	for _, record := range records.Items {
		items = append(items, fmt.Sprintf("%s %s / %d%%",
			record.DocumentID, record.Identity.Name, record.Assessment.Score,
		))
	}
	return items
}

// recordAt maps a selection index back to its record. The index past the last
// record is the back entry and yields nil.
func recordAt(records *screening.Records, index int) *screening.CandidateRecord {
	if index < 0 || index >= records.Len() {
		return nil
	}
	return records.Items[index]
}

func buildPipeline(ctx context.Context, config *Config, apiKey string, logger *zap.Logger) (*screening.Pipeline, error) {
	if config.AI == nil || config.AI.Gemini == nil {
		return nil, errors.New("ai.gemini configuration is required")
	}

	geminiCfg := config.AI.Gemini

	backoff := time.Duration(geminiCfg.BackoffSeconds) * time.Second

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.Strings("models", geminiCfg.Models),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, geminiCfg.Models, backoff, genLogger)
	if err != nil {
		return nil, fmt.Errorf("building gemini generator: %w", err)
	}

	requester := assess.NewRequester(generator, &assess.Config{
		CharBudget:   promptCharBudget(config),
		Thresholds:   scoringThresholds(config),
		MaxLogLength: geminiCfg.MaxLogLength,
	}, logger)

	resolver := identity.NewResolver(identityConfig(config), personRecognizer(config), logger)

	return screening.NewPipeline(resolver, requester, logger), nil
}

func resolveAPIKey(config *Config) (string, error) {
	keyFile := ""
	if config.AI != nil && config.AI.Gemini != nil {
		keyFile = strings.TrimSpace(config.AI.Gemini.APIKeyFile)
	}

	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	return secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  keyFile,
		Value: os.Getenv("GEMINI_API_KEY"),
	})
}

func scoringThresholds(config *Config) assess.Thresholds {
	thresholds := assess.DefaultThresholds()
	if config.Scoring == nil {
		return thresholds
	}
	if config.Scoring.CautionThreshold > 0 {
		thresholds.Caution = config.Scoring.CautionThreshold
	}
	if config.Scoring.StrongThreshold > 0 {
		thresholds.Strong = config.Scoring.StrongThreshold
	}
	return thresholds
}

func promptCharBudget(config *Config) int {
	if config.Prompt == nil {
		return 0
	}
	return config.Prompt.CharBudget
}

func identityConfig(config *Config) *identity.Config {
	vocab := identity.DefaultVocabulary()
	if config.Identity != nil {
		vocab.Merge(config.Identity.RoleWords, config.Identity.Locations, config.Identity.NoiseWords)
	}
	return &identity.Config{Vocabulary: vocab, Limits: identity.DefaultLimits()}
}

func personRecognizer(config *Config) identity.PersonRecognizer {
	if config.Identity != nil && config.Identity.DisableNER {
		return nil
	}
	return prose.NewRecognizer()
}

func printRecord(record *screening.CandidateRecord) {
	fmt.Println("---")
	fmt.Printf("%s (%s)\n", record.Identity.Name, record.DocumentID)
	fmt.Println(record.Assessment.Raw)
	fmt.Printf("=> %d%% / %s\n", record.Assessment.Score, record.Assessment.Tier.Label())
}

func printSummary(rows []screening.SummaryRow) {
	fmt.Println("\n--- Summary of all candidates ---")
	for _, row := range rows {
		fmt.Printf("%3d%%  %-30s %s\n", row.Score, row.Name, row.Email)
	}
}
