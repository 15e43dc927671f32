package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-screener"
)

type Config struct {
	JobDescription string          `mapstructure:"job-description"`
	Resumes        string          `mapstructure:"resumes"`
	AI             *AIConfig       `mapstructure:"ai"`
	Scoring        *ScoringConfig  `mapstructure:"scoring"`
	Prompt         *PromptConfig   `mapstructure:"prompt"`
	Identity       *IdentityConfig `mapstructure:"identity"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	// Models is the ordered fallback list; each is tried once per request.
	Models         []string `mapstructure:"models"`
	BackoffSeconds int      `mapstructure:"backoff-seconds"`
	MaxLogLength   int      `mapstructure:"max-log-length"`
}

type ScoringConfig struct {
	CautionThreshold int `mapstructure:"caution-threshold"`
	StrongThreshold  int `mapstructure:"strong-threshold"`
}

type PromptConfig struct {
	CharBudget int `mapstructure:"char-budget"`
}

// IdentityConfig extends the built-in disqualifier vocabularies.
type IdentityConfig struct {
	RoleWords  []string `mapstructure:"role-words"`
	Locations  []string `mapstructure:"locations"`
	NoiseWords []string `mapstructure:"noise-words"`
	DisableNER bool     `mapstructure:"disable-ner"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-screener scores candidate resumes against a job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the run command.
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
