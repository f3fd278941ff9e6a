package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiKey            string
	transcriptAPIURL  string
	titlePromptPath   string
	articlePromptPath string
	debugMode         bool
)

var rootCmd = &cobra.Command{
	Use:   "ytblog [video-url]",
	Short: "Turn a YouTube video into a blog post using AI",
	Long:  `Fetches a YouTube video transcript and generates a titled, long-form blog post from it.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load .env file if it exists; environment variables may also
		// be set directly.
		_ = godotenv.Load()

		// Get video URL from argument or stdin
		var reference string
		if len(args) > 0 {
			reference = args[0]
		} else {
			fmt.Print("Please enter the YouTube video URL: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				reference = strings.TrimSpace(scanner.Text())
			}
		}

		// Get API key
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			log.Fatal("API key required: use --api-key flag or ANTHROPIC_API_KEY environment variable")
		}

		// Build config overrides
		overrides := &ConfigOverrides{}
		if titlePromptPath != "" {
			overrides.TitlePromptPath = &titlePromptPath
		}
		if articlePromptPath != "" {
			overrides.ArticlePromptPath = &articlePromptPath
		}

		config, err := NewConfig(overrides)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if debugMode {
			SetDebugMode(true)
		}

		// Resolve transcript service endpoint
		if transcriptAPIURL == "" {
			transcriptAPIURL = os.Getenv("YOUTUBE_TRANSCRIPT_API_URL")
		}
		if transcriptAPIURL == "" {
			transcriptAPIURL = config.Settings.Transcript.APIURL
		}
		if transcriptAPIURL == "" {
			log.Fatal("Transcript API URL required: use --transcript-api flag, YOUTUBE_TRANSCRIPT_API_URL environment variable, or transcript.api_url in settings")
		}

		transcripts := NewTranscriptAPI(transcriptAPIURL, os.Getenv("YOUTUBE_TRANSCRIPT_API_KEY"))
		generator := NewAnthropicGenerator(apiKey, config.Settings)
		pipeline := NewPipeline(transcripts, generator, config)

		record := pipeline.Run(reference)

		// Failures are reported in the output, not via exit status.
		fmt.Println("\n" + strings.Repeat("=", 50))
		if record.Failed() {
			fmt.Println("Process finished with an error:")
			fmt.Println(record.Err)
		} else {
			fmt.Println("Final Blog Post:")
			fmt.Println(strings.Repeat("-", 50))
			fmt.Println("# " + record.Title)
			fmt.Println(record.Article)
		}
		fmt.Println(strings.Repeat("=", 50))
	},
}

func init() {
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "Anthropic API key")
	rootCmd.Flags().StringVar(&transcriptAPIURL, "transcript-api", "", "Transcript service endpoint URL")
	rootCmd.Flags().StringVar(&titlePromptPath, "title-prompt", "", "Path to custom title prompt file")
	rootCmd.Flags().StringVar(&articlePromptPath, "article-prompt", "", "Path to custom article prompt file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
