package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the embedding and LLM providers and other
options. Settings live in ~/.briefgen/config.toml.

Known keys:
  embedding.provider    ollama or openai
  embedding.model       embedding model name
  embedding.base_url    override the provider base URL
  embedding.api_key     API key (use 'set-key' to avoid shell history)
  llm.provider          ollama or openai (empty disables the llm generator)
  llm.model             LLM model name
  llm.base_url          override the provider base URL
  llm.api_key           API key (use 'set-key')
  retrieval.top_k       default retrieval depth
  audience.tone         default tone directives`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Set a secret value without echoing it",
	Long:  `Prompts for the value with terminal echo disabled, keeping API keys out of shell history.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetKey,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsSetKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

// shownKeys is the display order for settings show.
var shownKeys = []string{
	"embedding.provider",
	"embedding.model",
	"embedding.base_url",
	"embedding.api_key",
	"llm.provider",
	"llm.model",
	"llm.base_url",
	"llm.api_key",
	"retrieval.top_k",
	"audience.tone",
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	for _, key := range shownKeys {
		val, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %-20s (not set)\n", key)
			continue
		}
		if strings.HasSuffix(key, "api_key") {
			cmd.Printf("  %-20s %s\n", key, maskAPIKey(fmt.Sprintf("%v", val)))
			continue
		}
		cmd.Printf("  %-20s %v\n", key, val)
	}
	cmd.Println()
	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	key, value := args[0], args[1]
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

func runSettingsSetKey(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	key := args[0]

	cmd.Printf("Enter value for %s: ", key)
	value := readPassword()
	cmd.Println()
	if value == "" {
		return errors.New("empty value")
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Read without echo when stdin is a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
