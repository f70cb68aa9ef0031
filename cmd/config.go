package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tbreslin/cadence/internal/config"
	"github.com/tbreslin/cadence/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the session pattern and durations",
	Long:  `Show the current configuration, or change the session pattern and per-mode durations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := appConfig.ToPattern()

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("  Pattern:      %s\n", domain.PatternString(pattern))
		fmt.Println()
		fmt.Printf("    Focus:        %d min\n", appConfig.Durations.FocusMinutes)
		fmt.Printf("    Short break:  %d min\n", appConfig.Durations.ShortBreakMinutes)
		fmt.Printf("    Long break:   %d min\n", appConfig.Durations.LongBreakMinutes)
		fmt.Println()
		cueStatus := "off"
		if appConfig.Cues.Enabled {
			cueStatus = "on"
			if appConfig.Cues.Notify {
				cueStatus = "on (with notifications)"
			}
		}
		fmt.Printf("    Cues:         %s\n", cueStatus)
		fmt.Println()
		fmt.Println("  Change settings with:")
		fmt.Println("    cadence config pattern \"focus, short, focus, long\"")
		fmt.Println("    cadence config duration focus 25")
		fmt.Println()
		return nil
	},
}

var configPatternCmd = &cobra.Command{
	Use:   "pattern <tokens>",
	Short: "Set the session pattern from comma-separated tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := domain.ParsePattern(args[0])
		if err != nil {
			if errors.Is(err, domain.ErrEmptyPattern) {
				return suggestPatternFix(args[0])
			}
			return err
		}

		appConfig.Pattern = domain.PatternString(pattern)
		if err := config.Save(appConfig); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("  Pattern set to: %s\n", appConfig.Pattern)
		return nil
	},
}

var configDurationCmd = &cobra.Command{
	Use:   "duration <mode> <minutes>",
	Short: "Set the minute length of one session mode",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes < 0 {
			return fmt.Errorf("invalid minutes %q: expected a non-negative number", args[1])
		}

		switch strings.ToLower(args[0]) {
		case "focus":
			appConfig.Durations.FocusMinutes = minutes
		case "short", "shortbreak", "short_break":
			appConfig.Durations.ShortBreakMinutes = minutes
		case "long", "longbreak", "long_break":
			appConfig.Durations.LongBreakMinutes = minutes
		default:
			return fmt.Errorf("unknown mode %q: expected focus, short, or long", args[0])
		}

		if err := config.Save(appConfig); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("  %s set to %d min\n", args[0], minutes)
		return nil
	},
}

// suggestPatternFix turns an all-unknown pattern into an actionable
// error, naming the closest known token when one is close enough.
func suggestPatternFix(text string) error {
	for _, raw := range strings.Split(text, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if suggestion := domain.SuggestToken(token); suggestion != "" {
			return fmt.Errorf("pattern contains no recognized session types: did you mean %q instead of %q?", suggestion, token)
		}
	}
	return domain.ErrEmptyPattern
}

func init() {
	configCmd.AddCommand(configPatternCmd)
	configCmd.AddCommand(configDurationCmd)
	rootCmd.AddCommand(configCmd)
}
