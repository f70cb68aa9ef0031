package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tbreslin/cadence/internal/adapters/git"
	"github.com/tbreslin/cadence/internal/domain"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completed sessions and cycles",
	Long:  `Display today's totals from the session journal, followed by the most recent completed sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := time.Now()

		stats, err := sessionLog.DailyStats(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to get daily stats: %w", err)
		}

		since := now.AddDate(0, 0, -statsDays)
		recent, err := sessionLog.RecentSessions(ctx, since)
		if err != nil {
			return fmt.Errorf("failed to get recent sessions: %w", err)
		}

		fmt.Println()
		renderStats(stats, recent)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "How many days of recent sessions to list")
	rootCmd.AddCommand(statsCmd)
}

func renderStats(stats *domain.DailyStats, recent []*domain.SessionRecord) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))

	// Header
	fmt.Printf("  %s\n", titleStyle.Render("Today, "+stats.Date.Format("Jan 2")))
	fmt.Printf("  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	fmt.Printf("  Focus sessions: %s    Breaks: %s    Cycles: %s\n",
		valueStyle.Render(fmt.Sprintf("%d", stats.FocusSessions)),
		valueStyle.Render(fmt.Sprintf("%d", stats.BreaksTaken)),
		valueStyle.Render(fmt.Sprintf("%d", stats.CyclesCompleted)),
	)
	fmt.Printf("  Focus time: %s\n\n", valueStyle.Render(formatFocusTime(stats.FocusTime)))

	if len(recent) == 0 {
		fmt.Printf("  %s\n\n", dimStyle.Render("No completed sessions yet."))
		return
	}

	fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("Last %d days", statsDays)))
	for _, r := range recent {
		line := fmt.Sprintf("  %s  %-11s %s",
			r.CompletedAt.Format("Jan 2 15:04"),
			r.Type.Label(),
			domain.FormatTime(r.Seconds),
		)
		if r.GitBranch != "" {
			line += dimStyle.Render(fmt.Sprintf("  %s@%s", r.GitBranch, git.ShortCommit(r.GitCommit)))
		}
		fmt.Println(line)
	}
	fmt.Println()
}

func formatFocusTime(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
