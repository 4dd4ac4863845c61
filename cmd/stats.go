package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/avyukth/medsim/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show encounter history and accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() { _ = s.Close() }()

		ctx := context.Background()
		encounters, err := s.EventRepo().EncounterSummaries(ctx, limit)
		if err != nil {
			return fmt.Errorf("query encounters: %w", err)
		}

		if len(encounters) == 0 {
			fmt.Println("No encounters recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-22s  %-24s  %-9s  %5s  %5s  %6s\n",
			"Started", "Patient", "Chief Complaint", "Outcome", "Score", "Qs", "Mins")
		fmt.Println(strings.Repeat("─", 100))

		var completed, correct, scoreSum int
		for _, enc := range encounters {
			outcome := "abandoned"
			score := "-"
			if enc.Completed {
				completed++
				scoreSum += enc.Score
				if enc.Correct {
					correct++
					outcome = "correct"
				} else {
					outcome = "missed"
				}
				score = fmt.Sprintf("%d", enc.Score)
			}
			patient := fmt.Sprintf("%s, %d", enc.PatientName, enc.PatientAge)
			fmt.Printf("%-19s  %-22s  %-24s  %-9s  %5s  %5d  %6.1f\n",
				enc.StartedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(patient, 22),
				truncate(enc.ChiefComplaint, 24),
				outcome,
				score,
				enc.QuestionsAsked,
				enc.DurationMins,
			)
		}

		fmt.Println(strings.Repeat("─", 100))
		fmt.Printf("Encounters: %d   Completed: %d", len(encounters), completed)
		if completed > 0 {
			fmt.Printf("   Correct: %d (%.0f%%)   Avg score: %.1f",
				correct,
				100*float64(correct)/float64(completed),
				float64(scoreSum)/float64(completed),
			)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 50, "Number of encounters to show (0 = all)")
}
