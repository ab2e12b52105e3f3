package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback <user-answer> <correct-answer> [target-item]",
	Short: "Generate feedback for an answer and print it as JSON",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetItem := ""
		if len(args) == 3 {
			targetItem = args[2]
		}

		ctx := cmd.Context()
		a, err := buildApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		fb := a.feedback.GenerateFeedback(ctx, args[0], args[1], targetItem)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fb)
	},
}
