package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mochilabs/mochi/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate an illustrated question set and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		description, _ := cmd.Flags().GetString("description")
		skipImages, _ := cmd.Flags().GetBool("no-images")

		ctx := cmd.Context()
		a, err := buildApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		questions := a.generator.GenerateQuestions(ctx, quizgen.GenerationRequest{
			Topic:       args[0],
			Subject:     subject,
			Description: description,
		})
		if !skipImages {
			questions = a.enricher.Enrich(ctx, questions)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

func init() {
	generateCmd.Flags().StringP("subject", "s", "General", "Learning skill the questions target")
	generateCmd.Flags().StringP("description", "d", "", "Exact scenario to test")
	generateCmd.Flags().Bool("no-images", false, "Skip image enrichment")
}
