package cli

import (
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var challengeID, flag string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a flag for a challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"challenge_id": challengeID, "flag": flag}
			var result SubmissionResult

			if err := client.Post("/api/v1/flags", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&challengeID, "challenge", "", "Challenge id (required)")
	cmd.Flags().StringVar(&flag, "flag", "", "Flag to submit (required)")
	_ = cmd.MarkFlagRequired("challenge")
	_ = cmd.MarkFlagRequired("flag")

	return cmd
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show your team's score",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TeamScoreResult

			if err := client.Get("/api/v1/teams/me/score", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
