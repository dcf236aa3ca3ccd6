package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "debatefriend",
		Short:         "AI 토론 친구 command line client",
		Long:          "Recommends debate topics, generates arguments and debates, and gives feedback on a student's argument using the debate server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("DEBATE_SERVER_URL")
	if server == "" {
		server = "http://localhost:8080"
	}
	root.PersistentFlags().String("server", server, "Debate server base URL (overrides DEBATE_SERVER_URL)")

	root.AddCommand(newRecommendCmd())
	root.AddCommand(newArgumentsCmd())
	root.AddCommand(newFeedbackCmd())
	root.AddCommand(newDebateCmd())
	root.AddCommand(newSessionCmd())
	root.AddCommand(newEncryptKeyCmd())
	return root
}
