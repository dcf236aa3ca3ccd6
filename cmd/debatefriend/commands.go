package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/debate-friend/internal/client"
	"github.com/saulo-duarte/debate-friend/internal/config"
	"github.com/saulo-duarte/debate-friend/internal/debate"
	"github.com/saulo-duarte/debate-friend/internal/render"
	"github.com/saulo-duarte/debate-friend/internal/sections"
	"github.com/saulo-duarte/debate-friend/internal/summary"
)

func newClient(cmd *cobra.Command) *client.Client {
	server, _ := cmd.Root().PersistentFlags().GetString("server")
	return client.NewClient(server)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func newRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend five debate topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			return runText(cmd, debate.Request{Action: debate.ActionRecommendTopics, Category: category}, "토론 주제 추천")
		},
	}
	cmd.Flags().String("category", "", "Focus recommendations on a field, e.g. 환경")
	return cmd
}

func newArgumentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arguments TOPIC",
		Short: "Generate supporting and opposing arguments for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runText(cmd, debate.Request{Action: debate.ActionGenerateArguments, Topic: args[0]}, "찬반 논거")
		},
	}
}

func newFeedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback TOPIC ARGUMENT",
		Short: "Get feedback on a student's argument",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runText(cmd, debate.Request{Action: debate.ActionProvideFeedback, Topic: args[0], Argument: args[1]}, "피드백")
		},
	}
}

func newDebateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debate TOPIC",
		Short: "Generate a four-section debate for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			topic := args[0]
			raw, err := newClient(cmd).Do(ctx, debate.Request{Action: debate.ActionGenerateDebate, Topic: topic})
			if err != nil {
				return err
			}

			secs := sections.Parse(raw)
			out := cmd.OutOrStdout()
			render.Header(out, "토론 결과: "+topic)
			render.Debate(out, raw, secs)

			dir, _ := cmd.Flags().GetString("save")
			if dir == "" {
				return nil
			}
			path, err := summary.Save(dir, topic, raw, secs)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n저장됨: %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("save", "", "Directory to write a text summary into")
	return cmd
}

func newEncryptKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt-key",
		Short: "Print GEMINI_API_KEY sealed with CRYPTO_KEY, for GEMINI_API_KEY_ENCRYPTED",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return errors.New("GEMINI_API_KEY is required")
			}
			sealed, err := config.Encrypt(os.Getenv("CRYPTO_KEY"), apiKey)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sealed)
			return nil
		},
	}
}

func runText(cmd *cobra.Command, req debate.Request, title string) error {
	ctx, stop := signalContext()
	defer stop()

	result, err := newClient(cmd).Do(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	render.Header(out, title)
	render.Text(out, result)
	return nil
}
