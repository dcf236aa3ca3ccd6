package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/debate-friend/internal/client"
	"github.com/saulo-duarte/debate-friend/internal/debate"
	"github.com/saulo-duarte/debate-friend/internal/history"
	"github.com/saulo-duarte/debate-friend/internal/render"
	"github.com/saulo-duarte/debate-friend/internal/sections"
	"github.com/saulo-duarte/debate-friend/internal/summary"
)

const sessionHelp = `토론 주제를 입력하세요. 명령어:
  :history     이번 세션에서 만든 토론 목록
  :save DIR    마지막 토론을 DIR에 텍스트로 저장
  :quit        종료`

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive debate session with an in-memory history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()
			return runSession(ctx, newClient(cmd), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runSession handles one line at a time, so a student never has two
// requests in flight.
func runSession(ctx context.Context, c *client.Client, in io.Reader, out io.Writer) error {
	hist := history.New()
	scanner := bufio.NewScanner(in)

	render.Header(out, "AI 토론 친구")
	fmt.Fprintln(out, sessionHelp)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == ":quit":
			return nil
		case line == ":history":
			render.History(out, hist.Entries())
			continue
		case line == ":save" || strings.HasPrefix(line, ":save "):
			saveLast(out, hist, strings.TrimSpace(strings.TrimPrefix(line, ":save")))
			continue
		case strings.HasPrefix(line, ":"):
			fmt.Fprintln(out, sessionHelp)
			continue
		}

		raw, err := c.Do(ctx, debate.Request{Action: debate.ActionGenerateDebate, Topic: line})
		if err != nil {
			render.Error(out, err)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		hist.Append(line, raw)
		render.Debate(out, raw, sections.Parse(raw))
	}
	return scanner.Err()
}

func saveLast(out io.Writer, hist *history.History, dir string) {
	entries := hist.Entries()
	if len(entries) == 0 {
		render.History(out, nil)
		return
	}
	if dir == "" {
		dir = "."
	}
	last := entries[len(entries)-1]
	path, err := summary.Save(dir, last.Topic, last.Result, sections.Parse(last.Result))
	if err != nil {
		render.Error(out, err)
		return
	}
	fmt.Fprintf(out, "저장됨: %s\n", path)
}
