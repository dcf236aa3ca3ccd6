// Package render prints debate output to a terminal. Model text is written as
// plain text; nothing in it is interpreted as markup.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/saulo-duarte/debate-friend/internal/history"
	"github.com/saulo-duarte/debate-friend/internal/sections"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	lineStyle   = lipgloss.NewStyle().PaddingLeft(2)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func Header(w io.Writer, text string) {
	fmt.Fprintln(w, headerStyle.Render(text))
}

// Debate prints parsed sections. When the completion had no recognizable
// heading the raw text is shown instead so the student still sees something.
func Debate(w io.Writer, raw string, secs []sections.Section) {
	if len(secs) == 0 {
		Text(w, raw)
		return
	}
	for i, s := range secs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, titleStyle.Render(s.Title))
		for _, line := range s.Content {
			fmt.Fprintln(w, lineStyle.Render(line))
		}
	}
}

func Text(w io.Writer, text string) {
	fmt.Fprintln(w, text)
}

func History(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("아직 생성한 토론이 없어요."))
		return
	}
	for i, e := range entries {
		fmt.Fprintf(w, "%d. %s %s\n", i+1, e.Topic, mutedStyle.Render(e.CreatedAt.Format("15:04:05")))
	}
}

func Error(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("오류: "+err.Error()))
}
