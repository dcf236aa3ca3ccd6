// Package summary renders a generated debate as a plain text file.
package summary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/saulo-duarte/debate-friend/internal/sections"
)

const header = "AI 토론 친구 - 토론 요약"

// Write renders secs as a summary. When the completion had no heading, raw is
// written verbatim so the file matches what was shown on screen.
func Write(w io.Writer, topic, raw string, secs []sections.Section) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, header)
	fmt.Fprintf(bw, "주제: %s\n", topic)
	if len(secs) == 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, strings.TrimRight(raw, "\n"))
		return bw.Flush()
	}
	for _, s := range secs {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, s.Title)
		for _, line := range s.Content {
			fmt.Fprintf(bw, "- %s\n", strings.TrimLeft(line, "-*• "))
		}
	}

	return bw.Flush()
}

// Save writes the summary under dir and returns the file path.
func Save(dir, topic, raw string, secs []sections.Section) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create summary dir: %w", err)
	}

	path := filepath.Join(dir, FileName(topic))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create summary file: %w", err)
	}
	defer f.Close()

	if err := Write(f, topic, raw, secs); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, f.Close()
}

// FileName keeps letters, digits, '-' and '_' from topic and joins words with '_'.
func FileName(topic string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(topic) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore && b.Len() > 0:
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	name := strings.TrimSuffix(b.String(), "_")
	if name == "" {
		name = "debate"
	}
	return "토론_" + name + ".txt"
}
