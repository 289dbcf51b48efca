// Command lineedit-demo is a minimal REPL shell exercising the
// lineedit package's public API: prompting, history persistence, and
// optional multiline continuation on unbalanced parentheses.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ember-lang/lineedit"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		prompt          string
		historyPath     string
		multilineParens bool
	)

	cmd := &cobra.Command{
		Use:   "lineedit-demo",
		Short: "Interactive line editor demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(prompt, historyPath, multilineParens)
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "> ", "prompt string")
	cmd.Flags().StringVar(&historyPath, "history", "", "file to load and persist history from")
	cmd.Flags().BoolVar(&multilineParens, "multiline-parens", false, "continue editing while parentheses are unbalanced")

	return cmd
}

func run(prompt, historyPath string, multilineParens bool) error {
	s := lineedit.New()
	s.SetPrompt(prompt)
	s.SetContinuationPrompt("... ")

	if multilineParens {
		s.SetMultiline(func(input []byte) bool {
			return parenDepth(input) > 0
		})
	}

	if historyPath != "" {
		loadHistory(s, historyPath)
		defer saveHistory(s, historyPath)
	}

	for {
		line, err := s.ReadLine()
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Printf("=> %s\n", line)
	}
}

// parenDepth counts unmatched '(' across input, ignoring ')' with no
// matching opener, which is enough to decide whether the demo's
// toy multiline mode should keep reading.
func parenDepth(input []byte) int {
	depth := 0
	for _, b := range input {
		switch b {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}

func loadHistory(s *lineedit.Session, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			s.AddHistory(line)
		}
	}
}

func saveHistory(s *lineedit.Session, path string) {
	items := s.History()
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()

	for i := len(items) - 1; i >= 0; i-- {
		fmt.Fprintln(f, items[i])
	}
}
