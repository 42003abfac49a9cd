package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Harshal279/chatbot/internal/questions"
	"github.com/Harshal279/chatbot/internal/summary"
)

func newQuestionsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the interview questions by phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printRegistry(e.out, questions.Default())
			return nil
		},
	}
}

func printRegistry(w io.Writer, reg *questions.Registry) {
	n := 0
	for phase := 1; phase <= questions.NumPhases; phase++ {
		qs := reg.InPhase(phase)
		if len(qs) == 0 {
			continue
		}
		if n > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Phase %d: %s\n", phase, questions.PhaseName(phase))

		for _, q := range qs {
			n++
			fmt.Fprintf(w, "  %2d. %s [%s]\n", n, summary.Label(q.Key), q.Kind)
			for _, line := range strings.Split(q.Prompt, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					fmt.Fprintf(w, "      %s\n", line)
				}
			}
			for i, opt := range q.Options {
				fmt.Fprintf(w, "        %d) %s\n", i+1, opt)
			}
		}
	}
}
