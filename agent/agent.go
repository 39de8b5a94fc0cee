// Package agent implements the interactive assistant behind `mas assist`: a
// facilitator chat that answers the user, delegating to expert chats armed
// with tools over the loaded actions report.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Session is one interactive assist conversation.
type Session struct {
	out     io.Writer
	in      *bufio.Scanner
	lead    *Expert
	experts []*Expert
}

// NewSession builds a session over the given experts, reading the user from
// in (usually os.Stdin) and writing to out.
func NewSession(out io.Writer, in io.Reader, experts ...*Expert) *Session {
	return &Session{
		out:     out,
		in:      bufio.NewScanner(in),
		lead:    newFacilitator(experts...),
		experts: experts,
	}
}

// dial opens the Gemini chat of every expert, the facilitator last.
func (s *Session) dial(ctx context.Context, client *genai.Client) error {
	for _, e := range s.experts {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("starting expert %s: %w", e.Name, err)
		}
	}
	return s.lead.Start(ctx, client)
}

const prompt = "assist> "

// Run loops over user questions until "bye" or end of input. Questions given
// as seed are consumed first, echoed as if the user had typed them.
func (s *Session) Run(ctx context.Context, client *genai.Client, seed ...string) error {
	if err := s.dial(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "mas assist, your actions report at hand. Type 'bye' or Ctrl+D to leave.")

	for {
		fmt.Fprint(s.out, prompt)

		question, ok := s.next(&seed)
		if !ok {
			return s.in.Err()
		}
		switch question {
		case "":
			continue
		case "bye":
			return nil
		}

		answer, err := s.lead.Ask(ctx, &genai.Part{Text: question})
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, answer.Parts[0].Text)
	}
}

// next yields the user's next question: first from the seed list, then from
// the input. The second result is false once the input is exhausted.
func (s *Session) next(seed *[]string) (string, bool) {
	if len(*seed) > 0 {
		question := strings.TrimSpace((*seed)[0])
		*seed = (*seed)[1:]
		fmt.Fprintln(s.out, question)
		return question, true
	}
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
