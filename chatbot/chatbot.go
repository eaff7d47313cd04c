package chatbot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Bot answers free-text input by keyword matching against an ordered
// rule list. Construct with New; the zero value is not usable.
type Bot struct {
	rules []Rule
	opts  Options
}

// New builds a Bot from an ordered rule list. Keywords are lowercased
// once at construction so Respond only lowercases the input.
//
// Returns ErrNoRules when rules is empty.
func New(rules []Rule, opts ...Option) (*Bot, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		normalized[i] = Rule{
			Keyword:  strings.ToLower(r.Keyword),
			Response: r.Response,
		}
	}

	return &Bot{rules: normalized, opts: o}, nil
}

// Respond returns the reply for one line of user input.
//
// Resolution order:
//  1. The first rule whose keyword is a substring of the lowercased
//     input wins.
//  2. Otherwise, input containing "?" gets the question fallback.
//  3. Otherwise, the generic fallback.
//
// Complexity: O(rules × len(input)).
func (b *Bot) Respond(input string) string {
	lowered := strings.ToLower(input)

	for _, r := range b.rules {
		if strings.Contains(lowered, r.Keyword) {
			return r.Response
		}
	}

	if strings.Contains(lowered, "?") {
		return b.opts.QuestionFallback
	}

	return b.opts.Fallback
}

// Session is an interactive line-oriented loop around a Bot: read a
// line, reply, repeat until EOF or a quit command.
type Session struct {
	Bot *Bot

	// In supplies user lines; Out receives the transcript.
	In  io.Reader
	Out io.Writer
}

// Run executes the conversation loop. It greets, then for each input
// line prints the Bot's reply prefixed with "Bot: ". The commands
// "quit", "exit", and "bye" (case-insensitive, after trimming) end the
// session with a goodbye. EOF on In ends it silently.
//
// Returns the scanner error, if any.
func (s *Session) Run() error {
	fmt.Fprintln(s.Out, "Restaurant ChatBot")
	fmt.Fprintln(s.Out, strings.Repeat("=", 20))
	fmt.Fprintln(s.Out, "Type 'quit' to exit")
	fmt.Fprintln(s.Out, "Bot: Hi! How can I help you today?")

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, "You: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "quit", "exit", "bye":
			fmt.Fprintln(s.Out, "Bot: Goodbye!")
			return nil
		}

		fmt.Fprintln(s.Out, "Bot:", s.Bot.Respond(line))
	}

	return scanner.Err()
}
