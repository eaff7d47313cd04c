// Package chatbot defines the Rule type, configuration options, and
// sentinel errors for the keyword-matching bot.
package chatbot

import "errors"

// ErrNoRules indicates a Bot was constructed with an empty rule list.
var ErrNoRules = errors.New("chatbot: at least one rule required")

// Rule maps a keyword to a canned response. Matching is a
// case-insensitive substring test against the whole user input, so the
// keyword "menu" fires on "show me the menu please".
type Rule struct {
	// Keyword is matched as a lowercase substring of the input.
	Keyword string

	// Response is returned verbatim when the keyword matches.
	Response string
}

// Options configures a Bot's fallback behavior.
type Options struct {
	// QuestionFallback is returned when no rule matches but the input
	// contains a question mark.
	QuestionFallback string

	// Fallback is returned when nothing else applies.
	Fallback string
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns the restaurant bot's stock fallbacks.
func DefaultOptions() Options {
	return Options{
		QuestionFallback: "Please call us at (555) 123-4567 for specific questions.",
		Fallback:         "I'm not sure about that. Can I help you with our menu, hours, location, or reservations?",
	}
}

// WithQuestionFallback overrides the reply for unmatched questions.
func WithQuestionFallback(s string) Option {
	return func(o *Options) { o.QuestionFallback = s }
}

// WithFallback overrides the reply for unmatched input.
func WithFallback(s string) Option {
	return func(o *Options) { o.Fallback = s }
}

// DefaultRules returns the stock restaurant rule set. Order matters:
// rules are tried first to last and the first hit wins.
func DefaultRules() []Rule {
	const callUs = "You can reach us at (555) 123-4567."

	return []Rule{
		{"hello", "Hi! Welcome to our restaurant. How can I help you?"},
		{"hi", "Hi! Welcome to our restaurant. How can I help you?"},
		{"bye", "Goodbye! Have a nice day!"},
		{"menu", "We offer: \n- Pizza ($12)\n- Burger ($10)\n- Pasta ($15)\n- Salad ($8)"},
		{"hours", "We are open from 10 AM to 10 PM, Monday to Sunday."},
		{"location", "We are located at 123 Main Street, Downtown."},
		{"phone", callUs},
		{"delivery", "Yes, we offer delivery! Minimum order $20."},
		{"payment", "We accept cash, credit cards, and digital payments."},
		{"reservation", "To make a reservation, please call us at (555) 123-4567."},
		{"wifi", "Yes, we have free WiFi for customers!"},
		{"parking", "Yes, free parking is available behind the restaurant."},
	}
}
