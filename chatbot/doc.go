// Package chatbot implements a keyword-matching restaurant assistant.
//
// # What
//
//   - Rule          — an ordered keyword→response pair.
//   - DefaultRules  — the stock restaurant rule set (menu, hours,
//     location, delivery, and friends).
//   - Bot.Respond   — resolve one input line to a reply.
//   - Session.Run   — a line-oriented conversation loop over any
//     io.Reader / io.Writer pair.
//
// # Why
//
// Keyword matching is the simplest dialogue model that feels responsive:
// no parsing, no state, just an ordered scan for the first keyword that
// appears in the (lowercased) input. The ordering doubles as a priority
// scheme — put the more specific keywords first.
//
// Two fallbacks keep the bot from going silent: unmatched input with a
// question mark gets a "call us" pointer, anything else gets a nudge
// toward topics the bot does know.
//
// # Usage
//
//	bot, err := chatbot.New(chatbot.DefaultRules())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(bot.Respond("What's on the menu?"))
//
// Or interactively:
//
//	s := chatbot.Session{Bot: bot, In: os.Stdin, Out: os.Stdout}
//	_ = s.Run()
//
// # Errors
//
//   - ErrNoRules — New called with an empty rule list.
package chatbot
