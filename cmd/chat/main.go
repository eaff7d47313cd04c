// Command chat runs the restaurant chatbot interactively on stdin/stdout.
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/algokit/chatbot"
)

func main() {
	bot, err := chatbot.New(chatbot.DefaultRules())
	if err != nil {
		log.Fatalf("new bot: %v", err)
	}

	s := chatbot.Session{Bot: bot, In: os.Stdin, Out: os.Stdout}
	if err := s.Run(); err != nil {
		log.Fatalf("session: %v", err)
	}
}
