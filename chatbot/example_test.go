package chatbot_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/chatbot"
)

// ExampleBot_Respond resolves a few queries against the stock rules.
func ExampleBot_Respond() {
	bot, err := chatbot.New(chatbot.DefaultRules())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(bot.Respond("What are your hours?"))
	fmt.Println(bot.Respond("Do you have parking?"))
	fmt.Println(bot.Respond("Can my dog come too?"))

	// Output:
	// We are open from 10 AM to 10 PM, Monday to Sunday.
	// Yes, free parking is available behind the restaurant.
	// Please call us at (555) 123-4567 for specific questions.
}
