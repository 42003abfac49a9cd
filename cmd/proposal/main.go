// Command proposal runs the Bigin CRM proposal questionnaire.
package main

import "github.com/Harshal279/chatbot/internal/cli"

func main() {
	cli.Execute()
}
