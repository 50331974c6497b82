// Command sm2 schedules flashcard reviews and inspects decks from the
// command line. Card state is exchanged as JSON on stdin and stdout.
package main

import (
	"log"
	"os"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("sm2: ")

	app := newCLIApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
