package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

func Check(err error, msg string) {
	if err != nil {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panicln(err)
	}
}

func Assert(ok bool, msg string) {
	if !ok {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panic()
	}
}

// Warn reports a recoverable configuration problem: a coloured line on the
// console and a Debug entry for the log pipeline.
func Warn(service string, err error) {
	fmt.Fprintln(output, chalk.Yellow.Color("⚠️  "+service+": "+err.Error()))
	DebugContext(service, "warning", Context{"error": err.Error()})
}
