package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

var output io.Writer = os.Stdout

// SetOutput redirects Debug lines; it returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	previous := output
	output = w
	return previous
}

func Debug(service string, message string) {
	DebugContext(service, message, nil)
}

func DebugContext(service string, message string, extra Context) {
	context := make(Context, len(extra)+1)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	for k, v := range extra {
		context[k] = v
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Fprintln(output, string(data))
}
