package core

import (
	_ "embed"
	"fmt"
)

//go:embed version.txt
var VersionRevision string

const APP_NAME = "SteamShelf"

type Message struct {
	Finished bool
	Message  string
	Err      error
}

type ChannelProvider struct {
	Logs chan Message
}

func MakeDefaultChannelProvider() *ChannelProvider {
	return &ChannelProvider{
		Logs: make(chan Message, 100),
	}
}

func LogMessage(logs chan Message, format string, msg ...any) {
	logs <- Message{
		Message: fmt.Sprintf(format, msg...),
	}
}

func ConsoleLogger(input chan Message) {
	for {
		result := <-input
		if result.Finished {
			break
		}

		if result.Err != nil {
			ErrorLogger.Println(result.Err)
		} else {
			InfoLogger.Println(result.Message)
		}
	}
}
