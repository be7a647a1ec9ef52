package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"videopoker-server/internal/config"
	"videopoker-server/internal/console"
	"videopoker-server/internal/rng"
	"videopoker-server/pkg/videopoker"
)

// Version is the build version
var Version = "v0.0.0-dev"

func main() {
	flag.Parse()
	setupLogger()

	options, err := config.Instance().SessionOptions()
	if err != nil {
		logrus.WithError(err).Fatal("invalid game configuration")
	}

	sink := console.New(options.Variant.HandSize())
	session, err := videopoker.NewSession(logrus.StandardLogger(), options, sink, rng.Crypto{})
	if err != nil {
		logrus.WithError(err).Fatal("could not create session")
	}

	go drainLogs(session)

	pterm.DefaultHeader.Printfln("Video Poker %s (%s)", Version, options.Variant.Name())
	session.Configure()

	printHelp()

	for {
		line, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(">").Show()

		action, ok := parseCommand(line)
		if !ok {
			if strings.TrimSpace(line) == "quit" {
				return
			}

			printHelp()
			continue
		}

		if err := session.Handle(action); err != nil {
			pterm.Error.Println(err)
		}
	}
}

// parseCommand maps a typed command to an inbound action payload
func parseCommand(line string) (*videopoker.ActionIn, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, false
	}

	switch fields[0] {
	case "deal", "draw":
		return &videopoker.ActionIn{Action: videopoker.ActionDeal}, true
	case "bet":
		return &videopoker.ActionIn{Action: videopoker.ActionBetOne}, true
	case "max":
		return &videopoker.ActionIn{Action: videopoker.ActionBetMax}, true
	case "money":
		return &videopoker.ActionIn{Action: videopoker.ActionAddMoney}, true
	case "denom":
		if len(fields) != 2 {
			return nil, false
		}

		delta, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, false
		}

		return &videopoker.ActionIn{Action: videopoker.ActionChangeDenom, Delta: delta}, true
	case "hold":
		if len(fields) != 2 {
			return nil, false
		}

		slot, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, false
		}

		// slots are presented 1-based
		return &videopoker.ActionIn{Action: videopoker.ActionHold, Slot: slot - 1}, true
	}

	return nil, false
}

func printHelp() {
	pterm.Println("commands: deal | hold <1-5> | bet | max | denom <+n/-n> | money | quit")
}

func drainLogs(session *videopoker.Session) {
	for messages := range session.LogChan() {
		for _, message := range messages {
			pterm.Debug.Println(message.Message)
		}
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
