package main

import (
	"darksky/config"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	printOnly := flag.Bool("print", false, "print the dark sky report for the coming nights and exit")
	jsonOut := flag.Bool("json", false, "with -print, output nights with their events and windows as JSON")
	flag.Parse()

	// Load the configuration
	config.LoadConfig()
	if err := config.AppConfig.Validate(); err != nil {
		log.Fatalf("ERROR: invalid configuration: %v", err)
	}

	if *printOnly {
		if err := printReport(config.AppConfig, *jsonOut); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		return
	}

	// Check that mandatory environment variables are set
	if config.AppConfig.TelegramBotToken == "" || config.AppConfig.TelegramChatID == "" {
		log.Panic("One of environment variables TG_BOT_TOKEN or CHAT_ID is not set!")
	}

	tr, err := NewTranslator(config.AppConfig.Language)
	if err != nil {
		log.Panic(err)
	}

	// Create Bot instance
	bot, err := tgbotapi.NewBotAPI(config.AppConfig.TelegramBotToken)
	if err != nil {
		log.Panic(err)
	}
	log.Printf("INFO: Authorized on account %s", bot.Self.UserName)

	// Start tonight check in background
	checkTonight(bot, config.AppConfig, tr)
	log.Println("INFO: Background cron job activated")

	// Start Bot and process user input
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	log.Println("INFO: Bot started")
	for update := range updates {
		handleChat(bot, update, config.AppConfig, tr)
	}
}

// printReport() writes the report for the coming nights to stdout
func printReport(cfg config.Config, asJSON bool) error {
	ns, err := buildNights(cfg, time.Now())
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ns)
	}

	fmt.Print(ns.Timeline())
	fmt.Println()
	fmt.Print(ns.Print())
	return nil
}
