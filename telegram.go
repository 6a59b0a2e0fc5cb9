package main

import (
	"darksky/config"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// mono() returns monospaced escaped Markdown
func mono(s string) string {
	return "`" + tgbotapi.EscapeText("MarkdownV2", s) + "`"
}

// keyboard() returns the reply keyboard offered with every answer
func keyboard(tr *Translator) tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(tr.Msg("ForecastButton", nil)),
			tgbotapi.NewKeyboardButton(tr.Msg("CalendarButton", nil)),
		),
	)
}

// forecastText() renders the report for the coming nights
func forecastText(ns Nights, cfg config.Config, tr *Translator, now time.Time) string {
	if len(ns) == 0 {
		return tr.Msg("NoData", nil)
	}

	good := ns.Good(cfg.MinDarkMinutes)
	text := tr.Msg("ForecastHeader", nil) + "\n" + ns.Print()
	if len(good) == 0 {
		text += "\n" + tr.Msg("NoDarkNights", map[string]any{"Days": len(ns)})
	}
	if newMoon, ok := ns.nextNewMoon(now); ok {
		text += "\n" + tr.Msg("NextNewMoon", map[string]any{"Time": newMoon.Format("Mon 02 Jan 15:04")})
	}

	return text
}

// tonightAlert() decides which alert, if any, the cron job sends and updates state
func tonightAlert(ns Nights, cfg config.Config, tr *Translator, state *State, now time.Time) (string, bool) {
	tonight := ns.tonight(now).Good(cfg.MinDarkMinutes)

	switch {
	case len(tonight) > 0 && !state.isGood():
		log.Println("INFO: Dark window tonight. Sending message")
		state.Set(true)
		return tr.Msg("DarkTonight", nil) + "\n\n" + tonight.Timeline(), true
	case len(tonight) == 0 && state.isGood():
		log.Println("INFO: No more dark window tonight. Sending message")
		state.Set(false)
		return tr.Msg("NotDarkTonight", nil), true
	default:
		log.Println("INFO: No changes in tonight's dark sky")
		return "", false
	}
}

// checkTonight() is cron job which monitors whether tonight has a long enough dark window
func checkTonight(bot *tgbotapi.BotAPI, cfg config.Config, tr *Translator) {
	chatID, err := cfg.ChatID()
	if err != nil {
		log.Println("ERROR:", err)
		return
	}

	s := gocron.NewScheduler(cfg.Location())
	state := &State{}
	state.Init()

	_, err = s.Cron(cfg.CronExpression).Do(func() {
		log.Println("INFO: starting cron job")
		now := time.Now().In(cfg.Location())

		ns, err := buildNights(cfg, now)
		if err != nil {
			log.Println("ERROR: cannot plan nights", err)
			return
		}

		text, send := tonightAlert(ns, cfg, tr, state, now)
		if !send {
			return
		}

		msg := tgbotapi.NewMessage(chatID, mono(text))
		msg.ParseMode = "MarkdownV2"
		if _, err := bot.Send(msg); err != nil {
			log.Println("ERROR: can't send message to Telegram", err)
		}
	})
	if err != nil {
		log.Println("ERROR:", err)
		return
	}

	s.StartAsync()
}

// authChat() makes sure no one else except the configured chat can interact with this bot
func authChat(chatID int64, cfg config.Config) bool {
	allowed, err := cfg.ChatID()
	return err == nil && chatID == allowed
}

// sendCalendar() sends the dark windows of the coming nights as an .ics document
func sendCalendar(bot *tgbotapi.BotAPI, chatID int64, cfg config.Config, tr *Translator) {
	now := time.Now().In(cfg.Location())
	ns, err := buildNights(cfg, now)
	if err != nil {
		log.Println("ERROR: cannot plan nights", err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: "darksky.ics", Bytes: ns.Calendar(now)})
	doc.Caption = tr.Msg("CalendarCaption", map[string]any{"Days": len(ns)})

	log.Println("INFO: sending calendar to Telegram")
	if _, err := bot.Send(doc); err != nil {
		log.Println("ERROR: cannot send calendar", err)
	}
}

// sender() names the author of a message for the log. Channel posts carry no From.
func sender(m *tgbotapi.Message) string {
	if m.From == nil {
		return fmt.Sprintf("chat %d", m.Chat.ID)
	}
	return m.From.UserName
}

// handleChat() is telegram bot handler for chat interactions
func handleChat(bot *tgbotapi.BotAPI, update tgbotapi.Update, cfg config.Config, tr *Translator) {
	if update.Message == nil {
		return
	}
	if !authChat(update.Message.Chat.ID, cfg) {
		log.Printf("Chat ID %d unauthorized. Exit.\n", update.Message.Chat.ID)
		return
	}

	log.Printf("[%s] %s", sender(update.Message), update.Message.Text)

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	msg.ReplyMarkup = keyboard(tr)
	msg.ParseMode = "MarkdownV2"

	switch {
	case update.Message.IsCommand() && update.Message.Command() == "start":
		msg.Text = mono(tr.Msg("Start", nil))
	case update.Message.Text == tr.Msg("ForecastButton", nil):
		now := time.Now().In(cfg.Location())
		ns, err := buildNights(cfg, now)
		if err != nil {
			log.Println("ERROR: cannot plan nights", err)
			msg.Text = mono(tr.Msg("NoData", nil))
		} else {
			msg.Text = mono(forecastText(ns, cfg, tr, now))
		}
	case update.Message.IsCommand() && update.Message.Command() == "ics",
		update.Message.Text == tr.Msg("CalendarButton", nil):
		sendCalendar(bot, update.Message.Chat.ID, cfg, tr)
		return
	default:
		msg.Text = mono(tr.Msg("BadRequest", nil))
	}

	log.Println("INFO: sending message to Telegram")
	if _, err := bot.Send(msg); err != nil {
		log.Println("ERROR: cannot send message", err)
	}
}
