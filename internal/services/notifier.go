package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gopkg.in/gomail.v2"

	"leasingcrm/internal/config"
	"leasingcrm/internal/models"
)

// Notifier fans out a newly created reminder to whatever channels are
// configured. Delivery is best effort and synchronous; there is no
// background queue.
type Notifier interface {
	ReminderCreated(lead *models.Lead, reminder *models.Reminder) error
}

type channelNotifier struct {
	dialer   *gomail.Dialer
	from     string
	notifyTo string

	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier builds a notifier from the email/telegram config sections.
// Unconfigured channels are simply skipped; with nothing configured the
// notifier is a no-op.
func NewNotifier(email config.EmailConfig, telegram config.TelegramConfig) Notifier {
	n := &channelNotifier{}

	if email.SMTPHost != "" && email.NotifyEmail != "" {
		n.dialer = gomail.NewDialer(email.SMTPHost, email.SMTPPort, email.SMTPUser, email.SMTPPassword)
		n.from = email.FromEmail
		n.notifyTo = email.NotifyEmail
	}

	if telegram.BotToken != "" && telegram.ChatID != 0 {
		bot, err := tgbotapi.NewBotAPI(telegram.BotToken)
		if err != nil {
			log.Printf("[notify][telegram] bot init failed, channel disabled: %v", err)
		} else {
			n.bot = bot
			n.chatID = telegram.ChatID
		}
	}
	return n
}

func (n *channelNotifier) ReminderCreated(lead *models.Lead, reminder *models.Reminder) error {
	var firstErr error

	if n.dialer != nil {
		if err := n.sendEmail(lead, reminder); err != nil {
			log.Printf("[notify][email] %v", err)
			firstErr = err
		}
	}
	if n.bot != nil {
		text := fmt.Sprintf("🔔 Rappel « %s » - %s (%s)",
			reminder.Title, lead.Company.Name, reminder.ReminderDate.Format("02/01/2006 15:04"))
		if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
			log.Printf("[notify][telegram] %v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (n *channelNotifier) sendEmail(lead *models.Lead, reminder *models.Reminder) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.notifyTo)
	m.SetHeader("Subject", "Rappel CRM: "+reminder.Title)

	body := fmt.Sprintf(`
		<h3>Nouveau rappel</h3>
		<p><strong>%s</strong></p>
		<p>%s</p>
		<p>Lead : %s (%s %s)</p>
		<p>Échéance : %s</p>
	`, reminder.Title, reminder.Description,
		lead.Company.Name, lead.Contact.FirstName, lead.Contact.LastName,
		reminder.ReminderDate.Format("02/01/2006 15:04"))
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}
