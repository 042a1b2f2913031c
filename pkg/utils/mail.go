package utils

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"

	"github.com/mailjet/mailjet-apiv3-go/v4"
)

// SendNewUserMail отправляет администратору письмо о новом пользователе через Mailjet
func SendNewUserMail(tgID int64, fullName string) {
	fromEmail := os.Getenv("ADMIN_MAIL_FROM")
	toEmail := os.Getenv("ADMIN_MAIL_TO")
	subject := "Новый пользователь в панели"

	body := fmt.Sprintf(`<body style="margin:0;padding:0;background:#f6f6f6;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="background:#f6f6f6;">
    <tr>
      <td align="center">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width:600px;background:#f3f2f0;border-radius:28px;">
          <tr>
            <td style="padding:32px;text-align:left;">
              <h1 style="margin:0 0 12px 0;font-family:Arial,sans-serif;font-size:28px;color:#111;">Новая регистрация</h1>
              <table cellpadding="0" cellspacing="0" border="0" style="width:100%%;">
                <tr>
                  <td style="font-family:Arial,sans-serif;font-size:16px;color:#555;padding:6px 0;">Telegram ID:</td>
                  <td style="font-family:Arial,sans-serif;font-size:16px;color:#111;font-weight:bold;padding:6px 0;">%d</td>
                </tr>
                <tr>
                  <td style="font-family:Arial,sans-serif;font-size:16px;color:#555;padding:6px 0;">Имя:</td>
                  <td style="font-family:Arial,sans-serif;font-size:16px;color:#111;font-weight:bold;padding:6px 0;">%s</td>
                </tr>
              </table>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>`, tgID, fullName)

	apiKey := os.Getenv("MAILJET_API_KEY")
	secretKey := os.Getenv("MAILJET_SECRET_KEY")
	if apiKey == "" || secretKey == "" || fromEmail == "" || toEmail == "" {
		log.Println("Mailjet не настроен, письмо о регистрации не отправлено")
		return
	}

	mj := mailjet.NewMailjetClient(apiKey, secretKey)
	messagesInfo := []mailjet.InfoMessagesV31{
		{
			From: &mailjet.RecipientV31{
				Email: fromEmail,
				Name:  "Dashboard",
			},
			To: &mailjet.RecipientsV31{
				{
					Email: toEmail,
					Name:  "Администратор",
				},
			},
			Subject:  subject,
			HTMLPart: body,
		},
	}
	messages := &mailjet.MessagesV31{Info: messagesInfo}
	if _, err := mj.SendMailV31(messages); err != nil {
		log.Println("Ошибка при отправке письма через Mailjet:", err)
		SendNewUserMailSMTP(tgID, fullName)
		return
	}
	log.Printf("Письмо о новом пользователе %d отправлено", tgID)
}

// SendNewUserMailSMTP — запасной канал через SMTP, если Mailjet не отработал
func SendNewUserMailSMTP(tgID int64, fullName string) {
	from := os.Getenv("ADMIN_MAIL_FROM")
	password := os.Getenv("GMAIL_APP_PASSWORD")
	to := os.Getenv("ADMIN_MAIL_TO")
	if from == "" || password == "" || to == "" {
		log.Println("SMTP не настроен, письмо о регистрации не отправлено")
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Новый пользователь в панели")
	m.SetBody("text/html", fmt.Sprintf("<p>Telegram ID: <b>%d</b></p><p>Имя: <b>%s</b></p>", tgID, fullName))

	d := gomail.NewDialer("smtp.gmail.com", 587, from, password)
	if err := d.DialAndSend(m); err != nil {
		log.Println("Ошибка при отправке письма:", err)
	}
}
