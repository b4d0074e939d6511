package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// RegistrationConfirmHTML 活动报名确认邮件
func RegistrationConfirmHTML(eventTitle string, amount int64) string {
	if amount > 0 {
		return fmt.Sprintf(`<p>您好，</p><p>您已成功报名活动 <b>%s</b>。</p><p>本次活动费用为 <b>%d</b>，已为您生成待缴费记录，请及时缴费。</p>`, eventTitle, amount)
	}
	return fmt.Sprintf(`<p>您好，</p><p>您已成功报名活动 <b>%s</b>，期待您的参与。</p>`, eventTitle)
}
