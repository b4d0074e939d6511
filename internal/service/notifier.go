package service

import (
	"log"

	"Club_Community/internal/pkg"
)

// Notifier 报名确认邮件，发送失败只记日志不影响请求
type Notifier struct {
	cfg pkg.SMTPConfig
}

func NewNotifier(cfg pkg.SMTPConfig) *Notifier {
	if !cfg.Enabled() {
		return nil
	}
	return &Notifier{cfg: cfg}
}

func (n *Notifier) RegistrationConfirmed(email, eventTitle string, amount int64) {
	go func() {
		html := pkg.RegistrationConfirmHTML(eventTitle, amount)
		if err := pkg.SendEmail(n.cfg, email, "活动报名确认", html); err != nil {
			log.Printf("registration confirm mail to %s failed: %v", email, err)
		}
	}()
}
