package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/config"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

// SendMail sends an HTML mail over implicit TLS.
func SendMail(to, subject, body string) error {
	cfg := config.GetMailConfig()

	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("mail not configured, set SMTP_HOST, SMTP_USERNAME, SMTP_PASSWORD")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		cfg.From, to, subject, body)

	tlsConfig := &tls.Config{
		ServerName: cfg.Host,
	}

	conn, err := tls.Dial("tcp", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), tlsConfig)
	if err != nil {
		return fmt.Errorf("connect to mail server: %v", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		return fmt.Errorf("create smtp client: %v", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %v", err)
	}

	if err := client.Mail(cfg.From); err != nil {
		return fmt.Errorf("set sender: %v", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("set recipient: %v", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %v", err)
	}
	if _, err = w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write body: %v", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close data writer: %v", err)
	}

	return client.Quit()
}

// SendAppointmentConfirmation mails a test-drive booking confirmation.
func SendAppointmentConfirmation(appt model.Appointment) error {
	vehicle := appt.Model
	if appt.TrimName != "" {
		vehicle += " " + appt.TrimName
	}

	subject := "Your test drive is booked"
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h2 style="color: #eb0a1e;">Test Drive Confirmation</h2>
			<p>Hi %s,</p>
			<p>Your test drive is confirmed:</p>
			<div style="background: #f8f8f8; padding: 20px; border-radius: 8px;">
				<p><strong>Vehicle:</strong> %s</p>
				<p><strong>Date:</strong> %s</p>
				<p><strong>Time:</strong> %s</p>
			</div>
			<p>Please bring a valid driver's license. If you need to reschedule, reply to this mail.</p>
			<p style="color: #64748b; font-size: 12px; margin-top: 20px;">
				Booking reference: %s
			</p>
		</div>
	`, appt.CustomerName, vehicle, appt.Date, appt.TimeSlot, appt.ID)

	return SendMail(appt.Email, subject, body)
}
