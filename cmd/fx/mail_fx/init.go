package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"globetrotter/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return services.NewNoopMailService()
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       host,
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		AppName:    "GlobeTrotter",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	})
}
