package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yomu-engine/config"
	"github.com/oksasatya/yomu-engine/pkg/helpers"
	"github.com/oksasatya/yomu-engine/pkg/mailer"
)

// achievement_worker sends "achievement unlocked" emails queued by the API.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; achievement worker disabled")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		logger.Fatal("Mailgun not configured")
	}

	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue, 16)
	if err != nil {
		logger.Fatalf("amqp: %v", err)
	}
	defer consumer.Close()

	msgs, err := consumer.Deliveries()
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			job, err := mailer.DecodeJob(msg.Body)
			if err != nil {
				logger.WithError(err).Warn("dropping message")
				_ = msg.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			err = mailer.Deliver(c, mg, job)
			cancel()
			switch {
			case errors.Is(err, mailer.ErrMalformedJob):
				logger.WithError(err).WithField("to", job.To).Warn("dropping message")
				_ = msg.Nack(false, false)
			case err != nil:
				logger.WithError(err).WithField("to", job.To).Error("send failed, requeueing")
				_ = msg.Nack(false, true)
			default:
				logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
				_ = msg.Ack(false)
			}
		}
		close(done)
	}()

	logger.Infof("achievement worker listening on queue=%s", cfg.RabbitMQEmailQueue)
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
