package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sesv2"
	"github.com/aws/aws-sdk-go/service/sesv2/sesv2iface"

	"procurement_sync/internal/domain"
)

type Config struct {
	Region     string
	Endpoint   string
	From       string
	AdminEmail string
}

// SES delivers notices directly as plain-text email through Amazon SES v2.
type SES struct {
	client     sesv2iface.SESV2API
	from       string
	adminEmail string
	logger     *slog.Logger
}

func NewSES(cfg Config, logger *slog.Logger) (*SES, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return NewSESWithClient(sesv2.New(sess), cfg, logger), nil
}

func NewSESWithClient(client sesv2iface.SESV2API, cfg Config, logger *slog.Logger) *SES {
	return &SES{
		client:     client,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
		logger:     logger.With("component", "ses"),
	}
}

func (m *SES) SendAdminMatchNotice(ctx context.Context, n domain.AdminMatchNotice) error {
	return m.send(ctx, m.adminEmail, adminMatchTemplate, n)
}

func (m *SES) SendDonorUpdateNotice(ctx context.Context, n domain.DonorUpdateNotice) error {
	return m.send(ctx, n.DonorEmail, donorUpdateTemplate, n)
}

func (m *SES) SendSyncFailureNotice(ctx context.Context, n domain.SyncFailureNotice) error {
	return m.send(ctx, m.adminEmail, syncFailureTemplate, n)
}

func (m *SES) send(ctx context.Context, to string, tmpl emailTemplate, data any) error {
	if to == "" {
		return fmt.Errorf("send email: no recipient")
	}

	subject, body, err := tmpl.render(data)
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	out, err := m.client.SendEmailWithContext(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &sesv2.Destination{
			ToAddresses: []*string{aws.String(to)},
		},
		Content: &sesv2.EmailContent{
			Simple: &sesv2.Message{
				Subject: &sesv2.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &sesv2.Body{
					Text: &sesv2.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.logger.Debug("email sent", "to", to, "subject", subject, "message_id", aws.StringValue(out.MessageId))
	return nil
}
