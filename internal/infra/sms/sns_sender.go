// Package sms implements the SMSSender interface on Amazon SNS.
package sms

import (
	"context"
	"log/slog"

	appconfig "shipnotify/config"
	"shipnotify/internal/domain/service"
	"shipnotify/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *appconfig.Config
	Logger *slog.Logger
}

type snsSender struct {
	client   *sns.Client
	senderID string
	logger   *slog.Logger
}

// New creates an SNS-backed SMS sender. Credentials come from the default
// AWS provider chain; only the region is configured here. Without a region
// the sender is disabled and every send fails, which keeps reminders
// pending until SMS is configured.
func New(params Params) (service.SMSSender, error) {
	if params.Config.SMS == nil || params.Config.SMS.Region == "" {
		params.Logger.Warn("sms.region not configured, SMS sending disabled")

		return &disabledSender{}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(params.Config.SMS.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return &snsSender{
		client:   sns.NewFromConfig(cfg),
		senderID: params.Config.SMS.SenderID,
		logger:   params.Logger,
	}, nil
}

// SendSMS publishes the message directly to the phone number.
func (s *snsSender) SendSMS(ctx context.Context, phoneNumber string, message string) error {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
	}
	if s.senderID != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(s.senderID),
			},
		}
	}

	out, err := s.client.Publish(ctx, input)
	if err != nil {
		return errors.Wrap(err, "failed to publish SMS")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "SMS sent",
		slog.String("messageId", aws.ToString(out.MessageId)),
	)

	return nil
}

type disabledSender struct{}

func (disabledSender) SendSMS(ctx context.Context, phoneNumber string, message string) error {
	return errors.New("SMS sending is not configured")
}
