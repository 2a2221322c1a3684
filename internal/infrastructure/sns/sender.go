package sns

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/go-social-api/internal/config"
	awsinfra "github.com/go-social-api/internal/infrastructure/aws"
)

// EventPublisher publishes application events to an SNS topic.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, message string) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

// NewPublisher creates a publisher for cfg.SNSNotificationTopicARN in cfg.SNSRegion.
func NewPublisher(ctx context.Context, cfg *config.Config) (EventPublisher, error) {
	if cfg.SNSNotificationTopicARN == "" {
		return nil, errors.New("sns: no notification topic configured")
	}
	awsCfg, err := awsinfra.LoadConfig(ctx, cfg, cfg.SNSRegion)
	if err != nil {
		return nil, err
	}
	return &publisher{
		client: sns.NewFromConfig(awsCfg, func(o *sns.Options) {
			o.BaseEndpoint = awsinfra.Endpoint(cfg)
		}),
		topicARN: cfg.SNSNotificationTopicARN,
	}, nil
}

// Publish sends message to the topic with an event_type attribute subscribers can filter on.
func (p *publisher) Publish(ctx context.Context, eventType, message string) error {
	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {DataType: aws.String("String"), StringValue: aws.String(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish %s: %w", eventType, err)
	}
	return nil
}
