package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	ebtypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"

	"github.com/innovatech/employee-portal/internal/server/models"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newEventBridgeClientFromConfig = func(cfg aws.Config, optFns ...func(*eventbridge.Options)) PutEventsAPI {
		return eventbridge.NewFromConfig(cfg, optFns...)
	}
)

// PutEventsAPI is the part of the EventBridge client used by the publisher.
type PutEventsAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// EventBridgeOptions configure the AWS client. AccessKeyID/SecretAccessKey
// are optional; when empty the default credential chain is used.
type EventBridgeOptions struct {
	Region          string
	BaseEndpoint    string
	AccessKeyID     string
	SecretAccessKey string
	EventBusName    string
}

// EventBridgePublisher emits provisioning events to an EventBridge bus.
type EventBridgePublisher struct {
	client PutEventsAPI
	bus    string
}

func NewEventBridgePublisher(ctx context.Context, opts EventBridgeOptions) (*EventBridgePublisher, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newEventBridgeClientFromConfig(cfg, func(o *eventbridge.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
	})

	return &EventBridgePublisher{client: client, bus: opts.EventBusName}, nil
}

type createdDetail struct {
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type deletedDetail struct {
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Action     string `json:"action"`
}

func (p *EventBridgePublisher) EmployeeCreated(ctx context.Context, e *models.Employee) error {
	return p.put(ctx, DetailTypeCreated, createdDetail{
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		Name:       e.Name,
		Department: e.Department,
	})
}

func (p *EventBridgePublisher) EmployeeDeleted(ctx context.Context, e *models.Employee) error {
	return p.put(ctx, DetailTypeDeleted, deletedDetail{
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		Name:       e.Name,
		Department: e.Department,
		Action:     "delete",
	})
}

func (p *EventBridgePublisher) put(ctx context.Context, detailType string, detail any) error {
	b, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshal event detail: %w", err)
	}

	entry := ebtypes.PutEventsRequestEntry{
		Source:     aws.String(Source),
		DetailType: aws.String(detailType),
		Detail:     aws.String(string(b)),
	}
	if p.bus != "" {
		entry.EventBusName = aws.String(p.bus)
	}

	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []ebtypes.PutEventsRequestEntry{entry},
	})
	if err != nil {
		return fmt.Errorf("put events: %w", err)
	}
	if out.FailedEntryCount > 0 {
		return fmt.Errorf("put events: %d entries failed", out.FailedEntryCount)
	}
	return nil
}
