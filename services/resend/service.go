package resend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/resend/resend-go/v2"

	"github.com/alumicraft/docmailer/config"
	"github.com/alumicraft/docmailer/dto"
	"github.com/alumicraft/docmailer/interfaces"
	"github.com/alumicraft/docmailer/internal/tracing"
)

var (
	ErrServiceDisabled    = errors.New("email service is not enabled")
	ErrMissingAPIKey      = errors.New("resend api key not configured")
	ErrMissingFromAddress = errors.New("default sender address not configured")
)

type resendDeliverer struct {
	cfg    *config.ResendConfig
	client *resend.Client
}

func NewResendDeliverer(cfg *config.ResendConfig) interfaces.EmailDeliverer {
	var client *resend.Client
	if cfg.APIKey != "" {
		client = resend.NewClient(cfg.APIKey)
	}
	return &resendDeliverer{
		cfg:    cfg,
		client: client,
	}
}

// Deliver sends a branded document email through Resend. A misconfigured or
// unreachable provider resolves to an error, so the caller always gets a
// definitive outcome.
func (s *resendDeliverer) Deliver(ctx context.Context, request *dto.DeliveryRequest) (*dto.DeliveryResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "resendDeliverer.Deliver")
	defer span.Finish()
	tracing.TagComponentDelivery(span)
	tracing.TagDocument(span, request.DocumentType, request.DocumentID)

	if err := s.checkConfigured(); err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    s.sender(),
		To:      []string{request.ToAddress},
		Subject: subjectFor(request),
		Html:    renderBody(request),
		Tags: []resend.Tag{
			{Name: "doctype", Value: scrub(request.DocumentType)},
			{Name: "document", Value: scrub(request.DocumentID)},
		},
	}
	if request.CcAddress != "" {
		params.Cc = []string{request.CcAddress}
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		tracing.TraceErr(span, err)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("resend api request timed out: %w", err)
		}
		return &dto.DeliveryResult{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	span.LogKV("providerMessageId", sent.Id)
	return &dto.DeliveryResult{
		Success:   true,
		MessageID: sent.Id,
	}, nil
}

// VerifyConnection checks credentials with a cheap read against the API.
func (s *resendDeliverer) VerifyConnection(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "resendDeliverer.VerifyConnection")
	defer span.Finish()
	tracing.TagComponentDelivery(span)

	if err := s.checkConfigured(); err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.Domains.ListWithContext(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (s *resendDeliverer) checkConfigured() error {
	if !s.cfg.Enabled {
		return ErrServiceDisabled
	}
	if s.cfg.APIKey == "" || s.client == nil {
		return ErrMissingAPIKey
	}
	if s.cfg.DefaultFromAddress == "" {
		return ErrMissingFromAddress
	}
	return nil
}

func (s *resendDeliverer) requestTimeout() time.Duration {
	if s.cfg.RequestTimeoutSec > 0 {
		return time.Duration(s.cfg.RequestTimeoutSec) * time.Second
	}
	return 30 * time.Second
}

func (s *resendDeliverer) sender() string {
	if s.cfg.DefaultFromName != "" {
		return fmt.Sprintf("%s <%s>", s.cfg.DefaultFromName, s.cfg.DefaultFromAddress)
	}
	return s.cfg.DefaultFromAddress
}

func subjectFor(request *dto.DeliveryRequest) string {
	return fmt.Sprintf("%s %s", request.DocumentType, request.DocumentID)
}

func scrub(value string) string {
	value = strings.ReplaceAll(value, "-", "_")
	value = strings.ReplaceAll(value, " ", "_")
	return strings.ToLower(value)
}
