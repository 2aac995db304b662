package email

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/osa911/contact-api/internal/email"

var errEmptyID = errors.New("provider accepted the message without an id")

// ResendSender sends messages through the Resend API.
type ResendSender struct {
	client *resend.Client
	tracer trace.Tracer
}

type resendOptions struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// Option customizes a ResendSender.
type Option func(*resendOptions)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *resendOptions) {
		o.httpClient = c
	}
}

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u *url.URL) Option {
	return func(o *resendOptions) {
		o.baseURL = u
	}
}

// NewResendSender creates a sender for the given API key.
func NewResendSender(apiKey string, opts ...Option) *ResendSender {
	o := resendOptions{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	client := resend.NewCustomClient(o.httpClient, apiKey)
	if o.baseURL != nil {
		client.BaseURL = o.baseURL
	}

	return &ResendSender{
		client: client,
		tracer: otel.Tracer(tracerName),
	}
}

// NewResendFactory returns a Factory that builds a fresh ResendSender per call.
func NewResendFactory(opts ...Option) Factory {
	return func(apiKey string) Sender {
		return NewResendSender(apiKey, opts...)
	}
}

// Send submits msg and returns the provider message id.
func (s *ResendSender) Send(ctx context.Context, msg Message) (*SendResult, error) {
	ctx, span := s.tracer.Start(ctx, "email.send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("email.provider", "resend"),
		attribute.String("email.recipient_domain", recipientDomain(msg.To)),
	)

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return nil, &ProviderError{Op: "send", Err: err}
	}
	if sent == nil || sent.Id == "" {
		span.SetStatus(codes.Error, "empty id")
		return nil, &ProviderError{Op: "send", Err: errEmptyID}
	}

	span.SetAttributes(attribute.String("email.id", sent.Id))
	return &SendResult{ID: sent.Id}, nil
}

func recipientDomain(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 {
		return strings.TrimSuffix(addr[i+1:], ">")
	}
	return ""
}
