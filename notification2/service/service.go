package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/plgd-dev/notification2/notification2/client"
	httpClient "github.com/plgd-dev/notification2/pkg/net/http/client"
	pkgTime "github.com/plgd-dev/notification2/pkg/time"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Service replaces the configured subscription once and hands it over to the message processing.
type Service struct {
	cfg        Config
	logger     *zap.SugaredLogger
	httpClient *httpClient.Client
	manager    *client.Manager
}

func New(ctx context.Context, cfg Config, logger *zap.Logger, tracerProvider trace.TracerProvider) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	c, err := httpClient.New(cfg.Clients.Notification2.HTTP, tracerProvider)
	if err != nil {
		return nil, fmt.Errorf("cannot create http client: %w", err)
	}
	m, err := client.New(cfg.Clients.Notification2.Connection, c.HTTP(), logger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("cannot create subscription manager: %w", err)
	}
	return &Service{
		cfg:        cfg,
		logger:     logger.Sugar(),
		httpClient: c,
		manager:    m,
	}, nil
}

func (s *Service) Manager() *client.Manager {
	return s.manager
}

// Run initializes the subscription. On failure it waits ErrorDelay and returns
// the error; the caller decides whether to start again.
func (s *Service) Run(ctx context.Context) error {
	d := s.manager.Descriptor()
	s.logger.Infof("initializing subscription '%v': context=%v, eventType=%v, device=%v, typeFilter=%v", d.Name, d.Context, d.EventType, d.DeviceID, d.TypeFilter)
	if err := s.manager.Initialize(ctx); err != nil {
		s.logger.Errorf("cannot initialize subscription '%v': %v", d.Name, err)
		_ = pkgTime.Sleep(ctx, s.cfg.ErrorDelay)
		return err
	}
	sub := s.manager.Subscription()
	s.logger.Infof("subscription '%v' ready with id %v", sub.Subscription, sub.ID)
	if s.cfg.CreateToken {
		if _, err := s.manager.CreateToken(ctx); err != nil {
			return err
		}
		s.logger.Infof("token for subscriber '%v' created, expires in %v minutes", s.manager.Subscriber(), s.cfg.Clients.Notification2.Connection.Token.ExpiresInMinutes)
	}
	s.logger.Infof("starting processing messages of subscription '%v'", sub.Subscription)
	return nil
}

// Close releases the http client and, when configured, deletes the subscription.
func (s *Service) Close(ctx context.Context) error {
	var errors *multierror.Error
	if s.cfg.UnsubscribeOnClose {
		if err := s.manager.Unsubscribe(ctx); err != nil {
			errors = multierror.Append(errors, err)
		}
	}
	s.httpClient.Close()
	return errors.ErrorOrNil()
}

// Serve runs the service and closes it. Errors of both steps are returned.
func (s *Service) Serve(ctx context.Context) error {
	runErr := s.Run(ctx)
	closeErr := s.Close(ctx)
	return multierror.Append(runErr, closeErr).ErrorOrNil()
}
