package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/plgd-dev/notification2/notification2/events"
	pkgHttp "github.com/plgd-dev/notification2/pkg/net/http"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Manager keeps one named subscription of the Notification 2.0 API. It is not safe for concurrent use.
type Manager struct {
	cfg           Config
	client        *http.Client
	logger        *zap.SugaredLogger
	authorization string
	subscriber    string

	eventType  events.EventType
	deviceID   string
	typeFilter string

	state        State
	subscription *events.Subscription
}

// New validates the configuration and creates the manager. When httpClient is nil, http.DefaultClient is used.
func New(cfg Config, httpClient *http.Client, logger *zap.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, withKind(ErrConfiguration, err)
	}
	eventType, err := events.ParseEventType(cfg.Subscription.EventType)
	if err != nil {
		return nil, withKind(ErrConfiguration, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	subscriber := cfg.Token.Subscriber
	if subscriber == "" {
		// subscriber names are limited to alphanumeric characters
		subscriber = "subscriber" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return &Manager{
		cfg:           cfg,
		client:        httpClient,
		logger:        logger.Sugar().With("subscription", cfg.Subscription.Name),
		authorization: pkgHttp.BasicAuthorization(cfg.User, cfg.Password),
		subscriber:    subscriber,
		eventType:     eventType,
		deviceID:      cfg.Subscription.Device,
		typeFilter:    cfg.Subscription.TypeFilter,
	}, nil
}

// WithEventType selects the API whose notifications are subscribed.
func (m *Manager) WithEventType(eventType events.EventType) *Manager {
	m.eventType = eventType
	return m
}

// WithDevice selects one device by its id or all devices with events.AllDevices.
func (m *Manager) WithDevice(deviceID string) *Manager {
	m.deviceID = deviceID
	return m
}

// WithTypeFilter restricts notifications to one type or to all types with events.AllTypes.
func (m *Manager) WithTypeFilter(typeFilter string) *Manager {
	m.typeFilter = typeFilter
	return m
}

func (m *Manager) Descriptor() Descriptor {
	return NewDescriptor(m.cfg.Subscription.Name, m.eventType, m.deviceID, m.typeFilter)
}

func (m *Manager) State() State {
	return m.state
}

// Subscription returns the record created by Initialize or nil.
func (m *Manager) Subscription() *events.Subscription {
	if m.subscription == nil {
		return nil
	}
	s := *m.subscription
	return &s
}

// Subscriber returns the subscriber name used by CreateToken.
func (m *Manager) Subscriber() string {
	return m.subscriber
}

func (m *Manager) fail(err error) error {
	m.state = State_Failed
	return err
}

// Initialize replaces the subscription on the platform: an existing subscription
// with the same name is deleted and the subscription is created from the Descriptor.
func (m *Manager) Initialize(ctx context.Context) error {
	d := m.Descriptor()
	m.subscription = nil

	m.state = State_Searching
	m.logger.Infof("searching existing subscription named '%v'", d.Name)
	existing, found, err := m.findSubscription(ctx, d.Name)
	if err != nil {
		return m.fail(fmt.Errorf("cannot find subscription '%v': %w", d.Name, err))
	}
	if found {
		m.logger.Infof("found subscription %v", existing.ID)
		m.state = State_Deleting
		if err = m.deleteSubscription(ctx, existing.ID); err != nil {
			return m.fail(fmt.Errorf("cannot delete subscription %v: %w", existing.ID, withKind(ErrReplaceFailed, err)))
		}
	}

	m.state = State_Creating
	m.logger.Infof("creating new subscription")
	sub, err := m.createSubscription(ctx, d)
	if err != nil {
		return m.fail(fmt.Errorf("cannot create subscription '%v': %w", d.Name, err))
	}
	m.logger.Infof("created subscription %v", sub.ID)
	m.subscription = &sub
	m.state = State_Ready
	return nil
}

type request struct {
	op     string
	method string
	href   string
	query  url.Values
	body   []byte
	header map[string]string
}

func (m *Manager) do(ctx context.Context, r request) (int, []byte, error) {
	u := pkgHttp.JoinURL(m.cfg.URL, r.href)
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return 0, nil, fmt.Errorf("cannot create %v request: %w", r.op, err)
	}
	req.Header.Set(pkgHttp.AuthorizationHeaderKey, m.authorization)
	for k, v := range r.header {
		req.Header.Set(k, v)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: r.op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Op: r.op, Err: err}
	}
	return resp.StatusCode, data, nil
}
