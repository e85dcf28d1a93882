package test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/plgd-dev/notification2/notification2/events"
	"github.com/plgd-dev/notification2/notification2/uri"
	pkgHttp "github.com/plgd-dev/notification2/pkg/net/http"
)

const (
	User     = "user"
	Password = "password"
	Token    = "token"
)

// Request is a request received by the API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// API is an in-memory implementation of the Notification 2.0 subscriptions API.
type API struct {
	server *httptest.Server

	mutex         sync.Mutex
	subscriptions []events.Subscription
	requests      []Request
	nextID        int

	// Status codes overriding the regular handling when non-zero.
	SearchStatus int
	DeleteStatus int
	CreateStatus int
	TokenStatus  int
	// TotalPages overrides the value reported in the statistics when non-zero.
	TotalPages int
}

// NewAPI starts the API with the given subscriptions already stored.
func NewAPI(t *testing.T, subscriptions ...events.Subscription) *API {
	a := &API{
		subscriptions: subscriptions,
		nextID:        1000,
	}
	r := mux.NewRouter()
	r.Use(a.recordAndAuthorize)
	r.HandleFunc(uri.Subscriptions, a.listSubscriptions).Methods(http.MethodGet)
	r.HandleFunc(uri.Subscriptions, a.createSubscription).Methods(http.MethodPost)
	r.HandleFunc(uri.AliasSubscription, a.deleteSubscription).Methods(http.MethodDelete)
	r.HandleFunc(uri.Token, a.createToken).Methods(http.MethodPost)
	a.server = httptest.NewServer(r)
	t.Cleanup(a.server.Close)
	return a
}

// MakeSubscriptions returns n subscriptions named name0 .. name(n-1) with ids 1 .. n.
func MakeSubscriptions(name string, n int) []events.Subscription {
	subs := make([]events.Subscription, 0, n)
	for i := 0; i < n; i++ {
		subs = append(subs, events.Subscription{
			ID:           strconv.Itoa(i + 1),
			Subscription: name + strconv.Itoa(i),
			Context:      events.Context_Tenant,
			SubscriptionFilter: events.SubscriptionFilter{
				APIs: []events.EventType{events.EventType_All},
			},
		})
	}
	return subs
}

func (a *API) URL() string {
	return a.server.URL
}

func (a *API) Close() {
	a.server.Close()
}

// Requests returns received requests filtered by method, all of them when method is empty.
func (a *API) Requests(method string) []Request {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	reqs := make([]Request, 0, len(a.requests))
	for _, r := range a.requests {
		if method == "" || r.Method == method {
			reqs = append(reqs, r)
		}
	}
	return reqs
}

func (a *API) Subscriptions() []events.Subscription {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return append([]events.Subscription(nil), a.subscriptions...)
}

func (a *API) recordAndAuthorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		a.mutex.Lock()
		a.requests = append(a.requests, Request{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		a.mutex.Unlock()
		user, password, err := pkgHttp.ParseBasicAuthorization(r.Header.Get(pkgHttp.AuthorizationHeaderKey))
		if err != nil || user != User || password != Password {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set(pkgHttp.ContentTypeHeaderKey, pkgHttp.ApplicationJsonContentType)
	w.WriteHeader(status)
	_ = jsoniter.NewEncoder(w).Encode(v)
}

func queryInt(q url.Values, key string, def int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func (a *API) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.SearchStatus != 0 {
		w.WriteHeader(a.SearchStatus)
		return
	}
	q := r.URL.Query()
	pageSize := queryInt(q, uri.PageSizeQueryKey, 5)
	currentPage := queryInt(q, uri.CurrentPageQueryKey, 1)
	filtered := a.subscriptions
	if name := q.Get(uri.SubscriptionQueryKey); name != "" {
		filtered = nil
		for _, s := range a.subscriptions {
			if s.Subscription == name {
				filtered = append(filtered, s)
			}
		}
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if a.TotalPages != 0 {
		totalPages = a.TotalPages
	}
	page := []events.Subscription{}
	start := (currentPage - 1) * pageSize
	if start < len(filtered) {
		end := start + pageSize
		if end > len(filtered) {
			end = len(filtered)
		}
		page = filtered[start:end]
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subscriptions": page,
		"statistics": map[string]interface{}{
			"currentPage": currentPage,
			"pageSize":    pageSize,
			"totalPages":  totalPages,
		},
	})
}

func (a *API) createSubscription(w http.ResponseWriter, r *http.Request) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.CreateStatus != 0 {
		w.WriteHeader(a.CreateStatus)
		return
	}
	var sub events.Subscription
	if err := jsoniter.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	a.nextID++
	sub.ID = strconv.Itoa(a.nextID)
	a.subscriptions = append(a.subscriptions, sub)
	writeJSON(w, http.StatusCreated, sub)
}

func (a *API) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.DeleteStatus != 0 {
		w.WriteHeader(a.DeleteStatus)
		return
	}
	id := mux.Vars(r)[uri.SubscriptionIDKey]
	for i, s := range a.subscriptions {
		if s.ID == id {
			a.subscriptions = append(a.subscriptions[:i], a.subscriptions[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (a *API) createToken(w http.ResponseWriter, r *http.Request) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.TokenStatus != 0 {
		w.WriteHeader(a.TokenStatus)
		return
	}
	var req events.TokenRequest
	if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil || req.Subscriber == "" || req.Subscription == "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, events.TokenResponse{Token: Token})
}
