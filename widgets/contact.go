package widgets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// PlaceholderFormID marks an endpoint that was never filled in.
const PlaceholderFormID = "REPLACE_WITH_FORM_ID"

// Contact form messages and button labels.
const (
	StatusNotConfigured = "Form is not configured yet. Set contact_endpoint in the site config."
	StatusSendFailed    = "Sorry, message failed to send. Please try again."
	LabelSend           = "Send Message"
	LabelSending        = "Sending..."
)

var (
	ErrNotConfigured  = errors.New("contact endpoint is not configured")
	ErrSubmitInFlight = errors.New("contact submission already in flight")
)

// SubmitError reports a non-2xx response from the form endpoint.
type SubmitError struct {
	Status int
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("contact submit failed: %d", e.Status)
}

// FormState is the contact form lifecycle.
type FormState int

const (
	FormIdle FormState = iota
	FormSending
	FormSent
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormSending:
		return "sending"
	case FormSent:
		return "sent"
	case FormFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Button is the submit control.
type Button struct {
	Label    string
	Disabled bool
}

// ContactForm posts form fields as multipart/form-data to an external form
// endpoint. Only one submission may be in flight; the submit button is
// disabled while it runs and restored afterwards whatever the outcome.
type ContactForm struct {
	endpoint   string
	httpClient *http.Client

	mu       sync.Mutex
	state    FormState
	status   string
	button   Button
	inFlight bool
}

// ContactOption configures a ContactForm.
type ContactOption func(*ContactForm)

// WithContactHTTPClient replaces the default http.Client.
func WithContactHTTPClient(hc *http.Client) ContactOption {
	return func(f *ContactForm) {
		f.httpClient = hc
	}
}

// WithButtonLabel sets the idle submit label.
func WithButtonLabel(label string) ContactOption {
	return func(f *ContactForm) {
		f.button.Label = label
	}
}

// NewContactForm creates an idle form that submits to endpoint.
func NewContactForm(endpoint string, opts ...ContactOption) *ContactForm {
	f := &ContactForm{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: http.DefaultClient,
		button:     Button{Label: LabelSend},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Configured reports whether the endpoint is set to something real.
func (f *ContactForm) Configured() bool {
	return f.endpoint != "" && !strings.Contains(f.endpoint, PlaceholderFormID)
}

// State returns the current lifecycle state.
func (f *ContactForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Status returns the inline status message, empty when there is none.
func (f *ContactForm) Status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Button returns the submit control as it should currently render.
func (f *ContactForm) Button() Button {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.button
}

// Submit sends fields to the endpoint. An unconfigured endpoint is reported
// inline and nothing is sent.
func (f *ContactForm) Submit(ctx context.Context, fields url.Values) error {
	label, err := f.begin()
	if err != nil {
		return err
	}

	err = f.post(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	f.button = Button{Label: label}
	if err != nil {
		f.state = FormFailed
		f.status = StatusSendFailed
		return err
	}
	f.state = FormSent
	return nil
}

func (f *ContactForm) begin() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return "", ErrSubmitInFlight
	}
	f.status = ""
	if !f.Configured() {
		f.status = StatusNotConfigured
		return "", ErrNotConfigured
	}
	label := f.button.Label
	if label == "" {
		label = LabelSend
	}
	f.inFlight = true
	f.state = FormSending
	f.button = Button{Label: LabelSending, Disabled: true}
	return label, nil
}

func (f *ContactForm) post(ctx context.Context, fields url.Values) error {
	body, contentType, err := encodeMultipart(fields)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("contact submit: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SubmitError{Status: resp.StatusCode}
	}
	return nil
}

func encodeMultipart(fields url.Values) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range fields[k] {
			if err := mw.WriteField(k, v); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", k, err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
