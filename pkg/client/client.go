// Package client is a Go client for the doctor directory and appointment API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Availability   string `json:"availability"`
	Experience     string `json:"experience"`
	Image          string `json:"image,omitempty"`
}

type DoctorSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience,omitempty"`
	Image          string `json:"image,omitempty"`
}

type Appointment struct {
	ID          string        `json:"id"`
	DoctorID    string        `json:"doctorId"`
	PatientName string        `json:"patientName"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Reason      string        `json:"reason"`
	Phone       string        `json:"phone,omitempty"`
	Email       string        `json:"email,omitempty"`
	Doctor      DoctorSummary `json:"doctor"`
}

type BookingRequest struct {
	DoctorID    string `json:"doctorId"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

type BookingResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type SeedResult struct {
	Message string   `json:"message"`
	Count   int      `json:"count"`
	Doctors []Doctor `json:"doctors"`
}

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"error"`
	Details    map[string]string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API served at baseURL, e.g. http://localhost:5000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListDoctors(ctx context.Context) ([]Doctor, error) {
	var doctors []Doctor
	if err := c.do(ctx, http.MethodGet, "/api/doctors", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *Client) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	var doctor Doctor
	if err := c.do(ctx, http.MethodGet, "/api/doctors/"+url.PathEscape(id), nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) SeedDoctors(ctx context.Context) (*SeedResult, error) {
	var result SeedResult
	if err := c.do(ctx, http.MethodPost, "/api/doctors/seed", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) BookAppointment(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	var result BookingResult
	if err := c.do(ctx, http.MethodPost, "/api/appointments", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListAppointments(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *Client) CancelAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/appointments/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Error bodies that are not JSON leave only the status code
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
