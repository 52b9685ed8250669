// Package view holds the client-side state behind each screen of the booking app:
// the landing directory, a doctor profile, the booking form and the appointments list.
package view

import (
	"context"
	"strings"

	"github.com/saikiran2022/Health-care/pkg/client"
)

const ErrFetchDoctors = "Failed to fetch doctors"

// Landing lists every doctor once and filters them locally
type Landing struct {
	api     *client.Client
	doctors []client.Doctor
	loaded  bool
	err     string
}

func NewLanding(api *client.Client) *Landing {
	return &Landing{api: api}
}

// Load fetches the doctor list. Later calls are no-ops, including after a failure.
func (l *Landing) Load(ctx context.Context) error {
	if l.loaded {
		return nil
	}
	l.loaded = true

	doctors, err := l.api.ListDoctors(ctx)
	if err != nil {
		l.err = ErrFetchDoctors
		return err
	}
	l.doctors = doctors
	return nil
}

// Error is the message shown instead of the list, empty when loading succeeded
func (l *Landing) Error() string {
	return l.err
}

func (l *Landing) Doctors() []client.Doctor {
	return l.doctors
}

// Search matches query case-insensitively against "name specialization".
// An empty query returns every doctor.
func (l *Landing) Search(query string) []client.Doctor {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return l.doctors
	}

	var matches []client.Doctor
	for _, d := range l.doctors {
		haystack := strings.ToLower(d.Name + " " + d.Specialization)
		if strings.Contains(haystack, query) {
			matches = append(matches, d)
		}
	}
	return matches
}
