package view

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	deliveryHttp "github.com/saikiran2022/Health-care/internal/delivery/http"
	"github.com/saikiran2022/Health-care/internal/delivery/http/handler"
	"github.com/saikiran2022/Health-care/internal/delivery/http/middleware"
	"github.com/saikiran2022/Health-care/internal/repository/memory"
	"github.com/saikiran2022/Health-care/internal/service"
	"github.com/saikiran2022/Health-care/internal/usecase"
	"github.com/saikiran2022/Health-care/pkg/client"
	"github.com/saikiran2022/Health-care/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// newAPI serves the real router over an in-memory store
func newAPI(t *testing.T) *client.Client {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewStore()
	auditService := service.NewAuditService(log, store.AuditLogs())
	router := deliveryHttp.NewRouter(
		handler.NewDoctorHandler(usecase.NewDoctorUsecase(log, store.Doctors(), service.NewNoopDoctorCache(), auditService)),
		handler.NewAppointmentHandler(usecase.NewAppointmentUsecase(log, validator.NewValidator(), store.Appointments(), auditService, service.NewNoopEventPublisher())),
		handler.NewAuditLogHandler(usecase.NewAuditLogUsecase(log, store.AuditLogs())),
		middleware.NewLoggingMiddleware(log),
		middleware.NewCORSMiddleware(""),
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

// newSeededAPI seeds the three catalog doctors and returns them
func newSeededAPI(t *testing.T) (*client.Client, []client.Doctor) {
	t.Helper()

	api := newAPI(t)
	seeded, err := api.SeedDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, seeded.Doctors, 3)
	return api, seeded.Doctors
}

func findDoctor(t *testing.T, doctors []client.Doctor, name string) client.Doctor {
	t.Helper()
	for _, d := range doctors {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("doctor %q not seeded", name)
	return client.Doctor{}
}

// newBrokenAPI answers every request with a 500
func newBrokenAPI(t *testing.T) *client.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}
