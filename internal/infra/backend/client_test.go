//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/infra/backend"
	"reservation-calendar/internal/pkg/errs"
	"reservation-calendar/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	header http.Header
	body   string
}

// newServer answers every request with status and body and records what it got.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.header = r.Header.Clone()
		rec.body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClientLookups(t *testing.T) {
	t.Run("arrangements", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, `[{"id":1,"value":"Masaža"},{"id":2,"value":"Manikir"}]`)
		client := backend.NewClient(srv.URL+"/", time.Second, "secret")

		list, err := client.GetArrangementsList(context.Background())

		require.NoError(t, err)
		assert.Equal(t, builder.Arrangements(), list)
		assert.Equal(t, http.MethodGet, rec.method)
		assert.Equal(t, "/arrangements/short", rec.path)
		assert.Equal(t, "Bearer secret", rec.header.Get("Authorization"))
		assert.Equal(t, "application/json", rec.header.Get("Accept"))
	})

	t.Run("statuses escape the domain", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, `[{"statusId":3,"statusName":"Otkazano","statusCode":"term_canceled"}]`)
		client := backend.NewClient(srv.URL, time.Second, "")

		list, err := client.GetStatusList(context.Background(), "term status")

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].IsCanceled())
		assert.Equal(t, "/statuses/term%20status", rec.path)
		assert.Empty(t, rec.header.Get("Authorization"))
	})

	t.Run("reservations decode the wire date", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `[{"reservationId":4,"startDate":"2024-03-15T10:00:00","durationMinutes":45,"statusId":1,"note":null,"arrangementId":2}]`)
		client := backend.NewClient(srv.URL, time.Second, "")

		list, err := client.GetReservationsList(context.Background())

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 4, list[0].ReservationID)
		assert.Equal(t, "2024-03-15T10:00:00", list[0].StartDate.String())
		assert.Nil(t, list[0].Note)
	})
}

func TestClientAddReservation(t *testing.T) {
	srv, rec := newServer(t, http.StatusCreated, `{}`)
	client := backend.NewClient(srv.URL, time.Second, "")
	cmd := reservation.CreateCommand{
		ArrangementID:   1,
		StartDate:       reservation.NewLocalTime(builder.BaseTime),
		DurationMinutes: 60,
		Note:            "",
	}

	require.NoError(t, client.AddReservation(context.Background(), cmd))
	firstKey := rec.header.Get("Idempotency-Key")
	require.NoError(t, client.AddReservation(context.Background(), cmd))

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/reservations", rec.path)
	assert.Equal(t, "application/json", rec.header.Get("Content-Type"))
	assert.JSONEq(t, `{"arrangementId":1,"startDate":"2024-03-15T10:00:00","durationMinutes":60,"note":""}`, rec.body)

	_, err := uuid.Parse(firstKey)
	assert.NoError(t, err)
	assert.NotEqual(t, firstKey, rec.header.Get("Idempotency-Key"))
}

func TestClientEditReservation(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"data":{"statusId":2,"statusName":"Potvrđeno","note":null}}`)
	client := backend.NewClient(srv.URL, time.Second, "")

	res, err := client.EditReservation(context.Background(), reservation.EditCommand{ReservationID: 7, StatusID: 2, Note: ""})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/reservations/7", rec.path)
	assert.JSONEq(t, `{"statusId":2,"note":""}`, rec.body)
	require.NotNil(t, res.Data.StatusID)
	assert.Equal(t, 2, *res.Data.StatusID)
	assert.True(t, res.Data.NoteSet)
	assert.Nil(t, res.Data.Note)
}

func TestClientDeleteReservation(t *testing.T) {
	srv, rec := newServer(t, http.StatusNoContent, "")
	client := backend.NewClient(srv.URL, time.Second, "")

	require.NoError(t, client.DeleteReservation(context.Background(), 12))

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/reservations/12", rec.path)
	assert.Empty(t, rec.body)
}

func TestClientErrors(t *testing.T) {
	t.Run("backend message is kept", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusUnprocessableEntity, `{"message":"Termin je zauzet"}`)
		client := backend.NewClient(srv.URL, time.Second, "")

		err := client.AddReservation(context.Background(), reservation.CreateCommand{})

		var apiErr *backend.APIError
		require.True(t, errs.As(err, &apiErr))
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "Termin je zauzet", apiErr.PublicMessage())
	})

	t.Run("404 matches not found", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusNotFound, `not json`)
		client := backend.NewClient(srv.URL, time.Second, "")

		err := client.DeleteReservation(context.Background(), 1)

		assert.ErrorIs(t, err, backend.ErrNotFound)
		var apiErr *backend.APIError
		require.True(t, errs.As(err, &apiErr))
		assert.Empty(t, apiErr.Message)
	})

	t.Run("undecodable body", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `{"broken"`)
		client := backend.NewClient(srv.URL, time.Second, "")

		_, err := client.GetReservationsList(context.Background())

		assert.ErrorIs(t, err, backend.ErrInvalidResponse)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, `[]`)
		srv.Close()
		client := backend.NewClient(srv.URL, time.Second, "")

		_, err := client.GetArrangementsList(context.Background())

		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
		assert.True(t, errs.Is(err, backend.ErrInternal))
	})
}

func TestEditResultPayload(t *testing.T) {
	var res reservation.EditResult
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"statusId":3}}`), &res))

	assert.False(t, res.Data.NoteSet)
}
