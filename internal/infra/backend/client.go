package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"reservation-calendar/internal/domain/reservation"
	"reservation-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

const maxErrorBody = 64 << 10

// Client talks to the reservation REST backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	newKey     func() uuid.UUID
}

func NewClient(baseURL string, timeout time.Duration, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		newKey: uuid.New,
	}
}

func (c *Client) GetArrangementsList(ctx context.Context) ([]reservation.Arrangement, error) {
	var list []reservation.Arrangement
	if err := c.do(ctx, http.MethodGet, "/arrangements/short", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetStatusList(ctx context.Context, domain string) ([]reservation.Status, error) {
	var list []reservation.Status
	if err := c.do(ctx, http.MethodGet, "/statuses/"+url.PathEscape(domain), nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetReservationsList(ctx context.Context) ([]reservation.Reservation, error) {
	var list []reservation.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// AddReservation sends a fresh Idempotency-Key with every call.
func (c *Client) AddReservation(ctx context.Context, cmd reservation.CreateCommand) error {
	header := http.Header{}
	header.Set("Idempotency-Key", c.newKey().String())
	return c.do(ctx, http.MethodPost, "/reservations", cmd, header, nil)
}

type editBody struct {
	StatusID int    `json:"statusId"`
	Note     string `json:"note"`
}

func (c *Client) EditReservation(ctx context.Context, cmd reservation.EditCommand) (reservation.EditResult, error) {
	var res reservation.EditResult
	body := editBody{StatusID: cmd.StatusID, Note: cmd.Note}
	if err := c.do(ctx, http.MethodPut, reservationPath(cmd.ReservationID), body, nil, &res); err != nil {
		return reservation.EditResult{}, err
	}
	return res, nil
}

func (c *Client) DeleteReservation(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, reservationPath(id), nil, nil, nil)
}

func reservationPath(id int) string {
	return "/reservations/" + strconv.Itoa(id)
}

func (c *Client) do(ctx context.Context, method, path string, in any, header http.Header, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(fmt.Errorf("%w: %s %s: %v", ErrInternal, method, path, err), errs.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s %s: %v", ErrInvalidResponse, method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
