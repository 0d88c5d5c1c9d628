package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/infra"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

// TokenIssuer signs the bearer token that identifies the acting mentor.
type TokenIssuer interface {
	GenerateToken(mentorID uuid.UUID) (string, error)
}

// Client is an AvailabilityStore and DefaultsProvider backed by the HTTP API of
// another availability service. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenIssuer
}

var (
	_ shared.AvailabilityStore = (*Client)(nil)
	_ shared.DefaultsProvider  = (*Client)(nil)
)

func NewClient(baseURL string, timeout time.Duration, tokens TokenIssuer) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

func (c *Client) ListTimeslots(ctx context.Context, mentorID uuid.UUID) ([]shared.AnnotatedTimeslot, error) {
	payload, err := c.do(ctx, mentorID, http.MethodGet, "/api/timeslots", nil, errs.ErrTimeslotNotFound)
	if err != nil {
		return nil, err
	}
	items, err := timeslotsFrom(payload)
	if err != nil {
		return nil, decodeErr("list timeslots", err)
	}
	out, err := annotatedList(items, session.Summary{})
	if err != nil {
		return nil, decodeErr("list timeslots", err)
	}
	return out, nil
}

func (c *Client) ListSessionTimeslots(ctx context.Context, mentorID, sessionID uuid.UUID) ([]shared.AnnotatedTimeslot, error) {
	path := fmt.Sprintf("/api/sessions/%s/timeslots", sessionID)
	payload, err := c.do(ctx, mentorID, http.MethodGet, path, nil, errs.ErrSessionNotFound)
	if err != nil {
		return nil, err
	}
	items, err := timeslotsFrom(payload)
	if err != nil {
		return nil, decodeErr("list session timeslots", err)
	}
	out, err := annotatedList(items, session.Summary{ID: sessionID})
	if err != nil {
		return nil, decodeErr("list session timeslots", err)
	}
	return out, nil
}

func (c *Client) ListSessions(ctx context.Context, mentorID uuid.UUID) ([]shared.SessionTimeslots, error) {
	payload, err := c.do(ctx, mentorID, http.MethodGet, "/api/sessions", nil, errs.ErrSessionNotFound)
	if err != nil {
		return nil, err
	}
	var items []fields
	if len(payload) > 0 && !isNull(payload) {
		if isArray(payload) {
			items, err = decodeList(payload)
		} else {
			var obj fields
			if obj, err = decodeObject(payload); err == nil {
				items, err = obj.list("sessions", "items")
			}
		}
		if err != nil {
			return nil, decodeErr("list sessions", err)
		}
	}

	out := make([]shared.SessionTimeslots, 0, len(items))
	for i, it := range items {
		st, err := sessionTimeslotsFrom(it, mentorID)
		if err != nil {
			return nil, decodeErr("list sessions", errs.Wrapf(err, "session %d", i))
		}
		out = append(out, st)
	}
	return out, nil
}

func (c *Client) GetTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID) (shared.AnnotatedTimeslot, error) {
	payload, err := c.do(ctx, mentorID, http.MethodGet, "/api/timeslots/"+timeslotID.String(), nil, errs.ErrTimeslotNotFound)
	if err != nil {
		return shared.AnnotatedTimeslot{}, err
	}
	if len(payload) == 0 || isNull(payload) {
		return shared.AnnotatedTimeslot{}, infra.WrapRepoErr("get timeslot", errs.ErrTimeslotNotFound, infra.KindNotFound)
	}
	obj, err := decodeObject(payload)
	if err != nil {
		return shared.AnnotatedTimeslot{}, decodeErr("get timeslot", err)
	}
	out, err := timeslotFrom(obj, session.Summary{})
	if err != nil {
		return shared.AnnotatedTimeslot{}, decodeErr("get timeslot", err)
	}
	return out, nil
}

type sessionBody struct {
	PositionID     uuid.UUID `json:"position_id"`
	Price          *float64  `json:"price"`
	LocationName   string    `json:"location_name"`
	LocationMapURL string    `json:"location_map_url"`
}

// CreateSession returns s under the id the store assigned to it.
func (c *Client) CreateSession(ctx context.Context, s *session.Session) (*session.Session, error) {
	body := sessionBody{
		PositionID:     s.PositionID(),
		Price:          s.Price(),
		LocationName:   s.LocationName(),
		LocationMapURL: s.LocationMapURL(),
	}
	payload, err := c.do(ctx, s.MentorID(), http.MethodPost, "/api/sessions", body, errs.ErrProfileNotFound)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || isNull(payload) {
		return s, nil
	}
	obj, err := decodeObject(payload)
	if err != nil {
		return nil, decodeErr("create session", err)
	}
	id, err := obj.id("id", "session_id", "sessionId")
	if err != nil {
		return nil, decodeErr("create session", err)
	}
	if id == uuid.Nil {
		return s, nil
	}
	return session.Reconstruct(id, s.MentorID(), s.PositionID(), s.Price(), s.LocationName(), s.LocationMapURL(), s.AgendaDocumentRef(), s.CreatedAt()), nil
}

type windowBody struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func newWindowBody(w timeslot.Window) windowBody {
	return windowBody{
		StartTime: w.Start().Format(time.RFC3339),
		EndTime:   w.End().Format(time.RFC3339),
	}
}

func (c *Client) CreateTimeslots(ctx context.Context, mentorID, sessionID uuid.UUID, windows []timeslot.Window) ([]uuid.UUID, error) {
	body := struct {
		Timeslots []windowBody `json:"timeslots"`
	}{Timeslots: make([]windowBody, 0, len(windows))}
	for _, w := range windows {
		body.Timeslots = append(body.Timeslots, newWindowBody(w))
	}

	path := fmt.Sprintf("/api/sessions/%s/timeslots", sessionID)
	payload, err := c.do(ctx, mentorID, http.MethodPost, path, body, errs.ErrSessionNotFound)
	if err != nil {
		return nil, err
	}
	ids, err := createdIDs(payload)
	if err != nil {
		return nil, decodeErr("create timeslots", err)
	}
	return ids, nil
}

func (c *Client) UpdateTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID, w timeslot.Window) error {
	_, err := c.do(ctx, mentorID, http.MethodPut, "/api/timeslots/"+timeslotID.String(), newWindowBody(w), errs.ErrTimeslotNotFound)
	return err
}

func (c *Client) DeleteTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID) error {
	_, err := c.do(ctx, mentorID, http.MethodDelete, "/api/timeslots/"+timeslotID.String(), nil, errs.ErrTimeslotNotFound)
	return err
}

func (c *Client) Defaults(ctx context.Context, mentorID uuid.UUID) (session.Defaults, error) {
	payload, err := c.do(ctx, mentorID, http.MethodGet, "/api/profile/session-defaults", nil, errs.ErrProfileNotFound)
	if err != nil {
		return session.Defaults{}, err
	}
	if len(payload) == 0 || isNull(payload) {
		return session.Defaults{}, infra.WrapRepoErr("session defaults", errs.ErrProfileNotFound, infra.KindNotFound)
	}
	obj, err := decodeObject(payload)
	if err != nil {
		return session.Defaults{}, decodeErr("session defaults", err)
	}
	d, err := defaultsFrom(obj)
	if err != nil {
		return session.Defaults{}, decodeErr("session defaults", err)
	}
	return d, nil
}

// do sends one authenticated request and returns the unwrapped payload.
// notFound is the cause reported for a 404.
func (c *Client) do(ctx context.Context, mentorID uuid.UUID, method, path string, body any, notFound error) (json.RawMessage, error) {
	op := method + " " + path

	token, err := c.tokens.GenerateToken(mentorID)
	if err != nil {
		return nil, infra.WrapRepoErr(op, err, infra.KindAuth)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, infra.WrapRepoErr(op, err, infra.KindTransport)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr(op, err, infra.KindTransport)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapRepoErr(op, err, infra.KindTransport)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, statusErr(op, resp.StatusCode, errorMessage(raw), notFound)
	}

	payload, err := unwrap(raw)
	if err != nil {
		return nil, infra.WrapRepoErr(op, err, infra.KindTransport)
	}
	return payload, nil
}

func statusErr(op string, status int, message string, notFound error) error {
	cause := errs.Newf("status %d: %s", status, message)
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return infra.WrapRepoErr(op, cause, infra.KindAuth)
	case status == http.StatusNotFound:
		return infra.WrapRepoErr(op, errs.Wrap(notFound, message), infra.KindNotFound)
	case status == http.StatusConflict:
		return infra.WrapRepoErr(op, errs.Wrap(errs.ErrTimeslotBooked, message), infra.KindConstraintViolated)
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return infra.WrapRepoErr(op, errs.Mark(errs.New(message), errs.ErrDomainValidation), infra.KindConstraintViolated)
	default:
		return infra.WrapRepoErr(op, cause, infra.KindTransport)
	}
}

// errorMessage pulls a human message out of {"error":{"message"}}, {"message"} or {"error":"..."}.
func errorMessage(raw []byte) string {
	var body fields
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if nested, ok := body.object("error"); ok {
		if msg := nested.str("message"); msg != "" {
			return msg
		}
	}
	if msg := body.str("error", "message"); msg != "" {
		return msg
	}
	return ""
}

func decodeErr(op string, err error) error {
	return infra.WrapRepoErr(op+": unexpected payload", err, infra.KindTransport)
}
