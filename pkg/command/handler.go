package command

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/kalendu/kalendu/internal/rest"
	"github.com/kalendu/kalendu/pkg/calendar"
	"github.com/kalendu/kalendu/pkg/event"
	log "github.com/sirupsen/logrus"
)

// Handler exposes the command interpreter over HTTP against one server-held
// session. Dispatch is a plain read-modify-write over the session's
// calendars, so requests are serialized behind a mutex.
type Handler struct {
	mu      sync.Mutex
	session *Session
}

func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

type CommandRequest struct {
	Command string `json:"command"`
}

type CommandResponse struct {
	Output string `json:"output"`
}

type CalendarDTO struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Active   bool   `json:"active"`
}

type EventDTO struct {
	Name        string `json:"name"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	IsPublic    bool   `json:"isPublic"`
	AllDay      bool   `json:"allDay"`
}

// Execute runs one command line and returns its result string.
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeError(w, http.StatusBadRequest, "Empty command", "'command' must contain one command line")
		return
	}

	h.mu.Lock()
	output, err := Dispatch(strings.Fields(req.Command), h.session)
	h.mu.Unlock()
	if err != nil {
		log.Debugf("command failed: %v", err)
		writeError(w, statusFor(err), err.Error(), "")
		return
	}
	writeJSON(w, http.StatusOK, CommandResponse{Output: output})
}

// ListCalendars returns every registered calendar and marks the active one.
func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := h.session.Directory().Names()
	dtos := make([]CalendarDTO, 0, len(names))
	for _, name := range names {
		c, _ := h.session.Directory().Get(name)
		dtos = append(dtos, CalendarDTO{
			Name:     c.Name(),
			Timezone: c.Timezone(),
			Active:   name == h.session.ActiveName(),
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListEvents returns the active calendar's events, filtered by ?on=<date>
// or ?from=<datetime>&to=<datetime>.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cal, ok := h.session.Active()
	if !ok {
		writeError(w, http.StatusNotFound, "No active calendar", "")
		return
	}

	var events []event.Event
	switch {
	case r.URL.Query().Get("on") != "":
		date, err := parseDate(r.URL.Query().Get("on"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid 'on' date", "'on' must be yyyy-MM-dd")
			return
		}
		events = cal.EventsOn(date)
	case r.URL.Query().Get("from") != "" && r.URL.Query().Get("to") != "":
		from, err := parseDateTime(r.URL.Query().Get("from"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid 'from' datetime", "'from' must be yyyy-MM-ddTHH:mm")
			return
		}
		to, err := parseDateTime(r.URL.Query().Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid 'to' datetime", "'to' must be yyyy-MM-ddTHH:mm")
			return
		}
		events = cal.EventsBetween(from, to)
	default:
		events = cal.Events()
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func eventToDTO(e event.Event) EventDTO {
	return EventDTO{
		Name:        e.Name,
		Start:       e.Start.Format(dateTimeLayout),
		End:         e.End.Format(dateTimeLayout),
		Description: e.Description,
		Location:    e.Location,
		IsPublic:    e.IsPublic,
		AllDay:      e.IsAllDay(),
	}
}

func statusFor(err error) int {
	var missing *MissingParameterError
	var invalidToken *InvalidTokenError
	var invalidCommand *InvalidCommandError
	var illegal *IllegalArgumentError
	var notFound *NotFoundError
	var calNotFound *calendar.NotFoundError
	var exists *calendar.AlreadyExistsError

	switch {
	case errors.As(err, &missing), errors.As(err, &invalidToken),
		errors.As(err, &invalidCommand), errors.As(err, &illegal):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.As(err, &calNotFound):
		return http.StatusNotFound
	case errors.Is(err, calendar.ErrConflict), errors.As(err, &exists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		log.Errorf("failed to encode error response: %v", err)
	}
}
