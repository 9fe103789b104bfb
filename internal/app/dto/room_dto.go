package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/roomsense/room-ranking-service/internal/pkg/ahp"
	"github.com/roomsense/room-ranking-service/internal/pkg/exception"
)

// UpsertRoomRequest creates or replaces a room facility record. The room
// id comes from the URL, not the body.
type UpsertRoomRequest struct {
	ID         string         `json:"-"`
	Name       string         `json:"name" validate:"required"`
	Facilities ahp.Facilities `json:"facilities"`
}

func (r *UpsertRoomRequest) Bind(req *http.Request) error {
	r.ID = chi.URLParam(req, "roomID")
	if r.ID == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "room id is required",
		}
	}

	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// Room is one room record in API responses.
type Room struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Facilities ahp.Facilities `json:"facilities"`
}

// ListRoomsResponse is the room listing payload.
type ListRoomsResponse struct {
	Rooms []Room `json:"rooms"`
	Total int    `json:"total"`
}

// ReadingRequest is one telemetry sample pushed by the ingestion path.
type ReadingRequest struct {
	RoomID     string     `json:"room_id" validate:"required"`
	SensorType string     `json:"sensor_type" validate:"required"`
	Value      float64    `json:"value"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

func (r *ReadingRequest) Bind(_ *http.Request) error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if !knownSensorType(r.SensorType) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("unknown sensor type %q", r.SensorType),
		}
	}

	return nil
}

func knownSensorType(sensorType string) bool {
	for _, leaf := range ahp.Leaves() {
		if leaf.SensorType == sensorType {
			return true
		}
	}

	return false
}

// BookingRequest registers a confirmed calendar booking for a room, used
// by the availability blend.
type BookingRequest struct {
	RoomID string    `json:"-"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

func (r *BookingRequest) Bind(req *http.Request) error {
	r.RoomID = chi.URLParam(req, "roomID")
	if r.RoomID == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "room id is required",
		}
	}

	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if !r.End.After(r.Start) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "end must be after start",
		}
	}

	return nil
}
