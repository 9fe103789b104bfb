package service

import (
	"net/http"

	"github.com/roomsense/room-ranking-service/internal/pkg/exception"
)

// ErrNoRoomsFound means the store holds no rooms at all: nothing exists.
var ErrNoRoomsFound = exception.ApplicationError{
	Message:    "no rooms found",
	StatusCode: http.StatusNotFound,
}

// ErrNoRoomsMatchRequirements means rooms exist but every one failed a
// hard constraint: nothing qualifies. Kept distinct from ErrNoRoomsFound
// so clients can render "no matches" instead of "nothing to rank".
var ErrNoRoomsMatchRequirements = exception.ApplicationError{
	Message:    "no rooms satisfy the given requirements",
	StatusCode: http.StatusUnprocessableEntity,
}

// ErrRoomNotFound means a specific room id has no record.
var ErrRoomNotFound = exception.ApplicationError{
	Message:    "room not found",
	StatusCode: http.StatusNotFound,
}
