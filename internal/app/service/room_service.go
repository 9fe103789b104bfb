package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/roomsense/room-ranking-service/internal/app/dto"
	"github.com/roomsense/room-ranking-service/internal/pkg/roomstore"
)

type RoomService struct {
	Store RoomStore
}

func NewRoomService(store RoomStore) *RoomService {
	return &RoomService{Store: store}
}

// ListRooms godoc
// @Summary      List rooms
// @Tags         Rooms
// @Description  List every registered room with its facility record
// @Success      200  {object}  dto.ListRoomsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/rooms [get]
func (s *RoomService) ListRooms(ctx context.Context) (dto.ListRoomsResponse, error) {
	records, err := s.Store.ListRooms(ctx)
	if err != nil {
		return dto.ListRoomsResponse{}, fmt.Errorf("failed to list rooms: %w", err)
	}

	rooms := make([]dto.Room, 0, len(records))
	for _, record := range records {
		rooms = append(rooms, dto.Room{
			ID:         record.ID,
			Name:       record.Name,
			Facilities: record.Facilities,
		})
	}

	return dto.ListRoomsResponse{
		Rooms: rooms,
		Total: len(rooms),
	}, nil
}

// UpsertRoom godoc
// @Summary      Create or replace a room
// @Tags         Rooms
// @Description  Register a room's name and facility record under the given id
// @Param        roomID   path      string                 true  "Room id"
// @Param        request  body      dto.UpsertRoomRequest  true  "Room record"
// @Success      200      {object}  dto.Room
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/rooms/{roomID} [put]
func (s *RoomService) UpsertRoom(ctx context.Context, req dto.UpsertRoomRequest) (dto.Room, error) {
	record := roomstore.RoomRecord{
		ID:         req.ID,
		Name:       req.Name,
		Facilities: req.Facilities,
	}

	if err := s.Store.UpsertRoom(ctx, record); err != nil {
		return dto.Room{}, fmt.Errorf("failed to upsert room: %w", err)
	}

	return dto.Room{
		ID:         record.ID,
		Name:       record.Name,
		Facilities: record.Facilities,
	}, nil
}

// AddBooking godoc
// @Summary      Register a booking
// @Tags         Rooms
// @Description  Mark a room busy for an interval so the availability blend sees it
// @Param        roomID   path   string              true  "Room id"
// @Param        request  body   dto.BookingRequest  true  "Busy interval"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/rooms/{roomID}/bookings [post]
func (s *RoomService) AddBooking(ctx context.Context, req dto.BookingRequest) error {
	if _, err := s.Store.GetRoom(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomstore.ErrRoomNotFound) {
			return ErrRoomNotFound
		}

		return fmt.Errorf("failed to load room: %w", err)
	}

	interval := roomstore.BusyInterval{Start: req.Start, End: req.End}
	if err := s.Store.AddBusyInterval(ctx, req.RoomID, interval); err != nil {
		return fmt.Errorf("failed to add booking: %w", err)
	}

	return nil
}
