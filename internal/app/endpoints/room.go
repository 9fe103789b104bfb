package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/roomsense/room-ranking-service/internal/app/dto"
)

type RoomService interface {
	ListRooms(ctx context.Context) (dto.ListRoomsResponse, error)
	UpsertRoom(ctx context.Context, req dto.UpsertRoomRequest) (dto.Room, error)
	AddBooking(ctx context.Context, req dto.BookingRequest) error
}

type RoomEndpoint struct {
	ListRooms  endpoint.Endpoint
	UpsertRoom endpoint.Endpoint
	AddBooking endpoint.Endpoint
}

func MakeRoomEndpoint(service RoomService) RoomEndpoint {
	return RoomEndpoint{
		ListRooms:  makeListRoomsEndpoint(service),
		UpsertRoom: makeUpsertRoomEndpoint(service),
		AddBooking: makeAddBookingEndpoint(service),
	}
}

func makeListRoomsEndpoint(service RoomService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		rooms, err := service.ListRooms(ctx)
		if err != nil {
			return nil, fmt.Errorf("room service: %w", err)
		}

		return rooms, nil
	}
}

func makeUpsertRoomEndpoint(service RoomService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.UpsertRoomRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		room, err := service.UpsertRoom(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("room service: %w", err)
		}

		return room, nil
	}
}

func makeAddBookingEndpoint(service RoomService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.BookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.AddBooking(ctx, *request); err != nil {
			return nil, fmt.Errorf("room service: %w", err)
		}

		return nil, nil
	}
}
