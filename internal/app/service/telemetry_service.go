package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roomsense/room-ranking-service/internal/app/dto"
	"github.com/roomsense/room-ranking-service/internal/pkg/roomstore"
)

type TelemetryService struct {
	Store RoomStore
}

func NewTelemetryService(store RoomStore) *TelemetryService {
	return &TelemetryService{Store: store}
}

// RecordReading godoc
// @Summary      Record a sensor reading
// @Tags         Sensors
// @Description  Push one telemetry sample into a room's rolling window
// @Param        request  body  dto.ReadingRequest  true  "Sensor reading"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/sensors/readings [post]
func (s *TelemetryService) RecordReading(ctx context.Context, req dto.ReadingRequest) error {
	if _, err := s.Store.GetRoom(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomstore.ErrRoomNotFound) {
			return ErrRoomNotFound
		}

		return fmt.Errorf("failed to load room: %w", err)
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	reading := roomstore.Reading{
		RoomID:     req.RoomID,
		SensorType: req.SensorType,
		Value:      req.Value,
		Timestamp:  timestamp,
	}

	if err := s.Store.AppendReading(ctx, reading); err != nil {
		return fmt.Errorf("failed to record reading: %w", err)
	}

	return nil
}
