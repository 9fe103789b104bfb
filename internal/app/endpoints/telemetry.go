package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/roomsense/room-ranking-service/internal/app/dto"
)

type TelemetryService interface {
	RecordReading(ctx context.Context, req dto.ReadingRequest) error
}

type TelemetryEndpoint struct {
	RecordReading endpoint.Endpoint
}

func MakeTelemetryEndpoint(service TelemetryService) TelemetryEndpoint {
	return TelemetryEndpoint{
		RecordReading: makeRecordReadingEndpoint(service),
	}
}

func makeRecordReadingEndpoint(service TelemetryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ReadingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.RecordReading(ctx, *request); err != nil {
			return nil, fmt.Errorf("telemetry service: %w", err)
		}

		return nil, nil
	}
}
