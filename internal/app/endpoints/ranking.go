package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/roomsense/room-ranking-service/internal/app/dto"
)

type RankingService interface {
	RankRooms(ctx context.Context, req dto.RankingRequest) (dto.RankingResponse, error)
}

type RankingEndpoint struct {
	RankRooms endpoint.Endpoint
}

func MakeRankingEndpoint(service RankingService) RankingEndpoint {
	return RankingEndpoint{
		RankRooms: makeRankRoomsEndpoint(service),
	}
}

func makeRankRoomsEndpoint(service RankingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RankingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		ranking, err := service.RankRooms(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("ranking service: %w", err)
		}

		return ranking, nil
	}
}
