package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/roomsense/room-ranking-service/internal/app/dto"
	"github.com/roomsense/room-ranking-service/internal/pkg/ahp"
	"github.com/roomsense/room-ranking-service/internal/pkg/exception"
	"github.com/roomsense/room-ranking-service/internal/pkg/roomstore"
)

// RoomStore is the slice of the room store the services depend on.
type RoomStore interface {
	ListRooms(ctx context.Context) ([]roomstore.RoomRecord, error)
	GetRoom(ctx context.Context, id string) (roomstore.RoomRecord, error)
	UpsertRoom(ctx context.Context, record roomstore.RoomRecord) error
	AppendReading(ctx context.Context, reading roomstore.Reading) error
	LatestConditions(ctx context.Context, roomID string) (map[string]float64, error)
	AddBusyInterval(ctx context.Context, roomID string, interval roomstore.BusyInterval) error
	IsAvailable(ctx context.Context, roomID string, start, end time.Time) (bool, error)
}

type RankingService struct {
	Store  RoomStore
	Engine *ahp.Engine
}

func NewRankingService(store RoomStore, engine *ahp.Engine) *RankingService {
	return &RankingService{
		Store:  store,
		Engine: engine,
	}
}

// RankRooms runs the full pipeline for one request: load rooms and their
// sensor snapshots, apply the hard constraints, rank the survivors with
// the AHP engine, optionally blend in calendar availability, and package
// the ordered result with its consistency report.
// RankRooms godoc
// @Summary      Rank rooms
// @Tags         Rooms
// @Description  Rank all rooms against the requester's preference profile
// @Param        request  body      dto.RankingRequest  true  "Preference profile"
// @Success      200      {object}  dto.RankingResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/rooms/rank [post]
func (s *RankingService) RankRooms(
	ctx context.Context,
	req dto.RankingRequest,
) (dto.RankingResponse, error) {
	startTime := time.Now()

	records, err := s.Store.ListRooms(ctx)
	if err != nil {
		return dto.RankingResponse{}, fmt.Errorf("failed to list rooms: %w", err)
	}

	if len(records) == 0 {
		return dto.RankingResponse{}, ErrNoRoomsFound
	}

	rooms := make([]ahp.Room, 0, len(records))
	conditions := make(map[string]map[string]float64, len(records))
	facilities := make(map[string]ahp.Facilities, len(records))

	for _, record := range records {
		snapshot, err := s.Store.LatestConditions(ctx, record.ID)
		if err != nil {
			return dto.RankingResponse{}, fmt.Errorf("failed to load conditions for %s: %w", record.ID, err)
		}

		rooms = append(rooms, ahp.Room{
			ID:         record.ID,
			Name:       record.Name,
			Readings:   snapshot,
			Facilities: record.Facilities,
		})
		conditions[record.ID] = snapshot
		facilities[record.ID] = record.Facilities
	}

	prefs := toPreferences(req)

	survivors, err := s.Engine.Filter(rooms, prefs.Requirements)
	if err != nil {
		if errors.Is(err, ahp.ErrNoCandidates) {
			return dto.RankingResponse{}, ErrNoRoomsMatchRequirements
		}

		return dto.RankingResponse{}, fmt.Errorf("failed to filter rooms: %w", err)
	}

	result, err := s.Engine.Rank(survivors, prefs)
	if err != nil {
		var validationErr *ahp.ValidationError
		if errors.As(err, &validationErr) {
			return dto.RankingResponse{}, exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    validationErr.Error(),
			}
		}

		return dto.RankingResponse{}, fmt.Errorf("failed to rank rooms: %w", err)
	}

	ranked := make([]dto.RankedRoom, 0, len(result.Rooms))
	for _, room := range result.Rooms {
		ranked = append(ranked, dto.RankedRoom{
			RoomID:            room.ID,
			RoomName:          room.Name,
			Rank:              room.Rank,
			OverallScore:      room.Overall,
			GroupScores:       room.GroupScores,
			CriteriaScores:    room.LeafScores,
			CurrentConditions: conditions[room.ID],
			Facilities:        facilities[room.ID],
		})
	}

	if req.RequestedTime != nil {
		ranked, err = s.blendAvailability(ctx, ranked, req)
		if err != nil {
			return dto.RankingResponse{}, err
		}
	}

	consistency := make(map[string]dto.ConsistencyResult, len(result.Consistency))
	for name, c := range result.Consistency {
		consistency[name] = dto.ConsistencyResult{
			LambdaMax:        c.LambdaMax,
			ConsistencyIndex: c.Index,
			ConsistencyRatio: c.Ratio,
			Acceptable:       c.Acceptable,
		}

		if !c.Acceptable {
			slog.WarnContext(ctx, "inconsistent comparison judgments",
				slog.String("comparison_set", name),
				slog.Float64("consistency_ratio", c.Ratio))
		}
	}

	return dto.RankingResponse{
		RankedRooms: ranked,
		Consistency: consistency,
		Metadata: dto.RankingMetadata{
			TotalRoomsEvaluated: len(survivors),
			RoomsFilteredOut:    len(rooms) - len(survivors),
			EvaluationTimeMs:    int(time.Since(startTime).Milliseconds()),
			WeightMethod:        string(s.Engine.WeightMethod()),
			Consistent:          result.Consistent,
		},
	}, nil
}

// blendAvailability folds calendar availability into the scores: a booked
// room keeps (1 - share) of its AHP score, a free room gains the share in
// full. The share grows with the requester's availability weight relative
// to the top of the Saaty scale.
func (s *RankingService) blendAvailability(
	ctx context.Context,
	ranked []dto.RankedRoom,
	req dto.RankingRequest,
) ([]dto.RankedRoom, error) {
	weight := req.AvailabilityWeight
	if weight <= 0 {
		weight = 1
	}

	share := float64(weight) / (float64(weight) + ahp.SaatyMax)

	start := *req.RequestedTime
	end := start.Add(time.Duration(*req.DurationMinutes) * time.Minute)

	for i := range ranked {
		available, err := s.Store.IsAvailable(ctx, ranked[i].RoomID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to check availability for %s: %w", ranked[i].RoomID, err)
		}

		availabilityScore := 0.0
		if available {
			availabilityScore = 1.0
		}

		ranked[i].IsAvailable = &available
		ranked[i].OverallScore = ranked[i].OverallScore*(1-share) + availabilityScore*share
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked, nil
}

func toPreferences(req dto.RankingRequest) ahp.Preferences {
	prefs := ahp.Preferences{
		Aggregation: ahp.AggregationMode(req.Aggregation),
	}

	if len(req.Judgments) > 0 {
		prefs.Judgments = make(map[string][]ahp.Judgment, len(req.Judgments))
		for set, judgments := range req.Judgments {
			converted := make([]ahp.Judgment, 0, len(judgments))
			for _, j := range judgments {
				converted = append(converted, ahp.Judgment{
					First:  j.First,
					Second: j.Second,
					Value:  j.Value,
				})
			}
			prefs.Judgments[set] = converted
		}
	}

	if len(req.Preferences) > 0 {
		prefs.Ranges = make(map[string]ahp.Range, len(req.Preferences))
		for name, r := range req.Preferences {
			prefs.Ranges[name] = ahp.Range{Min: r.Min, Max: r.Max}
		}
	}

	if req.Requirements != nil {
		prefs.Requirements = &ahp.Requirements{
			MinSeating:        req.Requirements.MinSeating,
			MinTrainingRobots: req.Requirements.MinTrainingRobots,
			Projector:         req.Requirements.Videoprojector,
			Computers:         req.Requirements.Computers,
			Whiteboard:        req.Requirements.Whiteboard,
		}
	}

	return prefs
}
