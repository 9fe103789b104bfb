package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-redis/redis_rate/v10"

	"github.com/roomsense/room-ranking-service/internal/app/config"
	"github.com/roomsense/room-ranking-service/internal/app/dto"
	"github.com/roomsense/room-ranking-service/internal/app/endpoints"
	httptransport "github.com/roomsense/room-ranking-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter *redis_rate.Limiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/rooms", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.With(httptransport.RateLimit(limiter, cfg.RateLimit.RPS)).
			Post("/rank", httptransport.MakeHandlerFunc(
				endpts.RankingEndpoint.RankRooms,
				httptransport.DecodeRequest[dto.RankingRequest],
				httptransport.ResponseWithBody,
			))

		router.Get("/", httptransport.MakeHandlerFunc(
			endpts.RoomEndpoint.ListRooms,
			httptransport.DecodeEmptyRequest,
			httptransport.ResponseWithBody,
		))

		router.Put("/{roomID}", httptransport.MakeHandlerFunc(
			endpts.RoomEndpoint.UpsertRoom,
			httptransport.DecodeRequest[dto.UpsertRoomRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/{roomID}/bookings", httptransport.MakeHandlerFunc(
			endpts.RoomEndpoint.AddBooking,
			httptransport.DecodeRequest[dto.BookingRequest],
			httptransport.NoContentResponse,
		))
	})

	router.Route("/api/v1/sensors", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/readings", httptransport.MakeHandlerFunc(
			endpts.TelemetryEndpoint.RecordReading,
			httptransport.DecodeRequest[dto.ReadingRequest],
			httptransport.NoContentResponse,
		))
	})

	return router
}
