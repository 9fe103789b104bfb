package load_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomsense/room-ranking-service/internal/app/dto"
	"github.com/roomsense/room-ranking-service/internal/pkg/ahp"
)

type Stats struct {
	Ranked      int
	RateLimited int
	Failed      int
}

func (s *Stats) Add(other Stats) {
	s.Ranked += other.Ranked
	s.RateLimited += other.RateLimited
	s.Failed += other.Failed
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func clearRedis(t *testing.T, ctx context.Context, rdb *redis.Client) {
	err := rdb.FlushDB(ctx).Err()
	require.NoError(t, err, "Failed to flush Redis")
}

func putJSON(ctx context.Context, method, url string, body interface{}) (int, error) {
	payload, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func seedRooms(t *testing.T, ctx context.Context, appHost string) {
	rooms := map[string]dto.UpsertRoomRequest{
		"alpha": {Name: "Lab A", Facilities: ahp.Facilities{
			SeatingCapacity: 50, Computers: 10, Projector: true, Whiteboard: true,
		}},
		"beta": {Name: "Lab B", Facilities: ahp.Facilities{
			SeatingCapacity: 20, Computers: 4,
		}},
	}

	for id, room := range rooms {
		status, err := putJSON(ctx, "PUT", appHost+"/api/v1/rooms/"+id, room)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, status)
	}

	readings := []dto.ReadingRequest{
		{RoomID: "alpha", SensorType: "temperature", Value: 22},
		{RoomID: "alpha", SensorType: "co2", Value: 450},
		{RoomID: "beta", SensorType: "temperature", Value: 27},
	}

	for _, reading := range readings {
		status, err := putJSON(ctx, "POST", appHost+"/api/v1/sensors/readings", reading)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, status)
	}
}

func rankRooms(ctx context.Context, url string, request dto.RankingRequest) (Stats, error) {
	payload, _ := json.Marshal(request)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return Stats{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Stats{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return Stats{RateLimited: 1}, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Stats{}, fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body))
	}

	var r dto.RankingResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Stats{}, err
	}

	if len(r.RankedRooms) == 0 {
		return Stats{}, fmt.Errorf("empty ranking")
	}

	return Stats{Ranked: 1}, nil
}

func TestRoomRankingLoad(t *testing.T) {
	appHost := getEnv("APP_HOST", "http://localhost:8080")
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPass := getEnv("REDIS_PASSWORD", "redis123")

	url := appHost + "/api/v1/rooms/rank"
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	defer rdb.Close()

	clearRedis(t, ctx, rdb)
	seedRooms(t, ctx, appHost)

	request := dto.RankingRequest{
		Judgments: map[string][]dto.PairwiseJudgment{
			ahp.GoalKey: {{First: "Comfort", Second: "Usability", Value: 3}},
		},
	}

	t.Run("Concurrent Ranking Test", func(t *testing.T) {
		vus := 5
		stats := runScenario(t, ctx, url, request, vus)

		assert.Equal(t, vus, stats.Ranked)
		assert.Equal(t, 0, stats.Failed)
	})

	t.Run("Rate Limit Test", func(t *testing.T) {
		vus := 100
		stats := runScenario(t, ctx, url, request, vus)

		fmt.Printf("Rate Limit Test Result: Ranked = %d, Rate Limited = %d\n", stats.Ranked, stats.RateLimited)
		assert.Greater(t, stats.RateLimited, 0, "Should have triggered the limiter with 100 concurrent requests")
	})
}

func runScenario(t *testing.T, ctx context.Context, url string, request dto.RankingRequest, vus int) Stats {
	var wg sync.WaitGroup
	var mu sync.Mutex
	scenarioStats := Stats{}

	for i := 0; i < vus; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			stats, err := rankRooms(ctx, url, request)
			if err != nil {
				stats = Stats{Failed: 1}
			}
			mu.Lock()
			scenarioStats.Add(stats)
			mu.Unlock()
		}(i)
	}

	wg.Wait()
	return scenarioStats
}
