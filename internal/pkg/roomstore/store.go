// Package roomstore persists room facility records, rolling sensor
// readings and calendar busy intervals in redis. It is the data store
// collaborator of the ranking engine: the engine only ever sees the
// snapshots this package assembles.
package roomstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roomsense/room-ranking-service/internal/pkg/ahp"
)

// readingWindow is how many recent readings per sensor type feed the
// current-conditions snapshot. The snapshot value is their average, which
// smooths single-sample sensor noise.
const readingWindow = 10

// ErrRoomNotFound is returned when a room id has no record.
var ErrRoomNotFound = errors.New("room not found")

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RoomRecord is the stored shape of one room.
type RoomRecord struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Facilities ahp.Facilities `json:"facilities"`
}

// Reading is one telemetry sample.
type Reading struct {
	RoomID     string    `json:"room_id"`
	SensorType string    `json:"sensor_type"`
	Value      float64   `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

// BusyInterval is one confirmed calendar booking.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Store struct {
	redis RedisClient
}

func NewStore(redis RedisClient) *Store {
	return &Store{redis: redis}
}

func roomKey(id string) string     { return "room:record:" + id }
func readingKey(id, sensorType string) string {
	return fmt.Sprintf("room:readings:%s:%s", id, sensorType)
}
func calendarKey(id string) string { return "room:calendar:" + id }

const roomIndexKey = "room:index"

// UpsertRoom stores a room record and registers it in the room index.
func (s *Store) UpsertRoom(ctx context.Context, record RoomRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal room record: %w", err)
	}

	if err := s.redis.Set(ctx, roomKey(record.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set room record: %w", err)
	}

	if err := s.redis.SAdd(ctx, roomIndexKey, record.ID).Err(); err != nil {
		return fmt.Errorf("failed to index room record: %w", err)
	}

	return nil
}

// GetRoom loads one room record.
func (s *Store) GetRoom(ctx context.Context, id string) (RoomRecord, error) {
	data, err := s.redis.Get(ctx, roomKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return RoomRecord{}, ErrRoomNotFound
	}

	if err != nil {
		return RoomRecord{}, fmt.Errorf("failed to get room record: %w", err)
	}

	var record RoomRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return RoomRecord{}, fmt.Errorf("failed to unmarshal room record: %w", err)
	}

	return record, nil
}

// ListRooms loads every registered room record.
func (s *Store) ListRooms(ctx context.Context) ([]RoomRecord, error) {
	ids, err := s.redis.SMembers(ctx, roomIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list room index: %w", err)
	}

	records := make([]RoomRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.GetRoom(ctx, id)
		if errors.Is(err, ErrRoomNotFound) {
			// Index entry without a record; skip rather than fail the
			// whole listing.
			continue
		}

		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// AppendReading pushes a telemetry sample onto the room's rolling window
// for its sensor type.
func (s *Store) AppendReading(ctx context.Context, reading Reading) error {
	data, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}

	key := readingKey(reading.RoomID, reading.SensorType)
	if err := s.redis.LPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to push reading: %w", err)
	}

	if err := s.redis.LTrim(ctx, key, 0, readingWindow-1).Err(); err != nil {
		return fmt.Errorf("failed to trim reading window: %w", err)
	}

	return nil
}

// LatestConditions assembles the current-conditions snapshot for a room:
// the average of the most recent readings per sensor type. Sensor types
// with no readings are absent from the map; the engine treats them as
// missing data.
func (s *Store) LatestConditions(ctx context.Context, roomID string) (map[string]float64, error) {
	conditions := make(map[string]float64)

	for _, leaf := range ahp.Leaves() {
		if leaf.SensorType == "" {
			continue
		}

		entries, err := s.redis.LRange(ctx, readingKey(roomID, leaf.SensorType), 0, readingWindow-1).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s window: %w", leaf.SensorType, err)
		}

		if len(entries) == 0 {
			continue
		}

		var sum float64
		count := 0
		for _, entry := range entries {
			var reading Reading
			if err := json.Unmarshal([]byte(entry), &reading); err != nil {
				continue
			}
			sum += reading.Value
			count++
		}

		if count > 0 {
			conditions[leaf.SensorType] = sum / float64(count)
		}
	}

	return conditions, nil
}

// AddBusyInterval records a confirmed booking for a room.
func (s *Store) AddBusyInterval(ctx context.Context, roomID string, interval BusyInterval) error {
	intervals, err := s.busyIntervals(ctx, roomID)
	if err != nil {
		return err
	}

	intervals = append(intervals, interval)

	data, err := json.Marshal(intervals)
	if err != nil {
		return fmt.Errorf("failed to marshal busy intervals: %w", err)
	}

	if err := s.redis.Set(ctx, calendarKey(roomID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set busy intervals: %w", err)
	}

	return nil
}

// IsAvailable reports whether a room has no booking overlapping the
// requested window.
func (s *Store) IsAvailable(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	intervals, err := s.busyIntervals(ctx, roomID)
	if err != nil {
		return false, err
	}

	for _, interval := range intervals {
		if interval.Start.Before(end) && interval.End.After(start) {
			return false, nil
		}
	}

	return true, nil
}

func (s *Store) busyIntervals(ctx context.Context, roomID string) ([]BusyInterval, error) {
	data, err := s.redis.Get(ctx, calendarKey(roomID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get busy intervals: %w", err)
	}

	var intervals []BusyInterval
	if err := json.Unmarshal(data, &intervals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal busy intervals: %w", err)
	}

	return intervals, nil
}
