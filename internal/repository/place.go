package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_content_engine/internal/catalog"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/service"
)

const placeCacheTTL = 5 * time.Minute

const placeColumns = `
	id,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	radius_m,
	cooldown_min,
	start_at,
	end_at,
	priority,
	status,
	content,
	created_at,
	updated_at`

type PlaceRepository struct {
	db          DB
	redisClient *redis.Client
}

// NewPlaceRepository репозиторий мест. Он же служит источником каталога.
func NewPlaceRepository(db DB, redisClient *redis.Client) *PlaceRepository {
	return &PlaceRepository{
		db:          db,
		redisClient: redisClient,
	}
}

var (
	_ service.PlaceRepository = (*PlaceRepository)(nil)
	_ catalog.Source          = (*PlaceRepository)(nil)
)

// Create создает новую запись о месте в бд
func (r *PlaceRepository) Create(ctx context.Context, place *models.Place) error {
	content, err := json.Marshal(place.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal place content: %w", err)
	}

	query := `
		INSERT INTO places (id, location, radius_m, cooldown_min, start_at, end_at, priority, status, content)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6, $7, $8, $9, $10::jsonb)
		RETURNING created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		place.ID,
		place.Center.Longitude,
		place.Center.Latitude,
		place.RadiusM,
		place.CooldownMin,
		place.StartAt,
		place.EndAt,
		place.Priority,
		place.Status,
		string(content),
	).Scan(&place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("place with id %s: %w", place.ID, models.ErrPlaceExists)
		}
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

// GetByID возвращает место по идентификатору
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*models.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1;`

	place, err := scanPlace(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("place with id %s: %w", id, models.ErrPlaceNotFound)
		}
		return nil, fmt.Errorf("failed to get place by id: %w", err)
	}
	return place, nil
}

func (r *PlaceRepository) Update(ctx context.Context, place *models.Place) error {
	content, err := json.Marshal(place.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal place content: %w", err)
	}

	query := `
		UPDATE places SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			radius_m = $3,
			cooldown_min = $4,
			start_at = $5,
			end_at = $6,
			priority = $7,
			status = $8,
			content = $9::jsonb,
			updated_at = NOW()
		WHERE id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		place.Center.Longitude,
		place.Center.Latitude,
		place.RadiusM,
		place.CooldownMin,
		place.StartAt,
		place.EndAt,
		place.Priority,
		place.Status,
		string(content),
		place.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update place: %w", err)
	}

	// RowsAffected() == 0 значит места с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("place with id %s not updated: %w", place.ID, models.ErrPlaceNotFound)
	}
	return nil
}

// Delete(деактивация) устанавливает статус 'inactive' для места
func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE places SET
			status = 'inactive',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate place: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("place with id %s not deactivated: %w", id, models.ErrPlaceNotFound)
	}
	return nil
}

// ListPlaces возвращает список мест с пагинацией в порядке приоритета
func (r *PlaceRepository) ListPlaces(ctx context.Context, page, pageSize int) ([]*models.Place, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + placeColumns + `
		FROM places
		ORDER BY priority, created_at
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	places := make([]*models.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return places, nil
}

// Load загружает активные места для каталога: сначала по приоритету, затем по дате создания
func (r *PlaceRepository) Load(ctx context.Context) ([]models.Place, error) {
	query := `SELECT ` + placeColumns + `
		FROM places
		WHERE status = 'active'
		ORDER BY priority, created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load active places: %w", err)
	}
	defer rows.Close()

	places := make([]models.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place row in Load: %w", err)
		}
		places = append(places, *place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in Load: %w", err)
	}
	return places, nil
}

// GetPlaceFromCache пытается получить место из Redis
func (r *PlaceRepository) GetPlaceFromCache(ctx context.Context, id string) (*models.Place, error) {
	val, err := r.redisClient.Get(ctx, placeCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get place from cache: %w", err)
	}

	place := &models.Place{}
	if err := json.Unmarshal(val, place); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place from cache: %w", err)
	}
	return place, nil
}

// SetPlaceCache сохраняет место в Redis
func (r *PlaceRepository) SetPlaceCache(ctx context.Context, place *models.Place) error {
	val, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("failed to marshal place for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, placeCacheKey(place.ID), val, placeCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set place in cache: %w", err)
	}
	return nil
}

// InvalidatePlaceCache удаляет место из Redis кэша
func (r *PlaceRepository) InvalidatePlaceCache(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, placeCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate place cache: %w", err)
	}
	return nil
}

func placeCacheKey(id string) string {
	return fmt.Sprintf("place:%s", id)
}

func scanPlace(row pgx.Row) (*models.Place, error) {
	place := &models.Place{}
	var content []byte
	err := row.Scan(
		&place.ID,
		&place.Center.Latitude,
		&place.Center.Longitude,
		&place.RadiusM,
		&place.CooldownMin,
		&place.StartAt,
		&place.EndAt,
		&place.Priority,
		&place.Status,
		&content,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &place.Content); err != nil {
			return nil, fmt.Errorf("failed to decode content of place %s: %w", place.ID, err)
		}
	}
	return place, nil
}
