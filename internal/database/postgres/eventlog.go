package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BankerBot_Go/internal/eventlog"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores one game lifecycle event.
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, gameID *string, payload map[string]interface{}) error {
	query := `
		INSERT INTO game_events (event_type, game_id, payload)
		VALUES ($1, $2, $3)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query, eventType, gameID, payloadJSON)
	return err
}

// GetEvents retrieves events matching the filter, newest first.
func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, event_type, game_id, payload, created_at
		FROM game_events
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.GameID != nil {
		fmt.Fprintf(&queryBuilder, " AND game_id = $%d", argNum)
		args = append(args, *filter.GameID)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at <= $%d", argNum)
		args = append(args, *filter.Until)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetEventsByGame retrieves the event trail for one game instance.
func (r *eventLogRepository) GetEventsByGame(ctx context.Context, gameID string, limit int) ([]eventlog.Entry, error) {
	query := `
		SELECT id, event_type, game_id, payload, created_at
		FROM game_events
		WHERE game_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, gameID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// CleanupOldEvents removes events older than the retention period.
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM game_events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *eventLogRepository) scanEntries(rows pgx.Rows) ([]eventlog.Entry, error) {
	var entries []eventlog.Entry

	for rows.Next() {
		var entry eventlog.Entry
		var payloadJSON []byte

		err := rows.Scan(
			&entry.ID,
			&entry.EventType,
			&entry.GameID,
			&payloadJSON,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if len(payloadJSON) > 0 {
			if err := json.Unmarshal(payloadJSON, &entry.Payload); err != nil {
				return nil, err
			}
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
