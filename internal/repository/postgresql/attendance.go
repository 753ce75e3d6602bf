package postgresql

import (
	"context"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/attendance"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EventRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := querier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (id, user_id, timestamp, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, timestamp, type, created_at
	`

	var created attendance.Event
	err := q.QueryRow(ctx, query, event.ID, event.UserID, event.Timestamp, event.Type).Scan(
		&created.ID,
		&created.UserID,
		&created.Timestamp,
		&created.Type,
		&created.CreatedAt,
	)
	if err != nil {
		return attendance.Event{}, err
	}

	return created, nil
}

// GetByID implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Event, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.timestamp, e.type, e.created_at, u.name
		FROM attendance_events e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`

	var ev attendance.Event
	err := q.QueryRow(ctx, query, id).Scan(
		&ev.ID,
		&ev.UserID,
		&ev.Timestamp,
		&ev.Type,
		&ev.CreatedAt,
		&ev.UserName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Event{}, attendance.ErrEventNotFound
		}
		return attendance.Event{}, err
	}

	return ev, nil
}

// GetLastEvent implements attendance.EventRepository. Returns nil when the
// user has no punches yet.
func (r *attendanceRepositoryImpl) GetLastEvent(ctx context.Context, userID string) (*attendance.Event, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT id, user_id, timestamp, type, created_at
		FROM attendance_events
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT 1
	`

	var ev attendance.Event
	err := q.QueryRow(ctx, query, userID).Scan(
		&ev.ID,
		&ev.UserID,
		&ev.Timestamp,
		&ev.Type,
		&ev.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &ev, nil
}

// ListByUserAndRange implements attendance.EventRepository. Rows come back
// in storage order; callers sort when they care.
func (r *attendanceRepositoryImpl) ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Event, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.timestamp, e.type, e.created_at, u.name
		FROM attendance_events e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1 AND e.timestamp >= $2 AND e.timestamp <= $3
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.UserID,
			&ev.Timestamp,
			&ev.Type,
			&ev.CreatedAt,
			&ev.UserName,
		); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// Delete implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := querier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEventNotFound
	}
	return nil
}
