package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"

	"github.com/eskrenkovic/tql"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// joinedCountColumn is appended to every session select so the
// read-side JoinedCount projection is always populated.
const joinedCountColumn = `
	(
		SELECT
			count(*)
		FROM
			session_participants p
		WHERE
			p.session_id = s.id AND p.status = 'joined'
	) AS joined_count`

var _ SessionStore = (*PostgresStore)(nil)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db}
}

func (s *PostgresStore) CreateSession(ctx context.Context, session domain.Session) error {
	const stmt = `
		INSERT INTO
			sessions (
				id, title, description, type, status, is_private,
				location, latitude, longitude,
				created_at, updated_at,
				scheduled_start_time, scheduled_end_time,
				actual_start_time, actual_end_time,
				creator_id, max_participants, category, difficulty,
				view_count, join_request_count, rating
			)
		VALUES
			(
				:id, :title, :description, :type, :status, :is_private,
				:location, :latitude, :longitude,
				:created_at, :updated_at,
				:scheduled_start_time, :scheduled_end_time,
				:actual_start_time, :actual_end_time,
				:creator_id, :max_participants, :category, :difficulty,
				:view_count, :join_request_count, :rating
			);`
	_, err := tql.Exec(ctx, s.db, stmt, session)
	return err
}

func (s *PostgresStore) GetSession(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	query := fmt.Sprintf(`
		SELECT
			s.*, %s
		FROM
			sessions s
		WHERE
			s.id = $1;`, joinedCountColumn)

	session, err := tql.QueryFirst[domain.Session](ctx, s.db, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	return session, err
}

func (s *PostgresStore) UpdateSession(ctx context.Context, session domain.Session) error {
	const stmt = `
		UPDATE
			sessions
		SET
			title = :title,
			description = :description,
			type = :type,
			status = :status,
			is_private = :is_private,
			location = :location,
			latitude = :latitude,
			longitude = :longitude,
			updated_at = :updated_at,
			scheduled_start_time = :scheduled_start_time,
			scheduled_end_time = :scheduled_end_time,
			actual_start_time = :actual_start_time,
			actual_end_time = :actual_end_time,
			max_participants = :max_participants,
			category = :category,
			difficulty = :difficulty,
			view_count = :view_count,
			join_request_count = :join_request_count,
			rating = :rating
		WHERE
			id = :id;`

	result, err := tql.Exec(ctx, s.db, stmt, session)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (s *PostgresStore) ListSessions(ctx context.Context, filter Filter) ([]domain.Session, error) {
	var (
		conditions []string
		args       []any
	)

	if len(filter.Statuses) > 0 {
		statuses := core.Map(filter.Statuses, func(s domain.SessionStatus) string { return string(s) })
		args = append(args, pq.Array(statuses))
		conditions = append(conditions, fmt.Sprintf("s.status = ANY($%d)", len(args)))
	}

	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		conditions = append(conditions, fmt.Sprintf("s.category = $%d", len(args)))
	}

	if filter.IsPrivate != nil {
		args = append(args, *filter.IsPrivate)
		conditions = append(conditions, fmt.Sprintf("s.is_private = $%d", len(args)))
	}

	if filter.RequireCoordinates {
		conditions = append(conditions, "s.latitude IS NOT NULL AND s.longitude IS NOT NULL")
	}

	if filter.InvolvedUserID != "" {
		args = append(args, filter.InvolvedUserID)
		conditions = append(conditions, fmt.Sprintf(
			`(s.creator_id = $%[1]d OR EXISTS (
				SELECT 1 FROM session_participants p
				WHERE p.session_id = s.id AND p.user_id = $%[1]d
			))`, len(args)))
	}

	if filter.OnlyWithCapacity {
		conditions = append(conditions, `(s.max_participants = 0 OR (
			SELECT count(*) FROM session_participants p
			WHERE p.session_id = s.id AND p.status = 'joined'
		) < s.max_participants)`)
	}

	query := fmt.Sprintf("SELECT s.*, %s FROM sessions s", joinedCountColumn)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch filter.OrderBy {
	case OrderCreatedDesc:
		query += " ORDER BY s.created_at DESC"
	case OrderUpdatedDesc:
		query += " ORDER BY s.updated_at DESC"
	case OrderEndedDesc:
		query += " ORDER BY s.actual_end_time DESC NULLS LAST"
	case OrderPopularity:
		query += " ORDER BY s.view_count DESC, joined_count DESC"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	query += ";"

	return tql.Query[domain.Session](ctx, s.db, query, args...)
}

func (s *PostgresStore) AddParticipant(ctx context.Context, participant domain.Participant) error {
	return core.Tx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var maxParticipants int
		err := tx.
			QueryRowContext(ctx, "SELECT max_participants FROM sessions WHERE id = $1 FOR UPDATE;", participant.SessionID).
			Scan(&maxParticipants)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return domain.ErrSessionNotFound
		case err != nil:
			return err
		}

		if participant.Status == domain.ParticipantJoined {
			var joined int
			err := tx.
				QueryRowContext(
					ctx,
					"SELECT count(*) FROM session_participants WHERE session_id = $1 AND status = $2;",
					participant.SessionID,
					string(domain.ParticipantJoined),
				).
				Scan(&joined)
			if err != nil {
				return err
			}

			if maxParticipants > 0 && joined >= maxParticipants {
				return domain.ErrSessionFull
			}
		}

		const stmt = `
			INSERT INTO
				session_participants (id, session_id, user_id, role, status, joined_at, left_at)
			VALUES
				(:id, :session_id, :user_id, :role, :status, :joined_at, :left_at);`
		if _, err := tql.Exec(ctx, tx, stmt, participant); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadyJoined
			}
			return err
		}

		if participant.Status == domain.ParticipantJoined {
			const touch = `
				UPDATE
					sessions
				SET
					join_request_count = join_request_count + 1,
					updated_at = $2
				WHERE
					id = $1;`
			if _, err := tx.ExecContext(ctx, touch, participant.SessionID, participant.JoinedAt); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *PostgresStore) MarkParticipantLeft(
	ctx context.Context,
	sessionID uuid.UUID,
	userID string,
	leftAt time.Time,
) error {
	return core.Tx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := sessionExists(ctx, tx, sessionID); err != nil {
			return err
		}

		const stmt = `
			UPDATE
				session_participants
			SET
				status = $4,
				left_at = $3
			WHERE
				session_id = $1 AND user_id = $2 AND status = $5;`
		result, err := tx.ExecContext(
			ctx,
			stmt,
			sessionID,
			userID,
			leftAt,
			string(domain.ParticipantLeft),
			string(domain.ParticipantJoined),
		)
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if affected == 0 {
			return domain.ErrParticipantAbsent
		}

		return nil
	})
}

func (s *PostgresStore) ListParticipants(ctx context.Context, sessionID uuid.UUID) ([]domain.Participant, error) {
	const query = `
		SELECT
			*
		FROM
			session_participants
		WHERE
			session_id = $1
		ORDER BY
			joined_at ASC;`
	return tql.Query[domain.Participant](ctx, s.db, query, sessionID)
}

func (s *PostgresStore) AppendRules(ctx context.Context, sessionID uuid.UUID, rules []domain.Rule) error {
	return core.Tx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := sessionExists(ctx, tx, sessionID); err != nil {
			return err
		}

		const stmt = `
			INSERT INTO
				session_rules (id, session_id, title, description, is_mandatory, category)
			VALUES
				(:id, :session_id, :title, :description, :is_mandatory, :category);`
		for _, rule := range rules {
			if _, err := tql.Exec(ctx, tx, stmt, rule); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *PostgresStore) AppendEquipment(
	ctx context.Context,
	sessionID uuid.UUID,
	equipment []domain.RequiredEquipment,
) error {
	return core.Tx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := sessionExists(ctx, tx, sessionID); err != nil {
			return err
		}

		const stmt = `
			INSERT INTO
				session_equipment (id, session_id, name, description, is_mandatory, quantity)
			VALUES
				(:id, :session_id, :name, :description, :is_mandatory, :quantity);`
		for _, item := range equipment {
			if _, err := tql.Exec(ctx, tx, stmt, item); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *PostgresStore) AppendChallenges(
	ctx context.Context,
	sessionID uuid.UUID,
	challenges []domain.Challenge,
) error {
	return core.Tx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := sessionExists(ctx, tx, sessionID); err != nil {
			return err
		}

		const stmt = `
			INSERT INTO
				session_challenges (id, session_id, challenge_id, assigned_at, completed_at, status)
			VALUES
				(:id, :session_id, :challenge_id, :assigned_at, :completed_at, :status);`
		for _, challenge := range challenges {
			if _, err := tql.Exec(ctx, tx, stmt, challenge); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *PostgresStore) ListRules(ctx context.Context, sessionID uuid.UUID) ([]domain.Rule, error) {
	const query = `
		SELECT
			*
		FROM
			session_rules
		WHERE
			session_id = $1;`
	return tql.Query[domain.Rule](ctx, s.db, query, sessionID)
}

func (s *PostgresStore) ListEquipment(ctx context.Context, sessionID uuid.UUID) ([]domain.RequiredEquipment, error) {
	const query = `
		SELECT
			*
		FROM
			session_equipment
		WHERE
			session_id = $1;`
	return tql.Query[domain.RequiredEquipment](ctx, s.db, query, sessionID)
}

func (s *PostgresStore) ListChallenges(ctx context.Context, sessionID uuid.UUID) ([]domain.Challenge, error) {
	const query = `
		SELECT
			*
		FROM
			session_challenges
		WHERE
			session_id = $1
		ORDER BY
			assigned_at ASC;`
	return tql.Query[domain.Challenge](ctx, s.db, query, sessionID)
}

func (s *PostgresStore) AppendLog(ctx context.Context, entry domain.LogEntry) error {
	return core.Tx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := sessionExists(ctx, tx, entry.SessionID); err != nil {
			return err
		}

		const stmt = `
			INSERT INTO
				session_logs (id, session_id, user_id, timestamp, type, description, metadata)
			VALUES
				(:id, :session_id, :user_id, :timestamp, :type, :description, :metadata);`
		_, err := tql.Exec(ctx, tx, stmt, entry)
		return err
	})
}

func (s *PostgresStore) ListLogs(ctx context.Context, sessionID uuid.UUID) ([]domain.LogEntry, error) {
	const query = `
		SELECT
			*
		FROM
			session_logs
		WHERE
			session_id = $1
		ORDER BY
			timestamp ASC;`
	return tql.Query[domain.LogEntry](ctx, s.db, query, sessionID)
}

func (s *PostgresStore) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	const stmt = `
		UPDATE
			sessions
		SET
			view_count = view_count + 1
		WHERE
			id = $1;`
	result, err := s.db.ExecContext(ctx, stmt, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func sessionExists(ctx context.Context, tx *sql.Tx, sessionID uuid.UUID) error {
	var one int
	err := tx.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE id = $1;", sessionID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrSessionNotFound
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
