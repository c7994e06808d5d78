package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"amity/internal/identity/models"
	id "amity/pkg/domain"
	"amity/pkg/platform/sentinel"
)

// PostgresStore persists user records in PostgreSQL. The record is stored
// document-style: scalar columns for lookups plus JSONB for the social graph,
// matching the load-mutate-save unit of work of the engine.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed user store.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Schema creates the users table if missing. Called once at startup.
func (s *PostgresStore) Schema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS users (
			id              UUID PRIMARY KEY,
			username        TEXT NOT NULL,
			email           TEXT NOT NULL,
			password_digest TEXT NOT NULL,
			friends         JSONB NOT NULL DEFAULT '[]',
			friend_requests JSONB NOT NULL DEFAULT '[]',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT users_email_uq UNIQUE (email)
		)`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

type requestDoc struct {
	RequesterID string    `json:"requester_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

const upsertUser = `
	INSERT INTO users (id, username, email, password_digest, friends, friend_requests, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		username = EXCLUDED.username,
		email = EXCLUDED.email,
		password_digest = EXCLUDED.password_digest,
		friends = EXCLUDED.friends,
		friend_requests = EXCLUDED.friend_requests
`

func (s *PostgresStore) Save(ctx context.Context, user *models.User) error {
	args, err := upsertArgs(user)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, upsertUser, args...); err != nil {
		return mapSaveErr(err)
	}
	return nil
}

func (s *PostgresStore) SavePair(ctx context.Context, a, b *models.User) error {
	argsA, err := upsertArgs(a)
	if err != nil {
		return err
	}
	argsB, err := upsertArgs(b)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin pair save: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, upsertUser, argsA...); err != nil {
		return mapSaveErr(err)
	}
	if _, err := tx.Exec(ctx, upsertUser, argsB...); err != nil {
		return mapSaveErr(err)
	}
	return tx.Commit(ctx)
}

const selectUser = `
	SELECT id, username, email, password_digest, friends, friend_requests, created_at
	FROM users
`

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	row := s.pool.QueryRow(ctx, selectUser+" WHERE id = $1", userID.String())
	return scanUser(row)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.pool.QueryRow(ctx, selectUser+" WHERE lower(email) = lower($1)", email)
	return scanUser(row)
}

// likeEscaper neutralizes LIKE metacharacters so the pattern matches as a
// literal substring, keeping parity with MemoryStore.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *PostgresStore) SearchByUsername(ctx context.Context, pattern string) ([]*models.User, error) {
	rows, err := s.pool.Query(ctx,
		selectUser+` WHERE username ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY created_at, id`,
		likeEscaper.Replace(pattern))
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.User, error) {
	rows, err := s.pool.Query(ctx, selectUser+" ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func upsertArgs(user *models.User) ([]any, error) {
	friends := make([]string, 0, len(user.Friends))
	for _, f := range user.Friends {
		friends = append(friends, f.String())
	}
	friendsJSON, err := json.Marshal(friends)
	if err != nil {
		return nil, fmt.Errorf("encode friends: %w", err)
	}

	requests := make([]requestDoc, 0, len(user.FriendRequests))
	for _, r := range user.FriendRequests {
		requests = append(requests, requestDoc{
			RequesterID: r.RequesterID.String(),
			Status:      string(r.Status),
			CreatedAt:   r.CreatedAt,
		})
	}
	requestsJSON, err := json.Marshal(requests)
	if err != nil {
		return nil, fmt.Errorf("encode friend requests: %w", err)
	}

	return []any{
		user.ID.String(), user.Username, user.Email, user.PasswordDigest,
		friendsJSON, requestsJSON, user.CreatedAt,
	}, nil
}

func mapSaveErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return sentinel.ErrConflict
	}
	return fmt.Errorf("save user: %w", err)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		rawID        string
		user         models.User
		friendsJSON  []byte
		requestsJSON []byte
	)
	err := row.Scan(&rawID, &user.Username, &user.Email, &user.PasswordDigest,
		&friendsJSON, &requestsJSON, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	user.ID, err = id.ParseUserID(rawID)
	if err != nil {
		return nil, fmt.Errorf("decode user id: %w", err)
	}

	var friends []string
	if err := json.Unmarshal(friendsJSON, &friends); err != nil {
		return nil, fmt.Errorf("decode friends: %w", err)
	}
	for _, f := range friends {
		friendID, err := id.ParseUserID(f)
		if err != nil {
			return nil, fmt.Errorf("decode friend id: %w", err)
		}
		user.Friends = append(user.Friends, friendID)
	}

	var requests []requestDoc
	if err := json.Unmarshal(requestsJSON, &requests); err != nil {
		return nil, fmt.Errorf("decode friend requests: %w", err)
	}
	for _, r := range requests {
		requesterID, err := id.ParseUserID(r.RequesterID)
		if err != nil {
			return nil, fmt.Errorf("decode requester id: %w", err)
		}
		user.FriendRequests = append(user.FriendRequests, models.FriendRequest{
			RequesterID: requesterID,
			Status:      models.RequestStatus(r.Status),
			CreatedAt:   r.CreatedAt,
		})
	}

	return &user, nil
}

func scanUsers(rows pgx.Rows) ([]*models.User, error) {
	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
