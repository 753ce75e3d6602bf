package postgresql

import (
	"context"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/user"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := querier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, rut, password_hash, role, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, rut, password_hash, role, oauth_provider, oauth_provider_id,
				  created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.RUT,
		newUser.PasswordHash,
		newUser.Role,
		newUser.OAuthProvider,
		newUser.OAuthProviderID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.RUT,
		&created.PasswordHash,
		&created.Role,
		&created.OAuthProvider,
		&created.OAuthProviderID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT id, name, email, rut, password_hash, role, oauth_provider, oauth_provider_id,
			   created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.RUT,
		&u.PasswordHash,
		&u.Role,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT id, name, email, rut, password_hash, role, oauth_provider, oauth_provider_id,
			   created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.RUT,
		&u.PasswordHash,
		&u.Role,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT id, name, email, rut, password_hash, role, oauth_provider, oauth_provider_id,
			   created_at, updated_at
		FROM users
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.RUT,
			&u.PasswordHash,
			&u.Role,
			&u.OAuthProvider,
			&u.OAuthProviderID,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := querier(ctx, r.db)

	query := `
		UPDATE users
		SET oauth_provider = $1, oauth_provider_id = $2, updated_at = NOW()
		WHERE email = $3
		RETURNING id, name, email, rut, password_hash, role, oauth_provider, oauth_provider_id,
				  created_at, updated_at
	`

	var updated user.User
	err := q.QueryRow(ctx, query, "google", googleID, email).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Email,
		&updated.RUT,
		&updated.PasswordHash,
		&updated.Role,
		&updated.OAuthProvider,
		&updated.OAuthProviderID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return updated, nil
}
