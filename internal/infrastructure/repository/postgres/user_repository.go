package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByToken resolves an API token to its user. Unknown tokens map to the
// unauthorized kind so the transport layer can answer 401 without guessing.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, email, role, created_at
FROM users
WHERE api_token = $1
`, token)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrUnauthorized, "resolve token",
				errors.New("unknown api token"))
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
