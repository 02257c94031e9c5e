package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/ab65ed/soaledu-finance/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "login", "password_hash", "role", "user_type"}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, login, password_hash, role, user_type FROM users WHERE login = $1`)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing login returns user",
			login: "designer",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "designer", "hashed", domain.RoleUser, domain.UserTypeRegular)
				mock.ExpectQuery(query).WithArgs("designer").WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Login:        "designer",
				PasswordHash: "hashed",
				Role:         domain.RoleUser,
				UserType:     domain.UserTypeRegular,
			},
		},
		{
			name:  "Unknown login returns nil",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "designer",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("designer").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, login, password_hash, role, user_type FROM users WHERE id = $1`)

	rows := pgxmock.NewRows(userColumns).
		AddRow(1, "student", "hashed", domain.RoleUser, domain.UserTypeStudent)
	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

	user, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, domain.UserTypeStudent, user.UserType)

	mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
	user, err = repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		INSERT INTO users (login, password_hash, role, user_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id`)

	t.Run("Successfully creates user", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("designer", "hashed", domain.RoleUser, domain.UserTypeRegular).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		user, err := repo.Create(context.Background(), &domain.User{
			Login:        "designer",
			PasswordHash: "hashed",
			Role:         domain.RoleUser,
			UserType:     domain.UserTypeRegular,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("designer", "hashed", domain.RoleUser, domain.UserTypeRegular).
			WillReturnError(errors.New("database error"))

		user, err := repo.Create(context.Background(), &domain.User{
			Login:        "designer",
			PasswordHash: "hashed",
			Role:         domain.RoleUser,
			UserType:     domain.UserTypeRegular,
		})
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}
