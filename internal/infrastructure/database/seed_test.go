package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/davidmorac/asadero-pos/internal/adapter/repository"
	"github.com/davidmorac/asadero-pos/internal/domain/user"
	"github.com/davidmorac/asadero-pos/pkg/logger"
)

// MockUserRepository es un mock de user.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func TestSeederRun(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	t.Run("crea el administrador cuando no existe", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "admin@gmail.com").Return(nil, repository.ErrUserNotFound)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Email == "admin@gmail.com" && u.Username == "Admin"
		})).Return(nil)

		seeder := NewSeeder(nil, nil, users, logger.NewLogger())

		err := seeder.Run(context.Background())

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("no duplica el administrador existente", func(t *testing.T) {
		admin, err := user.NewUser("Admin", "admin@gmail.com", "admin123")
		assert.NoError(t, err)

		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "admin@gmail.com").Return(admin, nil)

		seeder := NewSeeder(nil, nil, users, logger.NewLogger())

		err = seeder.Run(context.Background())

		assert.NoError(t, err)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("propaga errores transitorios sin insertar", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "admin@gmail.com").
			Return(nil, errors.New("error al buscar usuario: conexión rechazada"))

		seeder := NewSeeder(nil, nil, users, logger.NewLogger())

		err := seeder.Run(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error al verificar el usuario administrador")
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
