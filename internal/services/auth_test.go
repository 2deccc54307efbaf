package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/sbilibin2017/movie-ratings/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		displayName  *string
		email        string
		existingUser *models.User
		readerErr    error
		assignErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:        "successful registration",
			displayName: strPtr("  Alice Liddell "),
			email:       "alice@example.com",
		},
		{
			name:  "registration without a name",
			email: "carol@example.com",
		},
		{
			name:         "user already exists",
			displayName:  strPtr("Bob"),
			email:        "bob@example.com",
			existingUser: &models.User{ID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "username error",
			email:     "dan@example.com",
			assignErr: errors.New("lookup failed"),
			wantErr:   errors.New("lookup failed"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockUsernames := services.NewMockUsernameAssigner(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockUsernames, mockJWT)

			mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockUsernames.EXPECT().
					Assign(gomock.Any(), gomock.Any(), tt.email).
					DoAndReturn(func(_ context.Context, name *string, email string) (string, error) {
						if tt.displayName != nil {
							require.NotNil(t, name)
							assert.Equal(t, "Alice Liddell", *name)
						} else {
							assert.Nil(t, name)
						}
						return "alice", tt.assignErr
					})
			}

			if tt.existingUser == nil && tt.readerErr == nil && tt.assignErr == nil {
				mockWriter.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						assert.False(t, user.IsAdmin)
						require.NotNil(t, user.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("pass123")))
						assert.Equal(t, "alice", *user.Username)
						saved := *user
						saved.ID = uuid.New()
						return &saved, nil
					})
			}

			user, err := svc.Register(context.Background(), tt.displayName, tt.email, "pass123")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
			assert.NotEqual(t, uuid.Nil, user.ID)
		})
	}
}

func TestAuthService_RegisterRace(t *testing.T) {
	emailTaken := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	usernameTaken := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	tests := []struct {
		name       string
		createErrs []error
		wantErr    error
		wantTries  int
	}{
		{name: "email registered concurrently", createErrs: []error{emailTaken}, wantErr: services.ErrUserAlreadyExists, wantTries: 1},
		{name: "username taken then free", createErrs: []error{usernameTaken, nil}, wantTries: 2},
		{name: "username keeps colliding", createErrs: []error{usernameTaken, usernameTaken, usernameTaken}, wantTries: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockUsernames := services.NewMockUsernameAssigner(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockUsernames, services.NewMockJWTGenerator(ctrl))

			mockReader.EXPECT().GetByEmail(gomock.Any(), "race@example.com").Return(nil, nil)
			mockUsernames.EXPECT().Assign(gomock.Any(), gomock.Any(), "race@example.com").Return("race", nil).Times(tt.wantTries)

			tries := 0
			mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
					err := tt.createErrs[tries]
					tries++
					if err != nil {
						return nil, err
					}
					saved := *user
					saved.ID = uuid.New()
					return &saved, nil
				}).Times(tt.wantTries)

			user, err := svc.Register(context.Background(), nil, "race@example.com", "pass123")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.createErrs[len(tt.createErrs)-1] != nil:
				var pgErr *pgconn.PgError
				require.ErrorAs(t, err, &pgErr)
				assert.Equal(t, "users_username_key", pgErr.ConstraintName)
			default:
				require.NoError(t, err)
				assert.Equal(t, "race@example.com", user.Email)
			}
			assert.Equal(t, tt.wantTries, tries)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashed)

	user := &models.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: &hash, IsAdmin: true}

	tests := []struct {
		name      string
		user      *models.User
		readerErr error
		password  string
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{name: "successful login", user: user, password: "correct-password", wantToken: "token123"},
		{name: "unknown email", user: nil, password: "whatever", wantErr: services.ErrInvalidCredentials},
		{name: "wrong password", user: user, password: "wrong", wantErr: services.ErrInvalidCredentials},
		{name: "account without password", user: &models.User{ID: uuid.New()}, password: "x", wantErr: services.ErrInvalidCredentials},
		{name: "reader error", readerErr: errors.New("db error"), password: "x", wantErr: errors.New("db error")},
		{name: "jwt error", user: user, password: "correct-password", jwtErr: errors.New("sign failed"), wantErr: errors.New("sign failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockUsernameAssigner(ctrl), mockJWT)

			mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(tt.user, tt.readerErr)
			if tt.wantToken != "" || tt.jwtErr != nil {
				mockJWT.EXPECT().Generate(gomock.Any(), user.ID, true).Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), " alice@example.com ", tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
