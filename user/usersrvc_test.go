package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelboard/backend/srvcerror"
	"github.com/modelboard/backend/user"
)

func setupUserSrvc() *user.UserSrvc {
	return user.NewUserSrvc(user.NewInMemRepo())
}

func TestCreateUserAndLogin(t *testing.T) {
	srvc := setupUserSrvc()

	created, err := srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "testuser", created.Username)
	assert.Equal(t, "test@example.com", created.Email)

	loggedIn, err := srvc.Login(context.Background(), "testuser", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.UUID, loggedIn.UUID)
}

func TestLoginWrongPassword(t *testing.T) {
	srvc := setupUserSrvc()

	_, err := srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = srvc.Login(context.Background(), "testuser", "wrongpassword")
	assertUserErrCode(t, err, user.ErrCodeUsernameOrPasswordIncorrect)

	_, err = srvc.Login(context.Background(), "nosuchuser", "password123")
	assertUserErrCode(t, err, user.ErrCodeUsernameOrPasswordIncorrect)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	srvc := setupUserSrvc()

	_, err := srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "testuser",
		Email:    "other@example.com",
		Password: "password456",
	})
	assertUserErrCode(t, err, user.ErrCodeUsernameAlreadyExists)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	srvc := setupUserSrvc()

	_, err := srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "firstuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "seconduser",
		Email:    "test@example.com",
		Password: "password456",
	})
	assertUserErrCode(t, err, user.ErrCodeEmailAlreadyExists)
}

func TestCreateUserValidation(t *testing.T) {
	srvc := setupUserSrvc()

	_, err := srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "a",
		Email:    "test@example.com",
		Password: "password123",
	})
	assertUserErrCode(t, err, user.ErrCodeUsernameTooShort)

	_, err = srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "testuser",
		Email:    "not-an-email",
		Password: "password123",
	})
	assertUserErrCode(t, err, user.ErrCodeEmailInvalid)

	_, err = srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "short",
	})
	assertUserErrCode(t, err, user.ErrCodePasswordTooShort)
}

func TestListUsersHidesCredentials(t *testing.T) {
	srvc := setupUserSrvc()

	_, err := srvc.CreateUser(context.Background(), user.CreateUserParams{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	users, err := srvc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "testuser", users[0].Username)
}

func assertUserErrCode(t *testing.T, err error, code string) {
	t.Helper()
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, code, srvcErr.ErrorCode())
}
