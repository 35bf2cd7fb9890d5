package authhandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"leave-tracking-backend/config"
	"leave-tracking-backend/lib/smtp"
	authutils "leave-tracking-backend/lib/utils/auth-utils"
	"leave-tracking-backend/models"
	adminapimodels "leave-tracking-backend/models/api/admin"
	authapimodels "leave-tracking-backend/models/api/auth"
	dbmodels "leave-tracking-backend/models/db"
)

type userStoreStub struct {
	byUserName   *dbmodels.AppUser
	byEmail      *dbmodels.AppUser
	byResetCode  *dbmodels.AppUser
	userNameBusy bool
	emailBusy    bool
	updMap       map[string]interface{}
	created      *dbmodels.AppUser
}

func (s *userStoreStub) Create(rec dbmodels.AppUser) (string, error) {
	s.created = &rec
	return "new-user-id", nil
}

func (s *userStoreStub) Update(userID string, updMap map[string]interface{}) error {
	s.updMap = updMap
	return nil
}

func (s *userStoreStub) GetByID(userID string) (*dbmodels.AppUser, error) {
	return s.byUserName, nil
}

func (s *userStoreStub) FindByUserName(userName string) (*dbmodels.AppUser, error) {
	return s.byUserName, nil
}

func (s *userStoreStub) FindByEmail(email string) (*dbmodels.AppUser, error) {
	return s.byEmail, nil
}

func (s *userStoreStub) GetByResetCode(code string) (*dbmodels.AppUser, error) {
	return s.byResetCode, nil
}

func (s *userStoreStub) ExistByUserName(userName string) (bool, error) {
	return s.userNameBusy, nil
}

func (s *userStoreStub) ExistByEmail(email string) (bool, error) {
	return s.emailBusy, nil
}

func (s *userStoreStub) List(filter adminapimodels.UserFilter) ([]dbmodels.AppUser, error) {
	return nil, nil
}

func (s *userStoreStub) ListCount(filter adminapimodels.UserFilter) (int64, error) {
	return 0, nil
}

func (s *userStoreStub) CountByRole(role models.UserRole) (int64, error) {
	return 0, nil
}

func initTestEnv(t *testing.T) {
	t.Helper()
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	config.Conf.Smtp.DomainForResetLink = "http://localhost:8000"
	require.Nil(t, smtp.Connect("", "", "", "", false))
}

func activeUser(password string) *dbmodels.AppUser {
	hash, _ := authutils.HashPassword(password)
	rec := dbmodels.AppUser{
		UserName: "ivanov",
		Email:    "ivanov@example.com",
		Password: hash,
		Role:     models.EmployeeRole,
		IsActive: true,
	}
	rec.ID = "user-1"
	return &rec
}

func signupData() authapimodels.SignupRequest {
	return authapimodels.SignupRequest{
		UserName:        "ivanov",
		Email:           "ivanov@example.com",
		Password:        "password1",
		PasswordConfirm: "password1",
		FirstName:       "Иван",
		LastName:        "Иванов",
	}
}

func TestSignup(t *testing.T) {
	initTestEnv(t)
	t.Run(`регистрация создает сотрудника и выдает токен`, func(t *testing.T) {
		store := &userStoreStub{}
		h := impl{userStore: store}
		resp, err := h.Signup(signupData())
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotNil(t, store.created)
		require.Equal(t, models.EmployeeRole, store.created.Role)
		require.True(t, store.created.IsActive)
		require.NotEqual(t, "password1", store.created.Password)
	})

	t.Run(`занятый логин`, func(t *testing.T) {
		store := &userStoreStub{userNameBusy: true}
		h := impl{userStore: store}
		_, err := h.Signup(signupData())
		require.True(t, errors.Is(err, models.ErrConflict))
	})

	t.Run(`занятая почта`, func(t *testing.T) {
		store := &userStoreStub{emailBusy: true}
		h := impl{userStore: store}
		_, err := h.Signup(signupData())
		require.True(t, errors.Is(err, models.ErrConflict))
	})
}

func TestLogin(t *testing.T) {
	initTestEnv(t)
	t.Run(`успешный вход`, func(t *testing.T) {
		store := &userStoreStub{byUserName: activeUser("password1")}
		h := impl{userStore: store}
		resp, err := h.Login(authapimodels.LoginRequest{UserName: "ivanov", Password: "password1"})
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotNil(t, store.updMap["last_login"])
	})

	t.Run(`неверный пароль`, func(t *testing.T) {
		store := &userStoreStub{byUserName: activeUser("password1")}
		h := impl{userStore: store}
		_, err := h.Login(authapimodels.LoginRequest{UserName: "ivanov", Password: "wrong"})
		require.NotNil(t, err)
	})

	t.Run(`неизвестный логин`, func(t *testing.T) {
		store := &userStoreStub{}
		h := impl{userStore: store}
		_, err := h.Login(authapimodels.LoginRequest{UserName: "ghost", Password: "password1"})
		require.NotNil(t, err)
	})

	t.Run(`заблокированный пользователь`, func(t *testing.T) {
		user := activeUser("password1")
		user.IsActive = false
		store := &userStoreStub{byUserName: user}
		h := impl{userStore: store}
		_, err := h.Login(authapimodels.LoginRequest{UserName: "ivanov", Password: "password1"})
		require.NotNil(t, err)
	})
}

func TestRecoverPassword(t *testing.T) {
	initTestEnv(t)
	t.Run(`неизвестная почта не раскрывается`, func(t *testing.T) {
		store := &userStoreStub{}
		h := impl{userStore: store}
		err := h.RecoverPassword("ghost@example.com")
		require.Nil(t, err)
		require.Nil(t, store.updMap)
	})

	t.Run(`известной почте выдается код со сроком действия`, func(t *testing.T) {
		store := &userStoreStub{byEmail: activeUser("password1")}
		h := impl{userStore: store}
		err := h.RecoverPassword("ivanov@example.com")
		require.Nil(t, err)
		require.NotEmpty(t, store.updMap["reset_code"])
		expires, ok := store.updMap["reset_code_expires"].(time.Time)
		require.True(t, ok)
		require.True(t, expires.After(time.Now()))
	})
}

func TestResetPassword(t *testing.T) {
	initTestEnv(t)
	resetData := authapimodels.PasswordResetRequest{
		ResetCode:       "code-1",
		NewPassword:     "newPassword1",
		PasswordConfirm: "newPassword1",
	}

	t.Run(`сброс по действующему коду`, func(t *testing.T) {
		user := activeUser("password1")
		user.ResetCode = "code-1"
		user.ResetCodeExpires = time.Now().Add(time.Hour)
		store := &userStoreStub{byResetCode: user}
		h := impl{userStore: store}
		err := h.ResetPassword(resetData)
		require.Nil(t, err)
		require.Equal(t, "", store.updMap["reset_code"])
		newHash, ok := store.updMap["password"].(string)
		require.True(t, ok)
		require.True(t, authutils.CheckPassword("newPassword1", newHash))
	})

	t.Run(`неизвестный код`, func(t *testing.T) {
		store := &userStoreStub{}
		h := impl{userStore: store}
		err := h.ResetPassword(resetData)
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run(`просроченный код`, func(t *testing.T) {
		user := activeUser("password1")
		user.ResetCode = "code-1"
		user.ResetCodeExpires = time.Now().Add(-time.Hour)
		store := &userStoreStub{byResetCode: user}
		h := impl{userStore: store}
		err := h.ResetPassword(resetData)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}
