package handler

import (
	"net/http"
	"testing"

	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	mockUsecase "menudash/internal/mocks/usecase"
	"menudash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserTestEcho(t *testing.T, session *entity.Session) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC})

	withSession := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session != nil {
				deliverycontext.SetSession(c, session)
			}
			return next(c)
		}
	}

	e := newTestEcho()
	e.Use(withSession)
	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.PUT("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)

	return e, userUC
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, userUC := newUserTestEcho(t, nil)

		userUC.EXPECT().
			CreateUser(mock.Anything, mock.MatchedBy(func(in *usecase.CreateUserInput) bool {
				return in.Email == "chef@example.com" && in.Role == entity.RoleUser && in.Password == "secret1"
			})).
			Return(&entity.User{ID: uuid.New(), Email: "chef@example.com", Role: entity.RoleUser, PasswordHash: "hash"}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/users", `{"name":"Chef","email":"chef@example.com","password":"secret1","role":"user"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("duplicate email", func(t *testing.T) {
		e, userUC := newUserTestEcho(t, nil)

		userUC.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

		rec := doRequest(e, http.MethodPost, "/users", `{"name":"Chef","email":"chef@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		e, _ := newUserTestEcho(t, nil)

		rec := doRequest(e, http.MethodPost, "/users", `{"name":"Chef","email":"chef@example.com","password":"secret1","role":"owner"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("passes actor and role", func(t *testing.T) {
		actor := &entity.Session{UserID: uuid.New(), Role: entity.RoleAdmin}
		e, userUC := newUserTestEcho(t, actor)
		id := uuid.New()

		userUC.EXPECT().
			UpdateUser(mock.Anything, actor, id, &usecase.UpdateUserInput{
				Name: ptr("Renamed"),
				Role: ptr(entity.RoleAdmin),
			}).
			Return(&entity.User{ID: id, Name: "Renamed", Role: entity.RoleAdmin}, nil).
			Once()

		rec := doRequest(e, http.MethodPut, "/users/"+id.String(), `{"name":"Renamed","role":"admin"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("without session", func(t *testing.T) {
		e, _ := newUserTestEcho(t, nil)

		rec := doRequest(e, http.MethodPut, "/users/"+uuid.NewString(), `{"name":"Renamed"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forbidden for other users", func(t *testing.T) {
		actor := &entity.Session{UserID: uuid.New(), Role: entity.RoleUser}
		e, userUC := newUserTestEcho(t, actor)

		userUC.EXPECT().UpdateUser(mock.Anything, actor, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUnauthorized).Once()

		rec := doRequest(e, http.MethodPut, "/users/"+uuid.NewString(), `{"name":"Renamed"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandler_ListAndDelete(t *testing.T) {
	e, userUC := newUserTestEcho(t, nil)
	id := uuid.New()

	userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{{ID: id, Name: "Chef"}}, nil).Once()
	userUC.EXPECT().DeleteUser(mock.Anything, id).Return(domainerrors.ErrUserNotFound).Once()

	rec := doRequest(e, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/users/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
