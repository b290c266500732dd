package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/stretchr/testify/suite"
)

type UserHandlerIntegrationTestSuite struct {
	suite.Suite
	env *testEnv
}

func (s *UserHandlerIntegrationTestSuite) SetupSuite() {
	s.env = setupTestEnv(s.T())
}

func (s *UserHandlerIntegrationTestSuite) TearDownSuite() {
	s.env.teardown(s.T())
}

func (s *UserHandlerIntegrationTestSuite) SetupTest() {
	s.env.clean(s.T())
}

func (s *UserHandlerIntegrationTestSuite) createUserBody(username string) string {
	return fmt.Sprintf(`{
		"username": %q,
		"email": "%s@example.com",
		"full_name": "Test User",
		"password": "Password123"
	}`, username, username)
}

func (s *UserHandlerIntegrationTestSuite) TestCreate_Success() {
	recorder := s.env.jsonRequest(http.MethodPost, "/api/v1/users/", "",
		strings.NewReader(s.createUserBody("alice")))

	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var body map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Equal("alice", body["username"])
	s.Equal(string(models.RoleUser), body["role"], "Role should default to user")
	s.NotContains(body, "password_hash", "Hash must not leak in responses")
}

func (s *UserHandlerIntegrationTestSuite) TestCreate_DuplicateUsername() {
	recorder := s.env.jsonRequest(http.MethodPost, "/api/v1/users/", "",
		strings.NewReader(s.createUserBody("alice")))
	s.Require().Equal(http.StatusCreated, recorder.Code)

	recorder = s.env.jsonRequest(http.MethodPost, "/api/v1/users/", "",
		strings.NewReader(s.createUserBody("alice")))

	s.Equal(http.StatusConflict, recorder.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	assertErrorKind(s.T(), body, KindConflict)
}

func (s *UserHandlerIntegrationTestSuite) TestCreate_InvalidBody() {
	recorder := s.env.jsonRequest(http.MethodPost, "/api/v1/users/", "",
		strings.NewReader(`{"username": "alice"}`))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *UserHandlerIntegrationTestSuite) TestCreate_ValidationError() {
	body := `{"username": "al", "email": "al@example.com", "password": "Password123"}`
	recorder := s.env.jsonRequest(http.MethodPost, "/api/v1/users/", "",
		strings.NewReader(body))

	s.Equal(http.StatusBadRequest, recorder.Code)

	var response map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	assertErrorKind(s.T(), response, KindValidation)
}

func (s *UserHandlerIntegrationTestSuite) TestList_SuperadminOnly() {
	_, userToken := s.env.seedUser(s.T(), "plain", models.RoleUser)
	_, adminToken := s.env.seedUser(s.T(), "admin", models.RoleAdmin)
	_, superToken := s.env.seedUser(s.T(), "super", models.RoleSuperadmin)

	recorder := s.env.jsonRequest(http.MethodGet, "/api/v1/users/", userToken, nil)
	s.Equal(http.StatusForbidden, recorder.Code, "Regular users may not list the directory")

	recorder = s.env.jsonRequest(http.MethodGet, "/api/v1/users/", adminToken, nil)
	s.Equal(http.StatusForbidden, recorder.Code, "Admins may not list the directory either")

	recorder = s.env.jsonRequest(http.MethodGet, "/api/v1/users/", superToken, nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var users []map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &users))
	s.Len(users, 3)
}

func (s *UserHandlerIntegrationTestSuite) TestList_NoToken() {
	recorder := s.env.jsonRequest(http.MethodGet, "/api/v1/users/", "", nil)

	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *UserHandlerIntegrationTestSuite) TestUpdateRole_Success() {
	target, _ := s.env.seedUser(s.T(), "target", models.RoleUser)
	_, superToken := s.env.seedUser(s.T(), "super", models.RoleSuperadmin)

	recorder := s.env.jsonRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/users/%d/role", target.ID), superToken,
		strings.NewReader(`{"role": "admin"}`))

	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	// Persisted, not just echoed
	updated, err := s.env.userService.GetByUsername("target")
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, updated.Role)
}

func (s *UserHandlerIntegrationTestSuite) TestUpdateRole_AdminForbidden() {
	target, _ := s.env.seedUser(s.T(), "target", models.RoleUser)
	_, adminToken := s.env.seedUser(s.T(), "admin", models.RoleAdmin)

	recorder := s.env.jsonRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/users/%d/role", target.ID), adminToken,
		strings.NewReader(`{"role": "admin"}`))

	s.Equal(http.StatusForbidden, recorder.Code)
}

func (s *UserHandlerIntegrationTestSuite) TestUpdateRole_UnknownUser() {
	_, superToken := s.env.seedUser(s.T(), "super", models.RoleSuperadmin)

	recorder := s.env.jsonRequest(http.MethodPut, "/api/v1/users/99999/role", superToken,
		strings.NewReader(`{"role": "admin"}`))

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *UserHandlerIntegrationTestSuite) TestUpdateRole_InvalidRole() {
	target, _ := s.env.seedUser(s.T(), "target", models.RoleUser)
	_, superToken := s.env.seedUser(s.T(), "super", models.RoleSuperadmin)

	recorder := s.env.jsonRequest(http.MethodPut,
		fmt.Sprintf("/api/v1/users/%d/role", target.ID), superToken,
		strings.NewReader(`{"role": "root"}`))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func TestUserHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerIntegrationTestSuite))
}
