package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
	"github.com/anwarkhairul/Usaha-Bersama/store"
)

// ErrAuthFailure is returned on credential mismatch. Handlers map it to 401
// without revealing which part of the credentials failed.
var ErrAuthFailure = errors.New("invalid email or password")

const tokenTTL = 24 * time.Hour

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token  string        `json:"token"`
	Member models.Member `json:"member"`
}

// Register creates a new member account
// @Summary      Register member
// @Description  Self-service registration for a new cooperative member.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registration  body      models.RegisterInput  true  "Registration form"
// @Success      201           {object}  Response{data=models.Member}
// @Failure      409           {object}  Response{error=string}
// @Router       /register [post]
func Register(w http.ResponseWriter, r *http.Request) {
	var input models.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	member, err := Store.AddMember(models.Member{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		NIK:          input.NIK,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		JoinDate:     today(),
		Status:       models.MemberActive,
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityMembers, Key: member.ID, Value: member})
	writeJSON(w, http.StatusCreated, member.Public())
}

// Login authenticates a member or the administrator
// @Summary      Login
// @Description  Exchange email and password for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      loginInput  true  "Credentials"
// @Success      200          {object}  Response{data=loginResult}
// @Failure      401          {object}  Response{error=string}
// @Failure      403          {object}  Response{error=string}
// @Router       /login [post]
func Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// Built-in administrator account.
	if input.Email == AdminEmail {
		if AdminPassword == "" || input.Password != AdminPassword {
			writeError(w, http.StatusUnauthorized, ErrAuthFailure.Error())
			return
		}
		admin := models.Member{
			ID:     "ADMIN",
			Name:   "Administrator",
			Email:  AdminEmail,
			Role:   models.RoleAdmin,
			Status: models.MemberActive,
		}
		token, err := issueToken(admin)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, loginResult{Token: token, Member: admin})
		return
	}

	member, err := Store.MemberByEmail(input.Email)
	if err != nil {
		writeError(w, http.StatusUnauthorized, ErrAuthFailure.Error())
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(input.Password)) != nil {
		writeError(w, http.StatusUnauthorized, ErrAuthFailure.Error())
		return
	}
	if member.Status == models.MemberInactive {
		writeError(w, http.StatusForbidden, "account is inactive, contact the administrator")
		return
	}

	token, err := issueToken(member)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, loginResult{Token: token, Member: member.Public()})
}

// Me returns the calling member's profile
// @Summary      Current member
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response{data=models.Member}
// @Router       /me [get]
// @Security     BearerAuth
func Me(w http.ResponseWriter, r *http.Request) {
	if isAdmin(r) {
		writeJSON(w, http.StatusOK, models.Member{
			ID: "ADMIN", Name: "Administrator", Email: AdminEmail,
			Role: models.RoleAdmin, Status: models.MemberActive,
		})
		return
	}
	member, err := Store.Member(callerID(r))
	if err != nil {
		writeError(w, http.StatusNotFound, "member not found")
		return
	}
	writeJSON(w, http.StatusOK, member.Public())
}

func issueToken(m models.Member) (string, error) {
	claims := jwt.MapClaims{
		"sub":  m.ID,
		"name": m.Name,
		"role": m.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTSecret)
}
