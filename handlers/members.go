package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
	"github.com/anwarkhairul/Usaha-Bersama/store"
)

// ListMembers lists all members
// @Summary      List members
// @Tags         members
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Member}
// @Router       /members [get]
// @Security     BearerAuth
func ListMembers(w http.ResponseWriter, r *http.Request) {
	members := Store.Members()
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		out = append(out, m.Public())
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateMember updates a member record
// @Summary      Update member
// @Description  Admin update of a member's profile and active status.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id      path      string              true  "Member ID"
// @Param        member  body      models.MemberInput  true  "Updated member"
// @Success      200     {object}  Response{data=models.Member}
// @Failure      404     {object}  Response{error=string}
// @Router       /members/{id} [put]
// @Security     BearerAuth
func UpdateMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.MemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	member, err := Store.Member(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "member not found")
		return
	}
	member.Name = input.Name
	member.Email = input.Email
	member.Phone = input.Phone
	member.NIK = input.NIK
	member.Status = input.Status
	if input.AvatarURL != "" {
		member.AvatarURL = input.AvatarURL
	}

	if err := Store.UpdateMember(member); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		writeError(w, http.StatusNotFound, "member not found")
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntityMembers, Key: member.ID, Value: member})
	writeJSON(w, http.StatusOK, member.Public())
}

// DeleteMember removes a member
// @Summary      Delete member
// @Tags         members
// @Produce      json
// @Param        id   path      string  true  "Member ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /members/{id} [delete]
// @Security     BearerAuth
func DeleteMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := Store.DeleteMember(id); err != nil {
		writeError(w, http.StatusNotFound, "member not found")
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpDelete, Entity: outbox.EntityMembers, Key: id})
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

type profileInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateProfile updates the caller's own profile
// @Summary      Update own profile
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        profile  body      profileInput  true  "Profile changes"
// @Success      200      {object}  Response{data=models.Member}
// @Router       /profile [put]
// @Security     BearerAuth
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input profileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	member, err := Store.Member(callerID(r))
	if err != nil {
		writeError(w, http.StatusNotFound, "member not found")
		return
	}
	if input.Name != "" {
		member.Name = input.Name
	}
	if input.Email != "" {
		member.Email = input.Email
	}
	if input.AvatarURL != "" {
		member.AvatarURL = input.AvatarURL
	}

	if err := Store.UpdateMember(member); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntityMembers, Key: member.ID, Value: member})
	writeJSON(w, http.StatusOK, member.Public())
}
