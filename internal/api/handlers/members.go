package handlers

import (
	"net/http"

	"github.com/hweilin/memberhub/internal/dto"
)

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateMemberInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}

	createdMember, err := h.factory.Services.Member.Create(r.Context(), &input)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, createdMember, nil)
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	query := h.getMemberQuery(r)

	members, err := h.factory.Services.Member.FindAll(r.Context(), query)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, members, nil)
}

func (h *Handlers) MemberByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	member, err := h.factory.Services.Member.FindOne(r.Context(), id)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, member, nil)
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	var input dto.UpdateMemberInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}

	updatedMember, err := h.factory.Services.Member.Update(r.Context(), id, &input)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, updatedMember, nil)
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	result, err := h.factory.Services.Member.Remove(r.Context(), id)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result, nil)
}
