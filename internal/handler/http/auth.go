package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/service"
	"github.com/MKhiriev/go-invoice/internal/utils"
	"github.com/MKhiriev/go-invoice/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.ReadJSON(r, &request); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, service.KindValidation, ErrInvalidJSON.Error())
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeAuthResponse(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, service.KindValidation, ErrInvalidJSON.Error())
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	h.writeAuthResponse(w, r, foundUser, http.StatusOK)
}

// writeAuthResponse issues a token for user and returns it both in the
// Authorization header and in the body.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
}
