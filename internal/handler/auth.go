package handler

import (
	"net/http"

	"github.com/savi-dev/savi/shared/api"
	mw "github.com/savi-dev/savi/shared/middleware"
	"github.com/savi-dev/savi/shared/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.SignUp(r.Context(), body.Name, body.Email, body.Password, body.Role)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	notice := "Account created. You can login now."
	if user.Pending {
		notice = "Registration submitted. An admin will review your technician application."
	}
	writeJSON(w, http.StatusCreated, api.NoticeResponse{Notice: notice})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, accessToken, err := h.auth.SignIn(r.Context(), body.Email, body.Password, body.RememberMe)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    accessToken,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, api.UserResponse{User: user})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) RememberedEmail(w http.ResponseWriter, r *http.Request) {
	email, err := h.auth.RememberedEmail(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.RememberedEmailResponse{Email: email})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	var body api.ChangePasswordRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.auth.ChangePassword(r.Context(), user, body.OldPassword, body.NewPassword); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NoticeResponse{Notice: "Password changed successfully."})
}
