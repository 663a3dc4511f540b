package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/savi-dev/savi/shared/api"
	"github.com/savi-dev/savi/shared/domain"
	mw "github.com/savi-dev/savi/shared/middleware"
)

const viewerCookieName = "saviViewerId"

// viewerId identifies the voting viewer. Authenticated users vote under their
// email so the ledger survives sessions; anonymous viewers get a random id in
// a cookie, which makes their ledger session-scoped by construction.
func (h *Handler) viewerId(w http.ResponseWriter, r *http.Request) string {
	if user := mw.GetUserFromContext(r); user != nil {
		return user.Email
	}

	if cookie, err := r.Cookie(viewerCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     viewerCookieName,
		Value:    id,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func mediaFromPayload(p *api.MediaPayload) *domain.Media {
	if p == nil {
		return nil
	}
	return &domain.Media{Url: p.Url, Kind: domain.MediaKind(p.Kind)}
}
