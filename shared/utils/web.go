package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/savi-dev/savi/shared/errors"
	"github.com/savi-dev/savi/shared/logger"
)

// WriteErrorAndStatusCode translates the service error taxonomy into HTTP
// responses. Unknown error types default to 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *errors.ErrorWithStatusCode:
		http.Error(w, e.Message, e.StatusCode)
	case *errors.ValidationError:
		http.Error(w, e.Error(), http.StatusBadRequest)
	case *errors.AuthorizationDenied:
		if e.RedirectToLogin {
			w.Header().Set("X-Redirect-To", "/login")
			http.Error(w, e.Message, http.StatusUnauthorized)
			return
		}
		http.Error(w, e.Message, http.StatusForbidden)
	case *errors.ProviderError:
		w.Header().Set("X-Error-Code", e.Kind)
		http.Error(w, e.Message, e.StatusCode())
	default:
		if errors.IsNotFound(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request body failed validation", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
