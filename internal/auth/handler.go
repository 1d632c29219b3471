// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/courtside/auth-api/internal/core"
	"github.com/courtside/auth-api/internal/middleware"
	"github.com/courtside/auth-api/internal/upload"
)

const maxMultipartMemory = 8 << 20

type Handler struct {
	service     *Service
	credentials *CredentialValidator
	uploads     *upload.Store
	validator   *validator.Validate
}

func NewHandler(
	service *Service,
	credentials *CredentialValidator,
	uploads *upload.Store,
) *Handler {
	return &Handler{
		service:     service,
		credentials: credentials,
		uploads:     uploads,
		validator:   NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.With(h.CredentialGate).Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
			r.Post("/logout", h.Logout)
		})
	})
}

// CredentialGate resolves the login body into an authenticated user before
// the handler runs. The handler never sees raw credentials; an invalid pair
// never reaches it at all.
func (h *Handler) CredentialGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.BadRequest(w, "invalid request body")
			return
		}

		if err := h.validator.Struct(req); err != nil {
			core.JSONError(w, core.ValidationError(FieldErrors(err)))
			return
		}

		u, err := h.credentials.Validate(r.Context(), req.Email, req.Password)
		if err != nil {
			core.InternalServerError(w, err)
			return
		}

		if u == nil {
			core.Unauthorized(w, "")
			return
		}

		next.ServeHTTP(w, r.WithContext(middleware.WithUser(r.Context(), u)))
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	var file multipart.File
	var header *multipart.FileHeader

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.uploads.MaxFileSize()+1<<20)
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			core.BadRequest(w, "invalid multipart form")
			return
		}

		req = RegisterRequest{
			FirstName:   r.FormValue("firstName"),
			LastName:    r.FormValue("lastName"),
			Email:       r.FormValue("email"),
			Birthdate:   r.FormValue("birthdate"),
			PhoneNumber: r.FormValue("phoneNumber"),
			Password:    r.FormValue("password"),
			Platform:    r.FormValue("platform"),
		}

		f, fh, err := r.FormFile("profilePicture")
		switch {
		case err == nil:
			file, header = f, fh
			defer f.Close() //nolint:errcheck // read-only temp file
		case errors.Is(err, http.ErrMissingFile):
			// registration without a picture is fine
		default:
			core.BadRequest(w, "invalid profile picture upload")
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.BadRequest(w, "invalid request body")
			return
		}
	}

	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationError(FieldErrors(err)))
		return
	}

	// The upload is only written after field validation passed, and its
	// reference only attached after the write fully succeeded.
	if file != nil {
		ref, err := h.uploads.Save(file, header)
		if err != nil {
			if errors.Is(err, upload.ErrFileType) ||
				errors.Is(err, upload.ErrFileTooLarge) {
				core.JSONError(w, core.ValidationError([]core.FieldError{
					{Field: "profilePicture", Message: err.Error()},
				}))
				return
			}
			core.InternalServerError(w, err)
			return
		}
		req.ProfilePicture = ref
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if file != nil && req.ProfilePicture != "" {
			//nolint:errcheck // best-effort cleanup of the stored upload
			_ = h.uploads.Remove(req.ProfilePicture)
		}
		if errors.Is(err, core.ErrDuplicateEmail) {
			core.JSONError(w, core.DuplicateEmailError())
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.JSONError(w, err)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Login(r.Context(), middleware.GetUser(r.Context()))
	if err != nil {
		if errors.Is(err, core.ErrUnauthorized) {
			core.Unauthorized(w, "")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	if u == nil {
		core.Unauthorized(w, "")
		return
	}

	core.OK(w, h.service.Profile(u))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAuthenticated(r.Context()) {
		core.Unauthorized(w, "")
		return
	}

	var req LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	core.Message(w, h.service.Logout(r.Context(), req.UserID))
}
