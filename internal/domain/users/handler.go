package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/ping", pingHandler())
		ur.Get("/count", countUsersHandler(svc))
		ur.Get("/me", currentUserHandler(svc))
		ur.Post("/reset", resetUsersHandler(svc))
		ur.Post("/auth", authenticateHandler(svc))

		ur.Post("/", createUserHandler(svc))
		ur.Get("/", listUsersHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
		ur.Put("/{userID}", updateUserHandler(svc))
		ur.Patch("/{userID}", patchUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

type userRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	DNI         string `json:"dni"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Status      string `json:"status"`
}

// userResponse nunca incluye el password (ni siquiera el digest).
type userResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DNI         string `json:"dni"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Status      string `json:"status"`
}

type createdResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type patchRequest struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	DNI         *string `json:"dni"`
	Status      *string `json:"status"`
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	ID       int64     `json:"id"`
	Token    string    `json:"token"`
	ExpireAt time.Time `json:"expireAt"`
}

type countResponse struct {
	Count int `json:"count"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// pingHandler godoc
// @Summary Healthcheck del servicio de usuarios
// @Produce plain
// @Success 200 {string} string "pong"
// @Router /users/ping [get]
func pingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	}
}

// createUserHandler godoc
// @Summary Crea un usuario
// @Accept json
// @Produce json
// @Success 201 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Failure 412 {object} errorResponse "username o email duplicado"
// @Router /users/ [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			Username:    req.Username,
			Password:    req.Password,
			Email:       req.Email,
			DNI:         req.DNI,
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
			Status:      req.Status,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrAlreadyExists):
				writeError(w, http.StatusPreconditionFailed, "Username or email already exists")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse{ID: u.ID, CreatedAt: time.Now().UTC()})
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}

		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Usuario no encontrado")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}

		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Update(r.Context(), id, CreateInput{
			Username:    req.Username,
			Password:    req.Password,
			Email:       req.Email,
			DNI:         req.DNI,
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
			Status:      req.Status,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Usuario no encontrado")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// patchUserHandler godoc
// @Summary Actualización parcial de un usuario
// @Accept json
// @Produce json
// @Success 200 {object} msgResponse
// @Failure 400 {object} errorResponse "patch vacío"
// @Failure 404 {object} errorResponse
// @Router /users/{userID} [patch]
func patchUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}

		var req patchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p := Patch{
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
			DNI:         req.DNI,
			Status:      req.Status,
		}

		// Patch vacío es error del caller; se corta acá, antes del use case.
		if p.Empty() {
			writeError(w, http.StatusBadRequest,
				"Debe enviar al menos uno de los campos esperados: fullName, phoneNumber, dni, status")
			return
		}

		if _, err := svc.PatchFields(r.Context(), id, p); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Usuario no encontrado")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, msgResponse{Msg: "el usuario ha sido actualizado"})
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}

		u, err := svc.Delete(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Usuario no encontrado")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func countUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.Count(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, countResponse{Count: total})
	}
}

func resetUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, msgResponse{Msg: "Todos los datos fueron eliminados"})
	}
}

// authenticateHandler godoc
// @Summary Emite un token bearer para un usuario
// @Accept json
// @Produce json
// @Success 200 {object} tokenResponse
// @Failure 400 {object} errorResponse "faltan campos"
// @Failure 404 {object} errorResponse "credenciales inválidas"
// @Router /users/auth [post]
func authenticateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
			writeError(w, http.StatusBadRequest, "Faltan campos requeridos")
			return
		}

		grant, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Usuario no encontrado")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{
			ID:       grant.ID,
			Token:    grant.Token,
			ExpireAt: grant.ExpireAt,
		})
	}
}

// currentUserHandler godoc
// @Summary Usuario actual a partir del token bearer
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse "token inválido o expirado"
// @Failure 403 {object} errorResponse "header ausente o malformado"
// @Router /users/me [get]
func currentUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.TrimSpace(header) == "" {
			writeError(w, http.StatusForbidden, "Token requerido")
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			writeError(w, http.StatusForbidden, "Invalid authorization header format")
			return
		}

		u, err := svc.CurrentUser(r.Context(), token)
		if err != nil {
			// Token inválido, vencido, o usuario borrado tras emitirlo:
			// siempre 401 con el mismo mensaje.
			if errors.Is(err, ErrTokenInvalid) || errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// bearerToken exige exactamente "Bearer <token>"; otro scheme o formato
// cuenta como header malformado (403, no 401).
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

func userID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DNI:         u.DNI,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Status:      u.Status,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (pets/users) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
