package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	idgen "github.com/riskibarqy/mockmaster/internal/platform/id"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"github.com/riskibarqy/mockmaster/internal/usecase"
)

// maxBodyBytes bounds request payloads; every body in this API is a handful of fields.
const maxBodyBytes = 64 << 10

type Handler struct {
	draftService  *usecase.DraftService
	pickService   *usecase.PickService
	teamService   *usecase.TeamService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	draftService *usecase.DraftService,
	pickService *usecase.PickService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		draftService:  draftService,
		pickService:   pickService,
		teamService:   teamService,
		playerService: playerService,
		logger:        logger.Named("httpapi"),
		validator:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeBody reads a strict JSON body into dst. An empty body is accepted and
// leaves dst untouched so validation reports the missing fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// pathID reads a UUID path segment and returns it in canonical form.
func pathID(r *http.Request, name string) (string, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return "", fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, name)
	}
	id, err := idgen.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", usecase.ErrInvalidInput, name, err)
	}
	return id, nil
}
