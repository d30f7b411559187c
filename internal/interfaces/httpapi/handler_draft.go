package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDraft")
	defer span.End()

	var req createDraftRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.draftService.CreateDraft(ctx, usecase.CreateDraftInput{
		Name:        req.Name,
		ScoringType: req.ScoringType,
		TeamCount:   req.TeamCount,
		RosterSize:  req.RosterSize,
		TeamName:    req.TeamName,
		UserName:    req.UserName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create draft failed", "roster_size", req.RosterSize, "team_count", req.TeamCount, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := createdDraftDTO{Draft: draftToDTO(ctx, created.Draft, created.Requirements)}
	if created.CreatorTeam != nil {
		team := teamToDTO(*created.CreatorTeam)
		out.CreatorTeam = &team
	}
	writeSuccess(ctx, w, http.StatusCreated, out)
}

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraft")
	defer span.End()

	draftID, err := pathID(r, "draftID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.String("draft.id", draftID))

	details, err := h.draftService.GetDraft(ctx, draftID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft failed", "draft_id", draftID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftDetailsToDTO(ctx, details))
}

func (h *Handler) JoinDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinDraft")
	defer span.End()

	draftID, err := pathID(r, "draftID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.String("draft.id", draftID))

	var req joinDraftRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.draftService.JoinDraft(ctx, draftID, req.TeamName, req.UserName)
	if err != nil {
		h.logger.WarnContext(ctx, "join draft failed", "draft_id", draftID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(team))
}

func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	h.changeDraftStatus(w, r, "httpapi.Handler.StartDraft", h.draftService.StartDraft)
}

func (h *Handler) PauseDraft(w http.ResponseWriter, r *http.Request) {
	h.changeDraftStatus(w, r, "httpapi.Handler.PauseDraft", h.draftService.PauseDraft)
}

func (h *Handler) ResumeDraft(w http.ResponseWriter, r *http.Request) {
	h.changeDraftStatus(w, r, "httpapi.Handler.ResumeDraft", h.draftService.ResumeDraft)
}

func (h *Handler) EndDraft(w http.ResponseWriter, r *http.Request) {
	h.changeDraftStatus(w, r, "httpapi.Handler.EndDraft", h.draftService.EndDraft)
}

func (h *Handler) changeDraftStatus(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	change func(ctx context.Context, draftID string) (draft.Draft, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	draftID, err := pathID(r, "draftID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.String("draft.id", draftID))

	d, err := change(ctx, draftID)
	if err != nil {
		h.logger.WarnContext(ctx, "draft status change failed", "draft_id", draftID, "operation", spanName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftStatusToDTO(d))
}

func (h *Handler) GetCurrentTurn(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentTurn")
	defer span.End()

	draftID, err := pathID(r, "draftID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.String("draft.id", draftID))

	turn, err := h.draftService.CurrentTurnTeam(ctx, draftID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, turnDTO{
		DraftID:     turn.DraftID,
		TeamID:      turn.TeamID,
		TeamName:    turn.TeamName,
		Seat:        turn.Seat,
		Round:       turn.Round,
		OverallPick: turn.OverallPick,
	})
}

func (h *Handler) ListSeats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeats")
	defer span.End()

	draftID, err := pathID(r, "draftID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seats, err := h.draftService.ListSeatOrder(ctx, draftID)
	if err != nil {
		h.logger.WarnContext(ctx, "list seat order failed", "draft_id", draftID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seatDTO, 0, len(seats))
	for _, seat := range seats {
		items = append(items, seatDTO{Seat: seat.Seat, TeamID: seat.TeamID, TeamName: seat.TeamName})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
