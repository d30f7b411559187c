package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) AttemptPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AttemptPick")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req attemptPickRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.String("player.id", playerID), attribute.String("team.id", req.TeamID))

	selection, err := h.pickService.AttemptPick(ctx, req.TeamID, playerID)
	if err != nil {
		// Rule rejections are routine during a live draft.
		if kind := draft.KindOf(err); kind != draft.KindNone {
			h.logger.DebugContext(ctx, "pick rejected", "team_id", req.TeamID, "player_id", playerID, "kind", kind)
		} else {
			h.logger.ErrorContext(ctx, "attempt pick failed", "team_id", req.TeamID, "player_id", playerID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, selectionToDTO(selection))
}

func (h *Handler) ListPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPicks")
	defer span.End()

	draftID, err := pathID(r, "draftID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(attribute.String("draft.id", draftID))

	picks, err := h.pickService.ListPicks(ctx, draftID)
	if err != nil {
		h.logger.WarnContext(ctx, "list picks failed", "draft_id", draftID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pickDTO, 0, len(picks))
	for _, pick := range picks {
		items = append(items, pickDTO{
			WhenSelected: pick.WhenSelected,
			PlayerID:     pick.PlayerID,
			Position:     string(pick.Position),
			TeamID:       pick.TeamID,
			TeamName:     pick.TeamName,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
