package postgres

import (
	"errors"
	"testing"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/domain/player"
)

type stubResult struct {
	affected int64
	err      error
}

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.affected, r.err }

func TestExpectAffected(t *testing.T) {
	t.Run("matching count", func(t *testing.T) {
		if err := expectAffected(stubResult{affected: 1}, 1, draft.ErrDraftNotFound, "d1"); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		err := expectAffected(stubResult{affected: 0}, 1, draft.ErrTeamNotFound, "t9")
		if !errors.Is(err, draft.ErrTeamNotFound) {
			t.Fatalf("expected team not found, got %v", err)
		}
		if draft.KindOf(err) != draft.KindTeamNotFound {
			t.Fatalf("expected TeamNotFound kind, got %q", draft.KindOf(err))
		}
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		driverErr := errors.New("rows affected not supported")
		err := expectAffected(stubResult{err: driverErr}, 1, draft.ErrDraftNotFound, "d1")
		if !errors.Is(err, driverErr) {
			t.Fatalf("expected wrapped driver error, got %v", err)
		}
		if errors.Is(err, draft.ErrDraftNotFound) {
			t.Fatalf("driver error must not read as not found")
		}
	})
}

func TestPlayerFromRow(t *testing.T) {
	got := playerFromRow(playerTableModel{
		ID:             "p-101",
		Name:           "Sam Carter",
		Position:       "WR",
		Club:           "KC",
		Age:            27,
		StandardPoints: 182.5,
		PPRPoints:      261,
	})

	if got.ID != "p-101" || got.Position != player.PositionWideReceiver || got.Club != "KC" || got.Age != 27 {
		t.Fatalf("unexpected player: %+v", got)
	}
	if got.StandardPoints != 182.5 || got.PPRPoints != 261 {
		t.Fatalf("unexpected points: %+v", got)
	}
}
