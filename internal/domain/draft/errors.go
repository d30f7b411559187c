package draft

import "errors"

var (
	ErrDraftNotFound              = errors.New("draft not found")
	ErrTeamNotFound               = errors.New("team not found")
	ErrPlayerNotFound             = errors.New("player not found")
	ErrDraftFull                  = errors.New("draft is full")
	ErrDraftNotJoinable           = errors.New("draft is not accepting teams")
	ErrDraftNotPending            = errors.New("draft is not pending")
	ErrNoTeamsToStart             = errors.New("draft has no teams to start")
	ErrDraftNotActive             = errors.New("draft is not active")
	ErrDraftNotPaused             = errors.New("draft is not paused")
	ErrDraftAlreadyEnded          = errors.New("draft already ended")
	ErrPlayerUnavailable          = errors.New("player already drafted")
	ErrNotYourTurn                = errors.New("not your turn")
	ErrRosterRequirementViolation = errors.New("pick would leave a position minimum unreachable")
	ErrPositionLimitReached       = errors.New("position limit reached")
	ErrSerializationConflict      = errors.New("concurrent update conflict, please retry")

	ErrInvalidRosterSize = errors.New("unsupported roster size")
	ErrNoTeams           = errors.New("team count must be at least 1")
)

// Kind is the stable, caller-facing name of a draft failure.
type Kind string

const (
	KindNone                       Kind = ""
	KindDraftNotFound              Kind = "DraftNotFound"
	KindTeamNotFound               Kind = "TeamNotFound"
	KindPlayerNotFound             Kind = "PlayerNotFound"
	KindDraftFull                  Kind = "DraftFull"
	KindDraftNotJoinable           Kind = "DraftNotJoinable"
	KindDraftNotPending            Kind = "DraftNotPending"
	KindNoTeamsToStart             Kind = "NoTeamsToStart"
	KindDraftNotActive             Kind = "DraftNotActive"
	KindDraftNotPaused             Kind = "DraftNotPaused"
	KindDraftAlreadyEnded          Kind = "DraftAlreadyEnded"
	KindPlayerUnavailable          Kind = "PlayerUnavailable"
	KindNotYourTurn                Kind = "NotYourTurn"
	KindRosterRequirementViolation Kind = "RosterRequirementViolation"
	KindPositionLimitReached       Kind = "PositionLimitReached"
	KindSerializationConflict      Kind = "SerializationConflict"
)

var kindByErr = []struct {
	err  error
	kind Kind
}{
	{ErrDraftNotFound, KindDraftNotFound},
	{ErrTeamNotFound, KindTeamNotFound},
	{ErrPlayerNotFound, KindPlayerNotFound},
	{ErrDraftFull, KindDraftFull},
	{ErrDraftNotJoinable, KindDraftNotJoinable},
	{ErrDraftNotPending, KindDraftNotPending},
	{ErrNoTeamsToStart, KindNoTeamsToStart},
	{ErrDraftNotActive, KindDraftNotActive},
	{ErrDraftNotPaused, KindDraftNotPaused},
	{ErrDraftAlreadyEnded, KindDraftAlreadyEnded},
	{ErrPlayerUnavailable, KindPlayerUnavailable},
	{ErrNotYourTurn, KindNotYourTurn},
	{ErrRosterRequirementViolation, KindRosterRequirementViolation},
	{ErrPositionLimitReached, KindPositionLimitReached},
	{ErrSerializationConflict, KindSerializationConflict},
}

// KindOf reports the draft failure kind carried by err, or KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, item := range kindByErr {
		if errors.Is(err, item.err) {
			return item.kind
		}
	}
	return KindNone
}

// IsRetryable reports whether the caller may re-invoke the same operation unchanged.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrSerializationConflict)
}
