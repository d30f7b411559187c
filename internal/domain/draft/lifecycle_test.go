package draft

import (
	"errors"
	"testing"
)

func TestLifecycleChecks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		check   func(Status) error
		from    Status
		wantErr error
	}{
		{name: "pause active", check: CheckPause, from: StatusActive},
		{name: "pause pending", check: CheckPause, from: StatusPending, wantErr: ErrDraftNotActive},
		{name: "pause paused", check: CheckPause, from: StatusPaused, wantErr: ErrDraftNotActive},
		{name: "pause ended", check: CheckPause, from: StatusEnded, wantErr: ErrDraftAlreadyEnded},
		{name: "resume paused", check: CheckResume, from: StatusPaused},
		{name: "resume active", check: CheckResume, from: StatusActive, wantErr: ErrDraftNotPaused},
		{name: "resume pending", check: CheckResume, from: StatusPending, wantErr: ErrDraftNotPaused},
		{name: "resume ended", check: CheckResume, from: StatusEnded, wantErr: ErrDraftAlreadyEnded},
		{name: "end active", check: CheckEnd, from: StatusActive},
		{name: "end paused", check: CheckEnd, from: StatusPaused, wantErr: ErrDraftNotActive},
		{name: "end pending", check: CheckEnd, from: StatusPending, wantErr: ErrDraftNotActive},
		{name: "end ended", check: CheckEnd, from: StatusEnded, wantErr: ErrDraftAlreadyEnded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.check(tc.from)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("expected transition from %s to be allowed, got %v", tc.from, err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v from %s, got %v", tc.wantErr, tc.from, err)
			}
		})
	}
}

func TestCheckStart(t *testing.T) {
	t.Parallel()

	if err := CheckStart(StatusPending, 3); err != nil {
		t.Fatalf("expected start to be allowed, got %v", err)
	}
	if err := CheckStart(StatusPending, 0); !errors.Is(err, ErrNoTeamsToStart) {
		t.Fatalf("expected ErrNoTeamsToStart, got %v", err)
	}
	if err := CheckStart(StatusActive, 3); !errors.Is(err, ErrDraftNotPending) {
		t.Fatalf("expected ErrDraftNotPending, got %v", err)
	}
	if err := CheckStart(StatusPaused, 3); !errors.Is(err, ErrDraftNotPending) {
		t.Fatalf("expected ErrDraftNotPending, got %v", err)
	}
	if err := CheckStart(StatusEnded, 3); !errors.Is(err, ErrDraftAlreadyEnded) {
		t.Fatalf("expected ErrDraftAlreadyEnded, got %v", err)
	}
}

func TestCheckJoin(t *testing.T) {
	t.Parallel()

	d := Draft{ID: "d1", TeamCount: 2, Status: StatusPending}
	if err := CheckJoin(d, 1); err != nil {
		t.Fatalf("expected join to be allowed, got %v", err)
	}
	if err := CheckJoin(d, 2); !errors.Is(err, ErrDraftFull) {
		t.Fatalf("expected ErrDraftFull, got %v", err)
	}

	d.Status = StatusActive
	if err := CheckJoin(d, 0); !errors.Is(err, ErrDraftNotJoinable) {
		t.Fatalf("expected ErrDraftNotJoinable, got %v", err)
	}
}

func TestAssignSeats(t *testing.T) {
	t.Parallel()

	teams := []string{"a", "b", "c", "d"}
	reverse := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = n - 1 - i
		}
		return out
	}

	seats, err := AssignSeats(teams, reverse)
	if err != nil {
		t.Fatalf("assign seats: %v", err)
	}
	want := map[string]int{"a": 4, "b": 3, "c": 2, "d": 1}
	for team, seat := range want {
		if seats[team] != seat {
			t.Fatalf("team %s: got seat %d want %d", team, seats[team], seat)
		}
	}
}

func TestAssignSeats_RandomIsPermutation(t *testing.T) {
	t.Parallel()

	teams := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i := 0; i < 50; i++ {
		seats, err := AssignSeats(teams, RandomShuffler())
		if err != nil {
			t.Fatalf("assign seats: %v", err)
		}
		used := make(map[int]bool, len(teams))
		for _, seat := range seats {
			if seat < 1 || seat > len(teams) || used[seat] {
				t.Fatalf("invalid seating %v", seats)
			}
			used[seat] = true
		}
	}
}

func TestAssignSeats_RejectsBadShuffle(t *testing.T) {
	t.Parallel()

	if _, err := AssignSeats(nil, RandomShuffler()); !errors.Is(err, ErrNoTeamsToStart) {
		t.Fatalf("expected ErrNoTeamsToStart, got %v", err)
	}

	duplicate := func(n int) []int { return make([]int, n) }
	if _, err := AssignSeats([]string{"a", "b"}, duplicate); err == nil {
		t.Fatalf("expected error for duplicate seats")
	}

	short := func(int) []int { return []int{0} }
	if _, err := AssignSeats([]string{"a", "b"}, short); err == nil {
		t.Fatalf("expected error for short permutation")
	}
}
