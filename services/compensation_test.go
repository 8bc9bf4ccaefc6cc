package services

import (
	"errors"
	"testing"
)

func TestWithCompensationHappyPath(t *testing.T) {
	t.Parallel()

	var applied, committed, undone bool
	err := withCompensation(
		func() error { applied = true; return nil },
		func() error { committed = true; return nil },
		func() error { undone = true; return nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied || !committed || undone {
		t.Fatalf("happy path ran wrong steps: applied=%v committed=%v undone=%v", applied, committed, undone)
	}
}

func TestWithCompensationApplyFailureSkipsRest(t *testing.T) {
	t.Parallel()

	boom := errors.New("apply failed")
	var committed, undone bool
	err := withCompensation(
		func() error { return boom },
		func() error { committed = true; return nil },
		func() error { undone = true; return nil },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("want apply error, got %v", err)
	}
	if committed || undone {
		t.Fatalf("nothing to commit or undo after a failed apply: committed=%v undone=%v", committed, undone)
	}
}

func TestWithCompensationCommitFailureReversesApply(t *testing.T) {
	t.Parallel()

	boom := errors.New("commit failed")
	var undone bool
	err := withCompensation(
		func() error { return nil },
		func() error { return boom },
		func() error { undone = true; return nil },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("commit error must surface, got %v", err)
	}
	if !undone {
		t.Fatal("a failed commit must reverse the applied step")
	}
}

func TestWithCompensationUndoFailureKeepsCommitError(t *testing.T) {
	t.Parallel()

	boom := errors.New("commit failed")
	err := withCompensation(
		func() error { return nil },
		func() error { return boom },
		func() error { return errors.New("undo also failed") },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("the commit error must win over the undo error, got %v", err)
	}
}

// Cross-day moves nest two compensated pairs: row write around
// remove-old-day/add-new-day. When the add on the new day fails, the old
// day's contribution and the row must both end up restored.
func TestWithCompensationNestedCrossDayMove(t *testing.T) {
	t.Parallel()

	oldDay, newDay, row := 400, 0, "old"
	boom := errors.New("new day rejected the delta")

	err := withCompensation(
		func() error { row = "moved"; return nil },
		func() error {
			return withCompensation(
				func() error { oldDay -= 400; return nil },
				func() error { return boom }, // add on the new day fails
				func() error { oldDay += 400; return nil },
			)
		},
		func() error { row = "old"; return nil },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("inner failure must surface, got %v", err)
	}
	if oldDay != 400 || newDay != 0 {
		t.Fatalf("totals must be restored: oldDay=%d newDay=%d", oldDay, newDay)
	}
	if row != "old" {
		t.Fatalf("row must be restored, got %q", row)
	}
}
