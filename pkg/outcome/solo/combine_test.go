package solo

import (
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestCombine_TwoSuccesses(t *testing.T) {
	t.Parallel()

	res := Combine(Succeed[int, string](1), func() outcome.Result[string, string] {
		return Succeed[string, string]("two")
	})

	pair, ok := res.Value()
	if !ok {
		t.Fatalf("expected success, got failure")
	}
	if pair.First != 1 || pair.Second != "two" {
		t.Fatalf("expected pair (1, two), got (%v, %v)", pair.First, pair.Second)
	}
}

func TestCombine_LeftFailureShortCircuits(t *testing.T) {
	t.Parallel()

	forced := 0
	res := Combine(Fail[int, string]("left bad"), func() outcome.Result[string, string] {
		forced++
		return Succeed[string, string]("never")
	})

	if forced != 0 {
		t.Fatalf("right thunk must not be forced after a left failure, forced %d times", forced)
	}
	if err, failed := res.Err(); !failed || err != "left bad" {
		t.Fatalf("expected left failure, got: failed=%v, err=%v", failed, err)
	}
}

func TestCombine_RightFailure(t *testing.T) {
	t.Parallel()

	forced := 0
	res := Combine(Succeed[int, string](1), func() outcome.Result[string, string] {
		forced++
		return Fail[string, string]("right bad")
	})

	if forced != 1 {
		t.Fatalf("right thunk must be forced exactly once after a left success, forced %d times", forced)
	}
	if err, failed := res.Err(); !failed || err != "right bad" {
		t.Fatalf("expected right failure, got: failed=%v, err=%v", failed, err)
	}
}

func TestCombine_LeftFailureWinsOverRight(t *testing.T) {
	t.Parallel()

	res := Combine(Fail[int, string]("first"), func() outcome.Result[int, string] {
		return Fail[int, string]("second")
	})

	if err, failed := res.Err(); !failed || err != "first" {
		t.Fatalf("expected leftmost failure to win, got: failed=%v, err=%v", failed, err)
	}
}
