package chain

import (
	"errors"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	c := Start(outcome.Success[int, error](5))

	out := c.Result()
	if v, ok := out.Value(); !ok || v != 5 {
		t.Fatalf("expected success with 5, got: ok=%v, val=%v", ok, v)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue[int, error](7).Result()
	if v, ok := out.Value(); !ok || v != 7 {
		t.Fatalf("expected success with 7, got: ok=%v, val=%v", ok, v)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	c := Start(outcome.Failure[int, error](err))

	called := false
	c = c.Then(func(v int) outcome.Outcome[int, error] {
		called = true
		return outcome.Success[int, error](v + 1)
	})

	out := c.Result()
	if out.IsSuccess() || out.UnwrapErr().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v", out.IsSuccess())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	c := FromValue[int, error](3).
		Then(func(v int) outcome.Outcome[int, error] { return outcome.Success[int, error](v * 2) })

	if v := c.Result().Unwrap(); v != 6 {
		t.Fatalf("expected success with 6, got %v", v)
	}
}

func TestTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	c := Try(FromValue[int, error](10), func(v int) (int, error) {
		return 0, errors.New("try-error")
	})

	out := c.Result()
	if out.IsSuccess() || out.UnwrapErr().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v", out.IsSuccess())
	}
}

func TestTry_Success(t *testing.T) {
	t.Parallel()
	c := Try(FromValue[int, error](4), func(v int) (int, error) { return v * v, nil })

	if v := c.Result().Unwrap(); v != 16 {
		t.Fatalf("expected success with 16, got %v", v)
	}
}

func TestTry_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("bad")
	called := false
	c := Try(Start(outcome.Failure[int, error](err)), func(v int) (int, error) {
		called = true
		return v + 1, nil
	})

	out := c.Result()
	if out.IsSuccess() || called {
		t.Fatalf("expected untouched failure: success=%v, called=%v", out.IsSuccess(), called)
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	c := FromValue[int, error](5).Map(func(v int) int { return v + 100 })

	if v := c.Result().Unwrap(); v != 105 {
		t.Fatalf("expected success with 105, got %v", v)
	}
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("oops")
	c := Start(outcome.Failure[int, error](err)).
		Map(func(v int) int { return v + 100 })

	out := c.Result()
	if out.IsSuccess() || out.UnwrapErr().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got: success=%v", out.IsSuccess())
	}
}

func TestMapErr_RewritesFailure(t *testing.T) {
	t.Parallel()
	c := Start(outcome.Failure[int, string]("io")).
		MapErr(func(e string) string { return "wrapped: " + e })

	if e := c.Result().UnwrapErr(); e != "wrapped: io" {
		t.Fatalf("expected 'wrapped: io', got %q", e)
	}
}

func TestWhile_LoopsUnderPredicate(t *testing.T) {
	t.Parallel()
	c := FromValue[int, error](1).
		While(func(v int) outcome.Outcome[int, error] { return outcome.Success[int, error](v * 2) },
			func(v int) bool { return v < 10 })

	if v := c.Result().Unwrap(); v != 16 {
		t.Fatalf("expected 16, got %v", v)
	}
}

func TestRepeatUntil_StopsOnPredicate(t *testing.T) {
	t.Parallel()
	c := FromValue[int, error](0).
		RepeatUntil(func(v int) outcome.Outcome[int, error] { return outcome.Success[int, error](v + 3) },
			func(v int) bool { return v >= 9 })

	if v := c.Result().Unwrap(); v != 9 {
		t.Fatalf("expected 9, got %v", v)
	}
}

func TestRepeatUntil_StopsOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("step failed")
	steps := 0
	c := FromValue[int, error](0).
		RepeatUntil(func(v int) outcome.Outcome[int, error] {
			steps++
			if steps == 2 {
				return outcome.Failure[int, error](err)
			}
			return outcome.Success[int, error](v + 1)
		},
			func(v int) bool { return false })

	out := c.Result()
	if out.IsSuccess() || steps != 2 {
		t.Fatalf("expected failure after 2 steps, got: success=%v, steps=%d", out.IsSuccess(), steps)
	}
}

func TestOr_PicksFirstSuccess(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	primary := Start(outcome.Failure[int, error](err))
	fallback := FromValue[int, error](42)

	if v := primary.Or(fallback).Result().Unwrap(); v != 42 {
		t.Fatalf("expected fallback 42, got %v", v)
	}
	if v := FromValue[int, error](1).Or(fallback).Result().Unwrap(); v != 1 {
		t.Fatalf("expected own value 1, got %v", v)
	}
}

func TestAnd_RequiresBoth(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	failed := Start(outcome.Failure[int, error](err))
	second := FromValue[int, error](2)

	out := failed.And(second).Result()
	if out.IsSuccess() {
		t.Fatalf("failure must dominate and()")
	}
	if v := FromValue[int, error](1).And(second).Result().Unwrap(); v != 2 {
		t.Fatalf("expected required chain's value 2, got %v", v)
	}
}

func TestEnsure_SideEffectsDoNotChangeResult(t *testing.T) {
	t.Parallel()
	var seen int
	c := FromValue[int, error](8).Ensure(func(v int) { seen = v }, nil)

	if seen != 8 {
		t.Fatalf("expected side effect to observe 8, got %v", seen)
	}
	if v := c.Result().Unwrap(); v != 8 {
		t.Fatalf("ensure must not change the result, got %v", v)
	}

	var seenErr error
	err := errors.New("boom")
	Start(outcome.Failure[int, error](err)).Ensure(nil, func(e error) { seenErr = e })
	if seenErr != err {
		t.Fatalf("expected failure handler to observe the error, got %v", seenErr)
	}
}

func TestFinally_CollapsesToValue(t *testing.T) {
	t.Parallel()
	v := FromValue[int, error](3).
		Map(func(v int) int { return v * 3 }).
		Finally(func(v int) int { return v }, func(err error) int { return -1 })
	if v != 9 {
		t.Fatalf("expected 9, got %v", v)
	}

	v = Start(outcome.Failure[int, error](errors.New("boom"))).
		Finally(func(v int) int { return v }, func(err error) int { return -1 })
	if v != -1 {
		t.Fatalf("expected -1, got %v", v)
	}
}
