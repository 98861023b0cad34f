package maybe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fetchFailure struct {
	Status int
	Body   string
}

func TestOk(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"", "csv", "a,b\n1,2"} {
		r := Ok[string, fetchFailure](v)
		assert.True(t, r.IsOk())
		assert.Equal(t, v, r.Value())
		assert.Zero(t, r.Reason())
	}
}

func TestError(t *testing.T) {
	t.Parallel()
	reason := fetchFailure{Status: 404, Body: "not found"}
	r := Error[string](reason)
	assert.False(t, r.IsOk())
	assert.Equal(t, reason, r.Reason())
	assert.Zero(t, r.Value())
}

func TestResult_Get(t *testing.T) {
	t.Parallel()
	v, reason, ok := Ok[int, error](1).Get()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.NoError(t, reason)

	boom := errors.New("boom")
	v, reason, ok = Error[int](boom).Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.ErrorIs(t, reason, boom)
}

func TestResult_ValueOr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, Ok[int, string](1).ValueOr(2))
	assert.Equal(t, 2, Error[int]("x").ValueOr(2))
}

func TestResult_Match(t *testing.T) {
	t.Parallel()
	var gotValue int
	var gotReason string

	Ok[int, string](3).Match(func(v int) { gotValue = v }, func(r string) { gotReason = r })
	assert.Equal(t, 3, gotValue)
	assert.Empty(t, gotReason)

	Error[int]("bad").Match(func(v int) { gotValue = -1 }, func(r string) { gotReason = r })
	assert.Equal(t, 3, gotValue)
	assert.Equal(t, "bad", gotReason)

	assert.Panics(t, func() { Ok[int, string](1).Match(nil, func(string) {}) })
	assert.Panics(t, func() { Error[int]("x").Match(func(int) {}, nil) })
}

func TestResult_ToMaybe(t *testing.T) {
	t.Parallel()
	assert.Equal(t, FromValue(5), Ok[int, error](5).ToMaybe())

	m := Error[int](errors.New("timeout")).ToMaybe()
	reason, _ := m.Reason()
	assert.Equal(t, "timeout", reason)

	m = Error[int](fetchFailure{Status: 500}).ToMaybe()
	reason, _ = m.Reason()
	assert.Equal(t, "{500 }", reason)

	m = Error[int, error](nil).ToMaybe()
	assert.False(t, m.HasValue())
	reason, _ = m.Reason()
	assert.Empty(t, reason)
}

func TestResult_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Ok(1)", Ok[int, string](1).String())
	assert.Equal(t, "Error(bad)", Error[int]("bad").String())
}
