package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Wrap(zap.New(core))

	ctx := l.GetContext(context.Background())
	FromContext(ctx).Info("stored", String("key", "value"))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "stored", entries[0].Message)
		assert.Equal(t, "value", entries[0].ContextMap()["key"])
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, New(), FromContext(context.Background()))
}

func TestWith_AddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Wrap(zap.New(core)).With(Bool("cached", true)).Debug("hit")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, true, entries[0].ContextMap()["cached"])
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Wrap(nil).Error("dropped") })
}
