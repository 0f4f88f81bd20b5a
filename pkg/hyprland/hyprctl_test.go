package hyprland

import (
	"codeberg.org/miketth/xkbtoggle/pkg/toggle"
	"context"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"os"
	"path/filepath"
	"testing"
)

func TestBatchArg(t *testing.T) {
	assert.Equal(t,
		"keyword input:kb_variant latin ; keyword input:kb_layout rs",
		BatchArg(toggle.WithVariant("rs", "latin")))
	assert.Equal(t,
		"keyword input:kb_variant  ; keyword input:kb_layout us",
		BatchArg(toggle.Plain("us")))
}

func TestOkReply(t *testing.T) {
	assert.True(t, okReply.MatchString("ok"))
	assert.True(t, okReply.MatchString("ok\n\nok"))
	assert.True(t, okReply.MatchString("okok"))
	assert.False(t, okReply.MatchString("ok\ninvalid layout"))
	assert.False(t, okReply.MatchString(""))
}

func fakeHyprctl(t *testing.T, reply string, status int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprctl")
	script := fmt.Sprintf("#!/bin/sh\necho %q\nexit %d\n", reply, status)
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func TestHyprctl_Apply(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		status   int
		wantWarn string
	}{
		{name: "accepted", reply: "ok ok"},
		{name: "rejected", reply: "ok invalid layout", wantWarn: "hyprctl rejected layout"},
		{name: "non-zero exit", reply: "boom", status: 1, wantWarn: "hyprctl exited non-zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, logs := observedLogger()
			h := NewHyprctl(fakeHyprctl(t, tt.reply, tt.status), log)

			require.NoError(t, h.Apply(context.Background(), toggle.Plain("us")))

			warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
			if tt.wantWarn == "" {
				assert.Empty(t, warnings)
				return
			}
			require.Len(t, warnings, 1)
			assert.Equal(t, tt.wantWarn, warnings[0].Message)
		})
	}
}

func TestHyprctl_MissingBinary(t *testing.T) {
	log, _ := observedLogger()
	h := NewHyprctl(filepath.Join(t.TempDir(), "hyprctl"), log)

	require.Error(t, h.Apply(context.Background(), toggle.Plain("us")))
}

func TestHyprctl_ResetsVariantForPlainLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hyprctl")
	argsFile := filepath.Join(dir, "args")
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > %q\necho ok ok\n", argsFile)
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))

	log, logs := observedLogger()
	h := NewHyprctl(path, log)

	for _, tt := range []struct {
		layout toggle.Layout
		want   string
	}{
		{toggle.WithVariant("rs", "latin"), "--batch\nkeyword input:kb_variant latin ; keyword input:kb_layout rs\n"},
		{toggle.Plain("rs"), "--batch\nkeyword input:kb_variant  ; keyword input:kb_layout rs\n"},
	} {
		require.NoError(t, h.Apply(context.Background(), tt.layout))

		data, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(data), "layout %s", tt.layout)
	}

	assert.Empty(t, logs.FilterLevelExact(zapcore.WarnLevel).All())
}
