package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies the merge order: earlier sources keep
// their values, later sources only fill the gaps.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Bot: Bot{ID: "from-env"}},
		&StructuredConfig{Bot: Bot{ID: "from-flags"}, User: User{ID: "u1"}},
		&StructuredConfig{User: User{ID: "u2", Name: "Alice"}, DirectLine: DirectLine{RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Bot.ID)
	assert.Equal(t, "u1", cfg.User.ID)
	assert.Equal(t, "Alice", cfg.User.Name)
	assert.Equal(t, time.Second, cfg.DirectLine.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("BOT_ID", "env-bot")
	t.Setenv("DIRECT_LINE_KEY", "env-secret")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-bot", b.configs[0].Bot.ID)
	assert.Equal(t, "env-secret", b.configs[0].DirectLine.Secret)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DIRECT_LINE_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-bot-id", "flag-bot"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-bot", b.configs[0].Bot.ID)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.ErrorIs(t, b.err, ErrInvalidFlags)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "bot.json", `{"BotId": "file-bot"}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "file-bot", b.configs[1].Bot.ID)
}

func TestWithFile_UsesLastPath(t *testing.T) {
	dir := t.TempDir()
	first := writeConfigFile(t, dir, "first.json", `{"BotId": "first"}`)
	last := writeConfigFile(t, dir, "last.yaml", "BotId: last\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: last},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last", b.configs[2].Bot.ID)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// ── withDefaultFiles ──────────────────────────────────────────────────────────

func TestWithDefaultFiles_PrivateOverridesSample(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, sampleConfigFile, `{"BotId": "sample-bot", "UserName": "Sample"}`)
	writeConfigFile(t, dir, privateConfigFile, `{"BotId": "private-bot"}`)

	cfg, err := newConfigBuilder().withDefaultFiles(dir, "").build()
	require.NoError(t, err)
	assert.Equal(t, "private-bot", cfg.Bot.ID)
	assert.Equal(t, "Sample", cfg.User.Name)
}

func TestWithDefaultFiles_TestEnvUsesTestConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, privateConfigFile, `{"BotId": "private-bot"}`)
	writeConfigFile(t, dir, testConfigFile, `{"BotId": "test-bot"}`)

	cfg, err := newConfigBuilder().withDefaultFiles(dir, "test").build()
	require.NoError(t, err)
	assert.Equal(t, "test-bot", cfg.Bot.ID)
}

func TestWithDefaultFiles_MissingFilesAreSkipped(t *testing.T) {
	b := newConfigBuilder().withDefaultFiles(t.TempDir(), "")

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDefaultFiles_SkippedWhenExplicitFileGiven(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, sampleConfigFile, `{"BotId": "sample-bot"}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(dir, "other.json")})
	b.withDefaultFiles(dir, "")

	assert.Len(t, b.configs, 1)
}

func TestWithDefaultFiles_SetsErrorOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, sampleConfigFile), []byte("{"), 0o600))

	b := newConfigBuilder().withDefaultFiles(dir, "")
	assert.Error(t, b.err)
}

// TestBuilder_EnvBeatsFile runs the full chain the way GetStructuredConfig does.
func TestBuilder_EnvBeatsFile(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("BOT_ID", "env-bot")

	dir := t.TempDir()
	writeConfigFile(t, dir, sampleConfigFile, `{"BotId": "sample-bot", "UserId": "u1"}`)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(nil).
		withFile().
		withDefaultFiles(dir, "").
		build()
	require.NoError(t, err)
	assert.Equal(t, "env-bot", cfg.Bot.ID)
	assert.Equal(t, "u1", cfg.User.ID)
}
