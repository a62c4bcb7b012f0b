package conf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelboard/backend/conf"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contest.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadContestConfig(t *testing.T) {
	path := writeConfig(t, `
[contest]
title = "Titanic Survival Challenge"
deadline = 2025-09-01T00:00:00Z
daily_limit = 5
max_selectable = 2
order_by = "asc"
answer_key_path = "data/solution.csv"
id_column = "PassengerId"
value_column = "Survived"
public_flag_column = "PublicLeaderboardInd"
discussion_url = "https://example.com/forum"
`)

	cfg, err := conf.ReadContestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Titanic Survival Challenge", cfg.Title)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), cfg.Deadline)
	assert.Equal(t, 5, cfg.DailyLimit)
	assert.Equal(t, 2, cfg.MaxSelectable)
	assert.True(t, cfg.Ascending())
	assert.Equal(t, "PassengerId", cfg.IDColumn)

	// defaults fill what the file leaves out
	assert.Equal(t, []string{"csv", "txt", "gz"}, cfg.AllowedExtensions)
	assert.Contains(t, cfg.Pages, "description")
	assert.False(t, cfg.ShowPrivate)
}

func TestReadContestConfigRejectsBadOrder(t *testing.T) {
	path := writeConfig(t, `
[contest]
title = "Bad"
deadline = 2025-09-01T00:00:00Z
order_by = "sideways"
answer_key_path = "data/solution.csv"
`)

	_, err := conf.ReadContestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid contest config")
}

func TestReadContestConfigRequiresDeadline(t *testing.T) {
	path := writeConfig(t, `
[contest]
title = "No Deadline"
answer_key_path = "data/solution.csv"
`)

	_, err := conf.ReadContestConfig(path)
	require.Error(t, err)
}

func TestDescendingOrder(t *testing.T) {
	path := writeConfig(t, `
[contest]
title = "AUC Contest"
deadline = 2025-09-01T00:00:00Z
order_by = "desc"
answer_key_path = "data/solution.csv"
`)

	cfg, err := conf.ReadContestConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Ascending())
}
