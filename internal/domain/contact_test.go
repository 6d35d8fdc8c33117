package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmissionStatus(t *testing.T) {
	for _, status := range AllSubmissionStatuses() {
		parsed, err := ParseSubmissionStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	for _, raw := range []string{"", "pending", "NEW", "done"} {
		_, err := ParseSubmissionStatus(raw)
		assert.Error(t, err, "%q should not parse", raw)
	}
}

func TestAllSubmissionStatuses_Order(t *testing.T) {
	statuses := AllSubmissionStatuses()
	require.Len(t, statuses, 4)
	assert.Equal(t, StatusNew, statuses[0])
	assert.Equal(t, StatusClosed, statuses[len(statuses)-1])
}

func TestUserProfile_IsAdmin(t *testing.T) {
	var nilProfile *UserProfile
	assert.False(t, nilProfile.IsAdmin())

	assert.False(t, (&UserProfile{Role: RoleUser}).IsAdmin())
	assert.False(t, (&UserProfile{}).IsAdmin())
	assert.True(t, (&UserProfile{Role: RoleAdmin}).IsAdmin())
}
