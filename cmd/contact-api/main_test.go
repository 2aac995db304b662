package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "check-config", "send", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestSendFlags(t *testing.T) {
	for _, flag := range []string{"url", "name", "email", "message"} {
		assert.NotNil(t, sendCmd.Flags().Lookup(flag), "send is missing --%s", flag)
	}
	url, err := sendCmd.Flags().GetString("url")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", url)
}

func TestConfiguredLabel(t *testing.T) {
	assert.Equal(t, "configured", configuredLabel(true))
	assert.Equal(t, "NOT configured", configuredLabel(false))
}
