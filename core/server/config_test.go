package server_test

import (
	"testing"

	"morphood/core/server"

	"github.com/stretchr/testify/assert"
)

func TestRequiresAuth(t *testing.T) {
	assert.False(t, server.Config{}.RequiresAuth())
	assert.True(t, server.Config{ApiKey: "secret"}.RequiresAuth())
}
