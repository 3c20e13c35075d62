package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsArtifactUnavailable(t *testing.T) {
	err := NewArtifactUnavailable("idf model")

	assert.True(t, IsArtifactUnavailable(err))
	assert.True(t, IsArtifactUnavailable(fmt.Errorf("word signature: %w", err)))

	assert.False(t, IsArtifactUnavailable(NewArtifactLoadFailed("idf model", "/tmp/x", stderrors.New("no such file"))))
	assert.False(t, IsArtifactUnavailable(nil))
}

func TestIsUserNotFound(t *testing.T) {
	err := NewGraphUserNotFound("u-ghost")

	assert.True(t, IsUserNotFound(err))
	assert.True(t, IsUserNotFound(fmt.Errorf("community lookup: %w", err)))
	assert.False(t, IsUserNotFound(NewGraphQueryFailed("MATCH (n)", stderrors.New("boom"))))
}

func TestIsErrorType(t *testing.T) {
	assert.True(t, IsErrorType(NewGraphConnectionFailed("bolt://x", nil), ErrorTypeGraph))
	assert.True(t, IsErrorType(NewArtifactUnavailable("rank distributions"), ErrorTypeArtifact))
	assert.True(t, IsErrorType(NewConfigMissingRequired("NEO4J_URI"), ErrorTypeConfig))
	assert.False(t, IsErrorType(stderrors.New("plain"), ErrorTypeGraph))
}

func TestBaseError_MessageIncludesCause(t *testing.T) {
	err := NewGraphQueryFailed("MATCH (u:User)", stderrors.New("timeout"))
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), "[graph]")
}
