package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/gopher-midihub/internal/apperr"
)

type stubTokenSource struct {
	calls    int
	response TokenResponse
	err      error
}

func (s *stubTokenSource) RefreshToken(clientID, clientSecret, refreshToken string) (TokenResponse, error) {
	s.calls++
	return s.response, s.err
}

func TestWithAccessTokenWhenCachedThenDoesNotRefresh(t *testing.T) {
	ts := &stubTokenSource{response: TokenResponse{AccessToken: "fresh"}}
	state := newSharedState()
	state.setAccessToken("access_token")

	result, err := withAccessToken(ts, Config{}, state, func(token string) (string, error) {
		return token, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "access_token", result)
	assert.Equal(t, 0, ts.calls)
}

func TestWithAccessTokenWhenNoneCachedThenRefreshes(t *testing.T) {
	ts := &stubTokenSource{response: TokenResponse{AccessToken: "access_token"}}
	state := newSharedState()

	result, err := withAccessToken(ts, Config{}, state, func(token string) (string, error) {
		return token, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "access_token", result)
	assert.Equal(t, 1, ts.calls)
}

func TestWithAccessTokenRetriesExactlyOnceOnUnauthorized(t *testing.T) {
	ts := &stubTokenSource{response: TokenResponse{AccessToken: "fresh_access_token"}}
	state := newSharedState()
	state.setAccessToken("expired_access_token")

	var seen []string
	result, err := withAccessToken(ts, Config{}, state, func(token string) (string, error) {
		seen = append(seen, token)
		if token == "expired_access_token" {
			return "", apperr.ErrUnauthorized
		}
		return token, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh_access_token", result)
	assert.Equal(t, []string{"expired_access_token", "fresh_access_token"}, seen)
	assert.Equal(t, 1, ts.calls)
}

func TestWithAccessTokenPropagatesNonAuthError(t *testing.T) {
	ts := &stubTokenSource{}
	state := newSharedState()
	state.setAccessToken("fresh_access_token")

	_, err := withAccessToken(ts, Config{}, state, func(token string) (string, error) {
		return "", apperr.ErrOther
	})

	assert.ErrorIs(t, err, apperr.ErrOther)
	assert.Equal(t, 0, ts.calls)
}
