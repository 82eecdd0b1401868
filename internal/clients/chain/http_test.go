package chain_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetherium/battle-api/internal/clients/chain"
	"github.com/aetherium/battle-api/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (chain.Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := chain.NewHTTPClient(&chain.HTTPConfig{BaseURL: srv.URL})
	require.NoError(t, err)
	return client, srv
}

func TestCanBattle(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/players/0xabc123/can-battle", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]bool{"canBattle": true})
	}))

	ok, err := client.CanBattle(context.Background(), "0xabc123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanBattleCooldownActive(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"canBattle": false})
	}))

	ok, err := client.CanBattle(context.Background(), "0xabc123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanBattleGatewayError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.CanBattle(context.Background(), "0xabc123")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestCanBattleEmptyWallet(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.CanBattle(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCompleteBattle(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/battles/complete", r.URL.Path)

		var body chain.CompleteBattleInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0xabc123", body.WalletAddress)
		assert.Equal(t, "battle-1", body.BattleID)
		assert.True(t, body.Victory)

		_ = json.NewEncoder(w).Encode(chain.CompleteBattleOutput{TransactionRef: "tx-1"})
	}))

	out, err := client.CompleteBattle(context.Background(), &chain.CompleteBattleInput{
		WalletAddress: "0xabc123",
		BattleID:      "battle-1",
		Victory:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", out.TransactionRef)
}

func TestCompleteBattleGatewayError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.CompleteBattle(context.Background(), &chain.CompleteBattleInput{
		WalletAddress: "0xabc123",
		BattleID:      "battle-1",
	})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestHTTPConfigValidation(t *testing.T) {
	_, err := chain.NewHTTPClient(&chain.HTTPConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
