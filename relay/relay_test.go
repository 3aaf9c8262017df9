package relay

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func testEnvelope() Envelope {
	return Envelope{
		Curve:     "secp256k1",
		SessionID: "session-1",
		PartyID:   7,
		PublicKey: "02a1b2",
		Proof:     "c3d4",
	}
}

func TestRelay_roundTrip(t *testing.T) {
	srv := httptest.NewServer(NewServer(DefaultWait))
	defer srv.Close()

	client := NewClient(srv.URL)
	env := testEnvelope()
	require.NoError(t, client.PutProof(context.Background(), env))

	got, err := client.WaitProof(context.Background(), env.SessionID)
	require.NoError(t, err)
	require.Equal(t, env, got)
}

func TestRelay_longPoll(t *testing.T) {
	srv := httptest.NewServer(NewServer(DefaultWait))
	defer srv.Close()

	client := NewClient(srv.URL)
	env := testEnvelope()

	var got Envelope
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		got, err = client.WaitProof(context.Background(), env.SessionID)
		return err
	})

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, client.PutProof(context.Background(), env))
	require.NoError(t, g.Wait())
	require.Equal(t, env, got)
}

func TestRelay_waitTimeout(t *testing.T) {
	srv := httptest.NewServer(NewServer(50 * time.Millisecond))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.WaitProof(context.Background(), "nobody-home")
	require.Error(t, err)
	require.Contains(t, err.Error(), "408")
}

func TestRelay_duplicateDeposit(t *testing.T) {
	srv := httptest.NewServer(NewServer(DefaultWait))
	defer srv.Close()

	client := NewClient(srv.URL)
	env := testEnvelope()
	require.NoError(t, client.PutProof(context.Background(), env))

	err := client.PutProof(context.Background(), env)
	require.Error(t, err)
	require.Contains(t, err.Error(), "409")
}

func TestRelay_depositBetweenCollectAndDrop(t *testing.T) {
	srv := NewServer(DefaultWait)
	first := testEnvelope()
	require.True(t, srv.deposit(first.SessionID, first))

	// an envelope deposited between a collect and its drop must stay
	// collectible.
	got := <-srv.box(first.SessionID)
	require.Equal(t, first, got)

	second := testEnvelope()
	second.PartyID = 8
	require.True(t, srv.deposit(second.SessionID, second))

	srv.drop(first.SessionID)

	select {
	case env := <-srv.box(second.SessionID):
		require.Equal(t, second, env)
	default:
		t.Fatal("acknowledged envelope is no longer collectible")
	}
}
