package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartEmbeddedNATS(t *testing.T) {
	ns, nc := StartEmbeddedNATS(t)
	require.True(t, ns.ReadyForConnections(time.Second))
	require.True(t, nc.IsConnected())

	sub, err := nc.SubscribeSync("smoke")
	require.NoError(t, err)
	require.NoError(t, nc.Publish("smoke", []byte("ping")))

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, "ping", string(msg.Data))
}
