package gateway

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
)

type fakeChannel struct {
	id      string
	started bool
	stopped bool
	mu      sync.Mutex
	sent    []string
}

func (f *fakeChannel) ID() string                         { return f.id }
func (f *fakeChannel) Start(ctx api.ChannelContext) error { f.started = true; return nil }
func (f *fakeChannel) Stop() error                        { f.stopped = true; return nil }

func (f *fakeChannel) Send(session api.SessionContext, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, message)
	return nil
}

func TestManagerSendReplyRoutesToChannel(t *testing.T) {
	gw := NewManager()
	ch := &fakeChannel{id: "console"}
	gw.Register(ch)

	session := api.SessionContext{ChannelID: "console", UserID: "u"}
	require.NoError(t, gw.SendReply(session, "hello"))
	assert.Equal(t, []string{"hello"}, ch.sent)

	err := gw.SendReply(api.SessionContext{ChannelID: "missing"}, "lost")
	assert.Error(t, err)
}

func TestManagerDispatchesMessagesConcurrently(t *testing.T) {
	gw := NewManager()
	gw.Register(&fakeChannel{id: "console"})

	var wg sync.WaitGroup
	wg.Add(2)
	var mu sync.Mutex
	var got []string

	gw.SetMessageHandler(func(msg *api.UnifiedMessage) {
		defer wg.Done()
		mu.Lock()
		got = append(got, msg.Content)
		mu.Unlock()
	})

	gw.OnMessage("console", &api.UnifiedMessage{Content: "one"})
	gw.OnMessage("console", &api.UnifiedMessage{Content: "two"})

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler dispatch timed out")
	}

	assert.ElementsMatch(t, []string{"one", "two"}, got)
}

func TestManagerIgnoresMessagesWithoutHandler(t *testing.T) {
	gw := NewManager()
	// Must not panic.
	gw.OnMessage("console", &api.UnifiedMessage{Content: "dropped"})
}

func TestBuilderAssemblesManager(t *testing.T) {
	ch := &fakeChannel{id: "console"}

	var handled []string
	gw, err := NewBuilder().
		WithChannel(ch).
		WithHandlerFactory(func(g *Manager) api.MessageHandler {
			require.NotNil(t, g)
			return func(msg *api.UnifiedMessage) {
				handled = append(handled, msg.Content)
			}
		}).
		Build()
	require.NoError(t, err)

	assert.True(t, ch.started)

	registered, ok := gw.GetChannel("console")
	require.True(t, ok)
	assert.Equal(t, ch, registered)

	gw.StopAll()
	assert.True(t, ch.stopped)
}
