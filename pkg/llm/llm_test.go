package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RVBB-LUV/llm-cooperation/pkg/config"
	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/resilience"
)

type stubClient struct {
	replies   []string
	errs      []error
	calls     int
	transient func(error) bool
}

func (s *stubClient) Complete(ctx context.Context, messages []Message) (string, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return "", errors.New("stub exhausted")
}

func (s *stubClient) IsTransientError(err error) bool {
	if s.transient != nil {
		return s.transient(err)
	}
	return false
}

func fastRetry(n int) resilience.RetryConfig {
	return resilience.RetryConfig{MaxRetries: n, Base: time.Millisecond}
}

func TestResilientClientRetriesTransientFailures(t *testing.T) {
	inner := &stubClient{
		replies: []string{"", "", "hello"},
		errs:    []error{errors.New("connection reset"), nil, nil},
		transient: func(err error) bool {
			return strings.Contains(err.Error(), "connection reset")
		},
	}
	// Second attempt returns empty content, which is also retried.
	inner.replies[1] = "  "

	rc := NewResilientClient(inner, time.Second, fastRetry(3))
	out, err := rc.Complete(context.Background(), []Message{NewUserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, 3, inner.calls)
}

func TestResilientClientStopsOnPermanentFailure(t *testing.T) {
	inner := &stubClient{
		errs: []error{errors.New("401 unauthorized"), errors.New("401 unauthorized")},
	}

	rc := NewResilientClient(inner, time.Second, fastRetry(3))
	_, err := rc.Complete(context.Background(), []Message{NewUserMessage("hi")})

	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)

	// A permanent failure is not an exhausted retry budget.
	var re *errs.RetryExhaustedError
	assert.False(t, errors.As(err, &re))
	assert.Contains(t, err.Error(), "401")
}

func TestResilientClientEmptyContentExhaustsRetries(t *testing.T) {
	inner := &stubClient{replies: []string{"", "", ""}}

	rc := NewResilientClient(inner, time.Second, fastRetry(2))
	_, err := rc.Complete(context.Background(), []Message{NewUserMessage("hi")})

	require.Error(t, err)
	assert.Equal(t, 3, inner.calls)

	var ae *errs.APIError
	require.ErrorAs(t, err, &ae)
}

func TestNewFromConfig(t *testing.T) {
	sys := config.DefaultSystemConfig()

	t.Run("unknown provider type", func(t *testing.T) {
		_, err := NewFromConfig([]byte(`{"type":"carrier-pigeon","model":"x"}`), sys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider type")
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := NewFromConfig([]byte(`{"model":"x"}`), sys)
		require.Error(t, err)
	})

	t.Run("empty entry", func(t *testing.T) {
		_, err := NewFromConfig(nil, sys)
		require.Error(t, err)
	})

	t.Run("registry dispatch with system defaults", func(t *testing.T) {
		var captured ProviderConfig
		RegisterProvider("test-provider", providerFunc(func(cfg ProviderConfig, system *config.SystemConfig) (Client, error) {
			captured = cfg
			return &stubClient{}, nil
		}))

		client, err := NewFromConfig([]byte(`{"type":"test-provider","model":"m"}`), sys)
		require.NoError(t, err)
		require.NotNil(t, client)

		assert.Equal(t, sys.MaxTokens, captured.MaxTokens)
		require.NotNil(t, captured.Temperature)
		assert.Equal(t, sys.Temperature, *captured.Temperature)
	})
}

// providerFunc adapts a plain function to the ProviderFactory interface.
type providerFunc func(cfg ProviderConfig, system *config.SystemConfig) (Client, error)

func (f providerFunc) Create(cfg ProviderConfig, system *config.SystemConfig) (Client, error) {
	return f(cfg, system)
}

func TestMessageHelpers(t *testing.T) {
	msg := NewUserMessage("hello")
	assert.Equal(t, RoleUser, msg.Role)
	assert.Equal(t, "hello", msg.Text())
	assert.False(t, msg.HasImages())

	multi := Message{
		Role: RoleUser,
		Content: []ContentBlock{
			NewTextBlock("look at this"),
			NewImageBlockFromURL("https://x.test/a.png", "image/png"),
		},
	}
	assert.True(t, multi.HasImages())
	assert.Equal(t, "look at this", multi.Text())
}
