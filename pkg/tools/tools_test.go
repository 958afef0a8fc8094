package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
	"github.com/RVBB-LUV/llm-cooperation/pkg/models"
)

// fakeClient echoes a canned reply or fails, standing in for a backend model.
type fakeClient struct {
	reply string
	err   error
}

func (f *fakeClient) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeClient) IsTransientError(err error) bool { return false }

func newManager(math, vision, light llm.Client) *models.Manager {
	return models.NewManager(math, vision, light)
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(NewAddTool())
	m := newManager(&fakeClient{}, &fakeClient{}, &fakeClient{})
	r.Register(NewMathCodeTool(m))
	r.Register(NewLightTool(m))

	all := r.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "add", all[0].Name())
	assert.Equal(t, "math_code", all[1].Name())
	assert.Equal(t, "light_mode", all[2].Name())

	r.Unregister("math_code")
	all = r.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "add", all[0].Name())
	assert.Equal(t, "light_mode", all[1].Name())

	_, ok := r.Get("math_code")
	assert.False(t, ok)
}

func TestAddTool(t *testing.T) {
	tool := NewAddTool()

	t.Run("adds integers", func(t *testing.T) {
		out, err := tool.Execute(context.Background(), map[string]any{"a": 3, "b": 5})
		require.NoError(t, err)
		assert.Equal(t, "8", out)
	})

	t.Run("accepts json float shapes", func(t *testing.T) {
		out, err := tool.Execute(context.Background(), map[string]any{"a": float64(-2), "b": float64(7)})
		require.NoError(t, err)
		assert.Equal(t, "5", out)
	})

	t.Run("rejects non-integers", func(t *testing.T) {
		_, err := tool.Execute(context.Background(), map[string]any{"a": "three", "b": 5})
		var ve *errs.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("rejects fractional floats", func(t *testing.T) {
		_, err := tool.Execute(context.Background(), map[string]any{"a": 1.5, "b": 2})
		require.Error(t, err)
	})
}

func TestMathCodeTool(t *testing.T) {
	t.Run("returns backend reply", func(t *testing.T) {
		m := newManager(&fakeClient{reply: "answer: 42"}, &fakeClient{}, &fakeClient{})
		tool := NewMathCodeTool(m)

		out, err := tool.Execute(context.Background(), map[string]any{"query": "compute"})
		require.NoError(t, err)
		assert.Equal(t, "answer: 42", out)
	})

	t.Run("backend failure becomes result text", func(t *testing.T) {
		m := newManager(&fakeClient{err: errors.New("upstream down")}, &fakeClient{}, &fakeClient{})
		tool := NewMathCodeTool(m)

		out, err := tool.Execute(context.Background(), map[string]any{"query": "compute"})
		require.NoError(t, err)
		assert.Contains(t, out, "Processing failed")
		assert.Contains(t, out, "upstream down")
	})

	t.Run("empty query is a real error", func(t *testing.T) {
		m := newManager(&fakeClient{}, &fakeClient{}, &fakeClient{})
		tool := NewMathCodeTool(m)

		_, err := tool.Execute(context.Background(), map[string]any{})
		var ve *errs.ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestVisionTool(t *testing.T) {
	t.Run("requires an inline image URL", func(t *testing.T) {
		m := newManager(&fakeClient{}, &fakeClient{reply: "a cat"}, &fakeClient{})
		tool := NewVisionTool(m)

		out, err := tool.Execute(context.Background(), map[string]any{"query": "describe, no url here"})
		require.NoError(t, err)
		assert.Contains(t, out, "Processing failed")
	})

	t.Run("url query succeeds", func(t *testing.T) {
		m := newManager(&fakeClient{}, &fakeClient{reply: "a cat"}, &fakeClient{})
		tool := NewVisionTool(m)

		out, err := tool.Execute(context.Background(), map[string]any{"query": "describe https://x.test/a.png"})
		require.NoError(t, err)
		assert.Equal(t, "a cat", out)
	})
}

func TestInputSchemasDeclareQuery(t *testing.T) {
	m := newManager(&fakeClient{}, &fakeClient{}, &fakeClient{})
	for _, tool := range []Tool{NewMathCodeTool(m), NewVisionTool(m), NewLightTool(m)} {
		schema := tool.InputSchema()
		props, ok := schema["properties"].(map[string]any)
		require.True(t, ok, tool.Name())
		assert.Contains(t, props, "query", tool.Name())
	}
}
