package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vertti/clustercheck/pkg/check"
)

func withoutColor(t *testing.T) {
	t.Helper()
	oldGreen, oldYellow, oldRed, oldReset := green, yellow, red, reset
	DisableColor()
	t.Cleanup(func() { green, yellow, red, reset = oldGreen, oldYellow, oldRed, oldReset })
}

func sampleResult() check.Result {
	r := check.New("Checking nodes")
	r.Info("DC node: node1").Warn("Node node2 is UNCLEAN!").Info("Online nodes: [ node1 ]")
	return r
}

func TestTextRender(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	NewText(&buf).Render(sampleResult())

	expected := "Checking nodes [WARN]\n" +
		"  [INFO] DC node: node1\n" +
		"  [WARN] Node node2 is UNCLEAN!\n" +
		"  [INFO] Online nodes: [ node1 ]\n"
	assert.Equal(t, expected, buf.String())
}

func TestTextRenderStatuses(t *testing.T) {
	withoutColor(t)

	tests := []struct {
		name   string
		result check.Result
		want   string
	}{
		{"pass without findings", check.New("Checking hostname resolvable"), "Checking hostname resolvable [PASS]\n"},
		{"fail", *(&check.Result{Title: "Checking cluster service"}).Error("pacemaker service is not running!"),
			"Checking cluster service [FAIL]\n  [ERROR] pacemaker service is not running!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewText(&buf).Render(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTextRenderIsIdempotent(t *testing.T) {
	var first, second bytes.Buffer
	r := sampleResult()

	NewText(&first).Render(r)
	NewText(&second).Render(r)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestTextRenderWithColors(t *testing.T) {
	oldGreen, oldYellow, oldRed, oldReset := green, yellow, red, reset
	defer func() { green, yellow, red, reset = oldGreen, oldYellow, oldRed, oldReset }()
	green, yellow, red, reset = "[G]", "[Y]", "[R]", "[0]"

	var buf bytes.Buffer
	r := check.New("Checking resources")
	r.Error("boom")
	NewText(&buf).Render(r)

	assert.Equal(t, "Checking resources [R][FAIL][0]\n  [R][ERROR][0] boom\n", buf.String())
}

func TestTextGroup(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	g := check.Group{
		Title: "Checking environment",
		Checks: []check.Checker{
			check.Func{Name: "Checking a", Fn: func(_ context.Context, r *check.Result) { r.Info("a1") }},
			check.Func{Name: "Checking b", Fn: func(_ context.Context, r *check.Result) { r.Warn("b1").Info("b2") }},
		},
	}
	g.Run(context.Background(), NewText(&buf))

	expected := "============Checking environment============\n" +
		"Checking a [PASS]\n" +
		"  [INFO] a1\n" +
		"Checking b [WARN]\n" +
		"  [WARN] b1\n" +
		"  [INFO] b2\n" +
		"\n"
	assert.Equal(t, expected, buf.String())
}

func TestJSONRender(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSON(&buf)

	j.BeginGroup("Checking cluster state")
	j.Render(sampleResult())
	j.Render(check.New("Checking resources"))
	j.EndGroup()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	first := lines[0]
	require.True(t, gjson.Valid(first))
	assert.Equal(t, "Checking cluster state", gjson.Get(first, "group").String())
	assert.Equal(t, "Checking nodes", gjson.Get(first, "title").String())
	assert.Equal(t, "WARN", gjson.Get(first, "status").String())
	assert.Equal(t, int64(3), gjson.Get(first, "findings.#").Int())
	assert.Equal(t, "INFO", gjson.Get(first, "findings.0.severity").String())
	assert.Equal(t, "Node node2 is UNCLEAN!", gjson.Get(first, "findings.1.message").String())

	second := lines[1]
	assert.Equal(t, "PASS", gjson.Get(second, "status").String())
	assert.True(t, gjson.Get(second, "findings").IsArray())
	assert.Equal(t, int64(0), gjson.Get(second, "findings.#").Int())
}

// brokenWriter accepts n writes and fails every one after that.
type brokenWriter struct {
	n     int
	calls int
}

var errBrokenPipe = errors.New("broken pipe")

func (w *brokenWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls > w.n {
		return 0, errBrokenPipe
	}
	return len(p), nil
}

func TestTextReportsWriteError(t *testing.T) {
	w := &brokenWriter{n: 1}
	text := NewText(w)

	text.BeginGroup("Checking cluster state")
	require.NoError(t, text.Err())
	text.Render(sampleResult())
	text.EndGroup()

	require.Error(t, text.Err())
	assert.ErrorIs(t, text.Err(), errBrokenPipe)
	assert.Equal(t, 2, w.calls, "writes stop after the first failure")
}

func TestJSONReportsEncodeError(t *testing.T) {
	w := &brokenWriter{}
	j := NewJSON(w)

	j.BeginGroup("Checking environment")
	j.Render(sampleResult())
	j.Render(sampleResult())
	j.EndGroup()

	assert.ErrorIs(t, j.Err(), errBrokenPipe)
	assert.Equal(t, 1, w.calls)
}

func TestRenderersHaveNoErrorOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	text, j := NewText(&buf), NewJSON(&buf)

	text.Render(sampleResult())
	j.Render(sampleResult())

	assert.NoError(t, text.Err())
	assert.NoError(t, j.Err())
}
