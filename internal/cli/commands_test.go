package cli

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/wasteland/internal/validator"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSolve_Formats(t *testing.T) {
	path := writeMap(t, ghostMap)

	t.Run("text", func(t *testing.T) {
		opts, out := testOptions(t, path)
		opts.Config.Query = domain.Query{StartSuffix: "A", GoalSuffix: "Z"}

		require.NoError(t, Solve(context.Background(), opts))
		assert.Equal(t, "  11A -> 11Z: 2\n  22A -> 22Z: 3\nsync *A -> *Z: 6\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		opts, out := testOptions(t, path)
		opts.Config.Query = domain.Query{Start: "11A", Goal: "11Z"}
		opts.Config.Format = FormatJSON

		require.NoError(t, Solve(context.Background(), opts))
		var report domain.Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		assert.Equal(t, uint64(2), report.Walk.Steps)
		assert.Equal(t, "input.txt", report.Map)
	})

	t.Run("yaml", func(t *testing.T) {
		opts, out := testOptions(t, path)
		opts.Config.Query = domain.Query{StartSuffix: "A", GoalSuffix: "Z"}
		opts.Config.Format = FormatYAML

		require.NoError(t, Solve(context.Background(), opts))
		var report domain.Report
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
		assert.Equal(t, uint64(6), report.Sync.Steps)
		assert.Len(t, report.Sync.Walks, 2)
	})

	t.Run("markdown", func(t *testing.T) {
		opts, out := testOptions(t, path)
		opts.Config.Query = domain.Query{StartSuffix: "A", GoalSuffix: "Z"}
		opts.Config.Format = FormatMarkdown

		require.NoError(t, Solve(context.Background(), opts))
		assert.Contains(t, out.String(), "| 11A | 11Z | 2 |")
	})

	t.Run("unknown format", func(t *testing.T) {
		opts, _ := testOptions(t, path)
		opts.Config.Format = "xml"
		opts.Config.Query = domain.Query{StartSuffix: "A", GoalSuffix: "Z"}
		assert.ErrorContains(t, Solve(context.Background(), opts), "unknown format")
	})
}

func TestSolve_Errors(t *testing.T) {
	t.Run("nothing to solve", func(t *testing.T) {
		opts, _ := testOptions(t, writeMap(t, sixStepMap))
		opts.Config.Query = domain.Query{Start: "AAA"}
		assert.ErrorContains(t, Solve(context.Background(), opts), "nothing to solve")
	})

	t.Run("missing start node", func(t *testing.T) {
		opts, _ := testOptions(t, writeMap(t, ghostMap))
		var missing *domain.MissingNodeError
		assert.ErrorAs(t, Solve(context.Background(), opts), &missing)
	})

	t.Run("step limit", func(t *testing.T) {
		opts, _ := testOptions(t, writeMap(t, sixStepMap))
		opts.Config.StepLimit = 3
		assert.ErrorIs(t, Solve(context.Background(), opts), domain.ErrNoGoalReachable)
	})
}

func TestSolve_Stdin(t *testing.T) {
	opts, out := testOptions(t, StdinPath)
	opts.Stdin = strings.NewReader(sixStepMap)
	opts.Config.Query = domain.Query{Start: "AAA", Goal: "ZZZ"}

	require.NoError(t, Solve(context.Background(), opts))
	assert.Equal(t, "walk AAA -> ZZZ: 6\n", out.String())
}

func TestGraph(t *testing.T) {
	path := writeMap(t, sixStepMap)

	t.Run("plain", func(t *testing.T) {
		opts, out := testOptions(t, path)
		require.NoError(t, Graph(context.Background(), opts, false))
		assert.Contains(t, out.String(), `AAA(("AAA"))`)
		assert.NotContains(t, out.String(), "classDef")
	})

	t.Run("trace", func(t *testing.T) {
		opts, out := testOptions(t, path)
		require.NoError(t, Graph(context.Background(), opts, true))
		assert.Contains(t, out.String(), "class BBB visited;")
		assert.Contains(t, out.String(), "class ZZZ current;")
	})

	t.Run("trace needs a walk", func(t *testing.T) {
		opts, _ := testOptions(t, path)
		opts.Config.Query = domain.Query{StartSuffix: "A", GoalSuffix: "Z"}
		assert.Error(t, Graph(context.Background(), opts, true))
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		opts, out := testOptions(t, writeMap(t, sixStepMap))
		require.NoError(t, Validate(context.Background(), opts))
		assert.Contains(t, out.String(), "Map is valid")
	})

	t.Run("duplicate and dangling", func(t *testing.T) {
		opts, _ := testOptions(t, writeMap(t, "LR\n\nAAA = (BBB, ZZZ)\nAAA = (ZZZ, ZZZ)\nZZZ = (ZZZ, ZZZ)\n"))
		err := Validate(context.Background(), opts)

		var verr *validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, err.Error(), "AAA: defined more than once")
		assert.Contains(t, err.Error(), "BBB: missing node")
	})
}

func TestServeOn(t *testing.T) {
	opts, _ := testOptions(t, "")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveOn(ctx, opts, ln) }()

	base := "http://" + ln.Addr().String()

	resp, err := http.Post(base+"/solve?start=AAA&goal=ZZZ", "text/plain", strings.NewReader(sixStepMap))
	require.NoError(t, err)
	var report domain.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	resp.Body.Close()
	assert.Equal(t, uint64(6), report.Walk.Steps)

	looping := "L\n\nAAA = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n"
	resp, err = http.Post(base+"/solve?start=AAA&goal=ZZZ", "text/plain", strings.NewReader(looping))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "unset step limit falls back to the service default")

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "wasteland_walks_total")
	assert.Contains(t, string(body), "go_goroutines")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRepl(t *testing.T) {
	opts, out := testOptions(t, writeMap(t, ghostMap))
	opts.Stdin = strings.NewReader("sync A Z\ntrace 11A 11Z\n")

	require.NoError(t, Repl(context.Background(), opts))
	assert.Equal(t, "6 steps\n11A -> 11B -> 11Z\n", out.String())
}

func TestRepl_RejectsStdinMap(t *testing.T) {
	opts, _ := testOptions(t, StdinPath)
	assert.Error(t, Repl(context.Background(), opts))
}

func TestServeMCP_Errors(t *testing.T) {
	t.Run("stdin map", func(t *testing.T) {
		opts, _ := testOptions(t, StdinPath)
		assert.Error(t, ServeMCP(context.Background(), opts, TransportStdio, 0))
	})

	t.Run("unknown transport", func(t *testing.T) {
		opts, _ := testOptions(t, "")
		assert.ErrorContains(t, ServeMCP(context.Background(), opts, "carrier-pigeon", 0), "unknown transport")
	})
}
