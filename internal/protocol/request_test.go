package protocol

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeRequest_RoundTrip(t *testing.T) {
	line := EncodeRequest("/build/dev", "/build/packages", "_rift_artifacts",
		[]string{"gb.erl", "app.erl"})

	// Splitting on the unit separator must recover the exact ordered
	// argument list.
	tokens := strings.Split(line, UnitSeparator)
	require.Equal(t, []string{
		"--lib",
		"/build/packages",
		"--out",
		filepath.Join("/build/dev", "ebin"),
		filepath.Join("/build/dev", "_rift_artifacts", "app.erl"),
		filepath.Join("/build/dev", "_rift_artifacts", "gb.erl"),
	}, tokens)
}

func TestEncodeRequest_PathsWithSpaces(t *testing.T) {
	line := EncodeRequest("/home/a user/out", "/home/a user/lib", "_rift_artifacts",
		[]string{"my module.erl"})

	tokens := strings.Split(line, UnitSeparator)
	require.Len(t, tokens, 5)
	require.Equal(t, "/home/a user/lib", tokens[1])
	require.Equal(t, filepath.Join("/home/a user/out", "_rift_artifacts", "my module.erl"), tokens[4])
}

func TestEncodeRequest_DeterministicOrder(t *testing.T) {
	a := EncodeRequest("/out", "/lib", "_rift_artifacts", []string{"c.erl", "a.erl", "b.erl"})
	b := EncodeRequest("/out", "/lib", "_rift_artifacts", []string{"b.erl", "c.erl", "a.erl"})

	require.Equal(t, a, b)
}

func TestEncodeRequest_DeduplicatesModules(t *testing.T) {
	line := EncodeRequest("/out", "/lib", "_rift_artifacts",
		[]string{"a.erl", "a.erl", "b.erl"})

	tokens := strings.Split(line, UnitSeparator)
	require.Len(t, tokens, 6)
}

func TestEncodeRequest_NoModules(t *testing.T) {
	line := EncodeRequest("/out", "/lib", "_rift_artifacts", nil)

	tokens := strings.Split(line, UnitSeparator)
	require.Equal(t, []string{
		"--lib",
		"/lib",
		"--out",
		filepath.Join("/out", "ebin"),
	}, tokens)
}

func TestEncodeRequest_NoNewline(t *testing.T) {
	line := EncodeRequest("/out", "/lib", "_rift_artifacts", []string{"a.erl"})

	require.False(t, strings.ContainsAny(line, "\n"))
}
