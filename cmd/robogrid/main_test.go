package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"robogrid/internal/cli"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunReachesTarget(t *testing.T) {
	dir := t.TempDir()
	board := writeFile(t, dir, "board.txt", "SIZE 5\nTARGET 4 3\nOBSTACLE 0 2\n")
	script := writeFile(t, dir, "script.txt", "VAR N 3\nSE OBSTACULO DIREITA MOVER BAIXO 1\nMOVER BAIXO-DIREITA N\nMOVER BAIXO 1\nMOVER CIMA 1\n")

	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"-board", board, "-tick", "1ms", script})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Chegou ao destino em (4, 3)")
	require.Contains(t, out.String(), "Robot final position: (4, 3)")
}

func TestRunDirectWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "robogrid.hcl", `
board {
  size      = 6
  obstacles = 0
  seed      = 1
  target    = [5, 5]
}
`)
	script := writeFile(t, dir, "script.txt", "MOVER BAIXO 2\nMOVER DIREITA 1\n")

	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"-config", cfg, "-direct", script})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Robot final position: (2, 1)")
	require.Contains(t, logs.String(), "Script carregado com sucesso.")
}

func TestRunHelp(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &logs, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "robogrid.hcl", "scheduler {\n tick = \"never\"\n}\n")
	script := writeFile(t, dir, "script.txt", "AJUDA\n")

	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"-config", cfg, script})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRunMissingScript(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
}

func TestRunDirectIgnoresStartTimer(t *testing.T) {
	dir := t.TempDir()
	board := writeFile(t, dir, "board.txt", "SIZE 6\nTARGET 5 5\n")
	script := writeFile(t, dir, "script.txt", "MOVER BAIXO 2\nINICIAR TIMER\n")

	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"-board", board, "-direct", "-tick", "1ms", script})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Robot final position: (2, 0)")
	require.NotContains(t, logs.String(), "Jogo iniciado!")
}

func TestRunDirectEndsAtTarget(t *testing.T) {
	dir := t.TempDir()
	board := writeFile(t, dir, "board.txt", "SIZE 5\nTARGET 2 2\n")
	script := writeFile(t, dir, "script.txt", "MOVER BAIXO-DIREITA 2\nMOVER CIMA 2\n")

	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"-board", board, "-direct", script})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Chegou ao destino em (2, 2)")
	require.Contains(t, out.String(), "Robot final position: (2, 2)")
}
