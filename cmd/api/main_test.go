package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/repository/postgres"
	"github.com/jwalitptl/clinic-api/pkg/event"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{{"serve"}, {"migrate", "up"}, {"migrate", "status"}, {"events", "watch"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestPrintStatus(t *testing.T) {
	appliedAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	var buf bytes.Buffer

	printStatus(&buf, []postgres.MigrationStatus{
		{Version: 1, Name: "001_clinic.sql", Applied: true, AppliedAt: &appliedAt},
		{Version: 2, Name: "002_next.sql"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "001_clinic.sql")
	assert.Contains(t, lines[2], "applied")
	assert.Contains(t, lines[2], "2024-03-01 09:30:00")
	assert.Contains(t, lines[3], "pending")
}

type replayBroker struct {
	payloads [][]byte
}

func (b *replayBroker) Publish(context.Context, string, interface{}) error { return nil }

func (b *replayBroker) Subscribe(context.Context, string) (<-chan []byte, error) {
	ch := make(chan []byte, len(b.payloads))
	for _, p := range b.payloads {
		ch <- p
	}
	close(ch)
	return ch, nil
}

func (b *replayBroker) Close() error { return nil }

func TestWatchEvents(t *testing.T) {
	change := event.Change{
		Resource: "patient",
		Action:   event.ActionCreated,
		ID:       "1",
		At:       time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(change)
	require.NoError(t, err)

	broker := &replayBroker{payloads: [][]byte{payload, []byte("garbage")}}
	var out bytes.Buffer
	var skipped int

	err = watchEvents(context.Background(), broker, "clinic.events", &out, func(error) { skipped++ })
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T09:30:00Z patient created 1\n", out.String())
	assert.Equal(t, 1, skipped)
}
