package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJSONHandler(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fixTime := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Time(a.Key, fixedTime)
		}
		return a
	}

	for _, prettyPrint := range []bool{true, false} {
		name := "Compact"
		if prettyPrint {
			name = "Pretty"
		}
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			opts := &PrettyJSONHandlerOptions{
				HandlerOptions: slog.HandlerOptions{ReplaceAttr: fixTime},
				PrettyPrint:    prettyPrint,
			}
			logger := slog.New(NewPrettyJSONHandler(buf, opts))

			logger.Info("cloned ticket", "rows", 2)

			got := buf.String()
			assert.True(t, strings.HasSuffix(got, "\n"), "want output to end with a newline")
			assert.Equal(t, prettyPrint, strings.Contains(got, "\n  "), "want indentation only when pretty printing")
			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, "INFO", record["level"])
			assert.Equal(t, "cloned ticket", record["msg"])
			assert.Equal(t, "2024-01-01T00:00:00Z", record["time"])
			assert.EqualValues(t, 2, record["rows"])
		})
	}

	t.Run("NilOptions", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := slog.New(NewPrettyJSONHandler(buf, nil))

		logger.Info("cloned ticket")

		assert.NotZero(t, buf.Len())
	})

	t.Run("WithAttrsAndGroupStayPretty", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := slog.New(NewPrettyJSONHandler(buf, &PrettyJSONHandlerOptions{PrettyPrint: true}))

		logger.With("ticketType", "MYSQL_ADD_SLAVE").WithGroup("ticket").Info("cloned ticket", "id", 1)

		assert.Contains(t, buf.String(), "\n  ")
		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "MYSQL_ADD_SLAVE", record["ticketType"])
		assert.Equal(t, map[string]any{"id": float64(1)}, record["ticket"])
	})

	t.Run("ConsecutiveRecords", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := slog.New(NewPrettyJSONHandler(buf, &PrettyJSONHandlerOptions{PrettyPrint: true}))

		logger.Info("first")
		logger.Info("second")

		decoder := json.NewDecoder(buf)
		var first, second map[string]any
		require.NoError(t, decoder.Decode(&first))
		require.NoError(t, decoder.Decode(&second))
		assert.Equal(t, "first", first["msg"])
		assert.Equal(t, "second", second["msg"])
	})
}
