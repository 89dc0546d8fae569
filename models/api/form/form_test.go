package formapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateClosingTime(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run(`дата в прошлом не проходит`, func(t *testing.T) {
		require.Error(t, ValidateClosingTime(now.Add(-time.Hour), now))
	})

	t.Run(`текущий момент не проходит, требуется строго будущее`, func(t *testing.T) {
		require.Error(t, ValidateClosingTime(now, now))
	})

	t.Run(`дата в будущем проходит`, func(t *testing.T) {
		require.NoError(t, ValidateClosingTime(now.Add(time.Hour), now))
	})

	t.Run(`ровно год вперед проходит`, func(t *testing.T) {
		require.NoError(t, ValidateClosingTime(now.AddDate(1, 0, 0), now))
	})

	t.Run(`дальше года не проходит`, func(t *testing.T) {
		require.Error(t, ValidateClosingTime(now.AddDate(1, 0, 0).Add(time.Second), now))
	})
}
