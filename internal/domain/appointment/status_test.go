package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautylink/salon-scheduler/internal/httperr"
	"github.com/beautylink/salon-scheduler/internal/models"
)

func confirmed() *models.Appointment {
	return &models.Appointment{Status: string(StatusConfirmed)}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
	assert.False(t, StatusConfirmed.Terminal())
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		assert.True(t, s.Terminal(), string(s))
	}
}

func TestComplete(t *testing.T) {
	ap := confirmed()
	now := time.Date(2025, 10, 23, 18, 0, 0, 0, time.UTC)

	require.NoError(t, Complete(ap, now))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestCancel(t *testing.T) {
	ap := confirmed()
	now := time.Now()

	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
}

func TestMarkNoShow(t *testing.T) {
	ap := confirmed()

	require.NoError(t, MarkNoShow(ap))
	assert.Equal(t, string(StatusNoShow), ap.Status)
}

// Estados terminais não transitam de novo: cancelar um concluído,
// concluir um cancelado etc. devolvem invalid_state.
func TestTransitionsOnlyFromConfirmed(t *testing.T) {
	for _, from := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		ap := &models.Appointment{Status: string(from)}

		err := Complete(ap, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), string(from))

		err = Cancel(ap, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), string(from))

		err = MarkNoShow(ap)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), string(from))

		// o status original permanece intacto
		assert.Equal(t, string(from), ap.Status)
	}
}
