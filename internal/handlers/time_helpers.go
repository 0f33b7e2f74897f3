package handlers

import (
	"time"

	"github.com/beautylink/salon-scheduler/internal/models"
	"github.com/beautylink/salon-scheduler/internal/timezone"
)

// resolve o timezone oficial do salão
func locationFromPro(pro *models.Professional) *time.Location {
	return timezone.Location(pro.Timezone)
}

func nowForPro(pro *models.Professional) time.Time {
	return time.Now().In(locationFromPro(pro))
}

func parseDateForPro(pro *models.Professional, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromPro(pro),
	)
}
