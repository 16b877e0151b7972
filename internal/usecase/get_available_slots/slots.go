package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// GenerateWeek генерирует кандидатные слоты на policy.HorizonDays дней начиная с сегодняшнего.
// Для сегодняшнего дня начало сдвигается, чтобы не предлагать прошедшее время.
// День без слотов возвращается пустым: решать, показывать ли его, должен фильтр.
func GenerateWeek(now time.Time, policy domain.WorkingHours) []domain.Day {
	now = now.In(policy.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, policy.Location)

	days := make([]domain.Day, 0, policy.HorizonDays)
	for i := 0; i < policy.HorizonDays; i++ {
		date := today.AddDate(0, 0, i)

		start := policy.Opening(date)
		if i == 0 {
			start = firstStart(now, policy)
		}

		days = append(days, domain.Day{
			Date:    date,
			DateKey: types.NewDateKey(date),
			Slots:   generateDaySlots(start, policy.Closing(date), now, policy.SlotMinutes),
		})
	}

	return days
}

// firstStart возвращает начало генерации для сегодняшнего дня.
// После часа открытия час сдвигается на следующий, минуты округляются до 0 или 30.
func firstStart(now time.Time, policy domain.WorkingHours) time.Time {
	if now.Hour() < policy.OpenHour {
		return policy.Opening(now)
	}

	hour := policy.OpenHour
	if now.Hour() > policy.OpenHour {
		hour = now.Hour() + 1
	}

	minute := 0
	if now.Minute() > 30 {
		minute = 30
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, policy.Location)
}

// generateDaySlots генерирует слоты [start, closing) с шагом step минут, пропуская прошедшие
func generateDaySlots(start, closing, now time.Time, step int) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for current := start; current.Before(closing); current = current.Add(time.Duration(step) * time.Minute) {
		if current.Before(now) {
			continue
		}

		slot, err := domain.NewSlot(current)
		if err != nil {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// FilterFree оставляет только слоты, которых нет в индексе занятых.
// Сравнение по точной паре (ключ дня, метка времени). Дни без свободных слотов отбрасываются.
func FilterFree(days []domain.Day, booked domain.BookedIndex) []domain.Day {
	free := make([]domain.Day, 0, len(days))

	for _, day := range days {
		slots := make([]domain.Slot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			if booked.IsBooked(day.DateKey, slot.Time) {
				continue
			}
			slots = append(slots, slot)
		}

		if len(slots) == 0 {
			continue
		}

		free = append(free, domain.Day{
			Date:    day.Date,
			DateKey: day.DateKey,
			Slots:   slots,
		})
	}

	return free
}

// FreeWeek возвращает свободные дни врача на горизонт записи относительно now
func FreeWeek(now time.Time, policy domain.WorkingHours, booked domain.BookedIndex) []domain.Day {
	return FilterFree(GenerateWeek(now, policy), booked)
}
