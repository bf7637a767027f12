package workout

import (
	"strconv"
	"strings"

	userdomain "workout-tracker/internal/domain/user"
	domain "workout-tracker/internal/domain/workout"
)

// reportDateTimeLayout — формат даты и времени в текстовом отчёте.
const reportDateTimeLayout = "2006-01-02T15:04:05"

// FormatReport формирует текстовый отчёт по тренировкам пользователя.
//
// Отчёт воспроизводит каждое поле каждой тренировки и каждого плана
// в порядке входного списка. Для пользователя без тренировок отчёт
// состоит из заголовка и строки "No workouts found.".
func FormatReport(user *userdomain.User, workouts []*domain.Workout) string {
	var report strings.Builder
	report.WriteString("Workout Report: ")
	report.WriteString(user.Username)
	report.WriteString("\n\n")

	if len(workouts) == 0 {
		report.WriteString("No workouts found.")
		return report.String()
	}

	report.WriteString("Total Workouts: ")
	report.WriteString(strconv.Itoa(len(workouts)))
	report.WriteString("\n\n")

	for _, w := range workouts {
		report.WriteString("Workout: " + w.Name + "\n")
		report.WriteString("Date & Time: " + w.DateTime.Format(reportDateTimeLayout) + "\n")
		report.WriteString("Status: " + string(w.Status) + "\n")
		report.WriteString("Comment: " + w.Comment + "\n")

		report.WriteString("Exercises: \n")
		for _, p := range w.Plans {
			report.WriteString("\tName: " + p.Exercise.Name + ",")
			report.WriteString("Reps: " + formatOptionalInt(p.Reps) + ",")
			report.WriteString("Sets: " + formatOptionalInt(p.Sets) + ",")
			report.WriteString("Weights: " + formatOptionalInt(p.Weight) + "\n")
		}
		report.WriteString("\n")
	}

	return report.String()
}

// formatOptionalInt печатает опциональное число или "-" для незаданного.
func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
