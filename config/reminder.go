package config

import "github.com/spf13/viper"

// Reminder configures the due-date reminder sweep.
type Reminder struct {
	// WindowHours is how far ahead a due date may be to trigger a
	// notification; it doubles as the dedup window.
	WindowHours int
	// CronToken guards the HTTP sweep endpoint. An empty token
	// disables the endpoint entirely.
	CronToken string
}

func getReminderConfig(v *viper.Viper) *Reminder {
	return &Reminder{
		WindowHours: getIntOrDefault(v, "reminder.window_hours", 24),
		CronToken:   v.GetString("reminder.cron_token"),
	}
}
