package config

import (
	"time"

	"github.com/spf13/viper"
)

// Line configures the LINE Messaging API push client.
type Line struct {
	AccessToken string
	UserID      string
	Endpoint    string
	Timeout     time.Duration
}

// Enabled reports whether push delivery is configured.
func (l *Line) Enabled() bool {
	return l.AccessToken != "" && l.UserID != ""
}

func getLineConfig(v *viper.Viper) *Line {
	return &Line{
		AccessToken: v.GetString("line.access_token"),
		UserID:      v.GetString("line.user_id"),
		Endpoint:    v.GetString("line.endpoint"),
		Timeout:     getDurationOrDefault(v, "line.timeout", 10*time.Second),
	}
}
