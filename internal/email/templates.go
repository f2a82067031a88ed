package email

import (
	"fmt"
	"strings"
	"time"
)

type Message struct {
	Subject string
	Body    string
}

type SessionReminderDetails struct {
	ClubName    string
	SessionName string
	Date        string
	StartTime   string
	Location    string
}

// FormatSessionDateTime splits a session start into the date and time
// strings the reminder template expects.
func FormatSessionDateTime(start time.Time) (string, string) {
	date := start.Format("Monday, Jan 2, 2006")
	startTime := fmt.Sprintf("%s %s", start.Format("3:04 PM"), start.Format("MST"))
	return date, startTime
}

// BuildSessionReminder renders the upcoming-session reminder message.
func BuildSessionReminder(details SessionReminderDetails) Message {
	clubName := strings.TrimSpace(details.ClubName)
	if clubName == "" {
		clubName = "your club"
	}
	sessionName := strings.TrimSpace(details.SessionName)
	if sessionName == "" {
		sessionName = "Session"
	}
	date := strings.TrimSpace(details.Date)
	if date == "" {
		date = "TBD"
	}
	startTime := strings.TrimSpace(details.StartTime)
	if startTime == "" {
		startTime = "TBD"
	}
	location := strings.TrimSpace(details.Location)
	if location == "" {
		location = "TBD"
	}

	subject := fmt.Sprintf("Upcoming Session Reminder - %s", clubName)

	lines := []string{
		fmt.Sprintf("Reminder: %s is coming up.", sessionName),
		"",
		fmt.Sprintf("Club: %s", clubName),
		fmt.Sprintf("Session: %s", sessionName),
		fmt.Sprintf("Date: %s", date),
		fmt.Sprintf("Time: %s", startTime),
		fmt.Sprintf("Location: %s", location),
		"",
		"Update your attendance if your plans have changed.",
	}

	return Message{
		Subject: subject,
		Body:    strings.Join(lines, "\n"),
	}
}
