// internal/models/club.go
package models

import (
	"fmt"
	"strings"
)

const maxClubNameLength = 100

// Club is one managed club. The two skill attribute labels come from the
// sport preset but can be renamed per club; the balancer only ever sees the
// numeric values.
type Club struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Sport         string `json:"sport"`
	Skill1Name    string `json:"skill1Name"`
	Skill2Name    string `json:"skill2Name"`
	UseEloRanking bool   `json:"useEloRanking"`
}

// SportConfig names the two manual skill attributes used by a sport.
type SportConfig struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Skill1Name string `json:"skill1Name"`
	Skill2Name string `json:"skill2Name"`
}

var sports = []SportConfig{
	{ID: "ultimate_frisbee", Name: "Ultimate Frisbee", Skill1Name: "Speed", Skill2Name: "Throwing"},
	{ID: "football", Name: "Football", Skill1Name: "Technique", Skill2Name: "Endurance"},
	{ID: "basketball", Name: "Basketball", Skill1Name: "Shooting", Skill2Name: "Defense"},
	{ID: "volleyball", Name: "Volleyball", Skill1Name: "Attack", Skill2Name: "Reception"},
	{ID: "other", Name: "Other", Skill1Name: "Skill 1", Skill2Name: "Skill 2"},
}

// Sports lists the supported sport presets in display order.
func Sports() []SportConfig {
	out := make([]SportConfig, len(sports))
	copy(out, sports)
	return out
}

// SportByID returns the preset for a sport id, or false if unknown.
func SportByID(id string) (SportConfig, bool) {
	for _, s := range sports {
		if s.ID == id {
			return s, true
		}
	}
	return SportConfig{}, false
}

// Validate checks invariants before a club row is written.
func (c Club) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("club name is required")
	}
	if len(name) > maxClubNameLength {
		return fmt.Errorf("club name must be %d characters or fewer", maxClubNameLength)
	}
	if _, ok := SportByID(c.Sport); !ok {
		return fmt.Errorf("unknown sport: %s", c.Sport)
	}
	return nil
}

// SkillNames returns the display labels for the two skill attributes,
// falling back to the sport preset when the club has not renamed them.
func (c Club) SkillNames() (string, string) {
	s1, s2 := c.Skill1Name, c.Skill2Name
	if preset, ok := SportByID(c.Sport); ok {
		if s1 == "" {
			s1 = preset.Skill1Name
		}
		if s2 == "" {
			s2 = preset.Skill2Name
		}
	}
	return s1, s2
}
