// internal/models/member.go
package models

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/clubkit/clubkit/internal/balance"
)

// Gender is a member's registered gender marker. The balancer only ever
// distinguishes "M" from everything else; the full set exists for display.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "X"
)

const (
	maxMemberNameLength = 120
	minSkillLevel       = 1
	maxSkillLevel       = 10

	// defaultPhoneRegion resolves national numbers during normalization.
	defaultPhoneRegion = "CA"
)

// Member is one club roster entry.
type Member struct {
	ID        string `json:"id"`
	ClubID    string `json:"clubId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    Gender `json:"gender"`
	Skill1    int    `json:"skill1"`
	Skill2    int    `json:"skill2"`
	EloRating int    `json:"eloRating"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
}

// Validate checks invariants before a member row is written. A zero skill
// or rating means "not set" and is allowed; the balancer substitutes its
// defaults.
func (m Member) Validate() error {
	name := strings.TrimSpace(m.FullName)
	if name == "" {
		return fmt.Errorf("full name is required")
	}
	if len(name) > maxMemberNameLength {
		return fmt.Errorf("full name must be %d characters or fewer", maxMemberNameLength)
	}

	switch m.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return fmt.Errorf("gender must be one of M, F, X")
	}

	if err := validateSkill("skill1", m.Skill1); err != nil {
		return err
	}
	if err := validateSkill("skill2", m.Skill2); err != nil {
		return err
	}

	if m.EloRating < 0 {
		return fmt.Errorf("elo rating must not be negative")
	}
	if m.Wins < 0 || m.Losses < 0 {
		return fmt.Errorf("win and loss counts must not be negative")
	}

	if m.Phone != "" {
		if _, err := NormalizePhone(m.Phone); err != nil {
			return fmt.Errorf("invalid phone number: %w", err)
		}
	}
	return nil
}

func validateSkill(field string, value int) error {
	if value == 0 {
		return nil
	}
	if value < minSkillLevel || value > maxSkillLevel {
		return fmt.Errorf("%s must be between %d and %d", field, minSkillLevel, maxSkillLevel)
	}
	return nil
}

// NormalizePhone parses a phone number and returns it in E.164 form.
func NormalizePhone(raw string) (string, error) {
	parsed, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("parse phone: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("phone number is not valid")
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// BalancePlayer converts a member into the flat record the team balancer
// consumes.
func (m Member) BalancePlayer() balance.Player {
	return balance.Player{
		ID:        m.ID,
		Name:      m.FullName,
		Gender:    string(m.Gender),
		Skill1:    m.Skill1,
		Skill2:    m.Skill2,
		EloRating: m.EloRating,
		Wins:      m.Wins,
		Losses:    m.Losses,
	}
}
