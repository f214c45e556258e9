package models

import (
	"time"

	"gorm.io/datatypes"
)

// Prize is a single prize-pool entry (1st, 2nd, ...).
type Prize struct {
	Position int     `json:"position"`
	Prize    float64 `json:"prize"`
	Label    string  `json:"label"`
}

// ScheduleItem is one round's date and time.
type ScheduleItem struct {
	Round    int       `json:"round"`
	Datetime time.Time `json:"datetime"`
}

// Rule describes one round and its rules.
type Rule struct {
	Round      int      `json:"round"`
	RoundName  string   `json:"roundName"`
	RoundDesc  string   `json:"roundDesc,omitempty"`
	RoundRules []string `json:"roundRules"`
}

// Platform is an external platform link for a round (Discord, Unstop, ...).
type Platform struct {
	Round int    `json:"round,omitempty"`
	Name  string `json:"name"`
	Link  string `json:"link"`
}

// ProblemStatement is a selectable challenge inside a hackathon domain.
type ProblemStatement struct {
	PSID        string `json:"psId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Difficulty  string `json:"difficulty"` // Easy, Medium, Hard
}

// HackathonDomain is a named track within a hackathon event.
type HackathonDomain struct {
	DomainID          string             `json:"domainId"`
	Name              string             `json:"name"`
	Description       string             `json:"description,omitempty"`
	ProblemStatements []ProblemStatement `json:"problemStatements"`
}

// Event is a fest event participants register for. Nested sub-documents
// (prizes, schedule, rules, platforms, hackathon domains) live in JSON
// columns; the order workflow only queries scalar fields.
type Event struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string  `gorm:"uniqueIndex" json:"name"`
	Description  string  `json:"description,omitempty"`
	Introduction string  `json:"introduction,omitempty"`
	Fees         float64 `json:"fees"`
	Category     string  `gorm:"index" json:"category"` // Workshop, Competition, Seminar, ...
	Venue        string  `json:"venue,omitempty"`
	Logo         string  `json:"logo,omitempty"`

	// Invariant: TeamSizeMin <= TeamSizeMax, both >= 1
	TeamSizeMin int `gorm:"default:1" json:"teamSizeMin"`
	TeamSizeMax int `gorm:"default:1" json:"teamSizeMax"`

	IsActive bool `gorm:"default:true;index" json:"isActive"`

	Contact   datatypes.JSONSlice[string]       `json:"contact"`
	Prizes    datatypes.JSONSlice[Prize]        `json:"prizes"`
	Schedule  datatypes.JSONSlice[ScheduleItem] `json:"schedule"`
	Rules     datatypes.JSONSlice[Rule]         `json:"rules"`
	Platforms datatypes.JSONSlice[Platform]     `json:"platforms"`

	IsHackathon bool                                 `gorm:"default:false" json:"isHackathon"`
	Domains     datatypes.JSONSlice[HackathonDomain] `json:"domains,omitempty"`
}

// FindDomain resolves a hackathon domain selection by its ID.
func (e *Event) FindDomain(domainID string) *HackathonDomain {
	for i := range e.Domains {
		if e.Domains[i].DomainID == domainID {
			return &e.Domains[i]
		}
	}
	return nil
}

// FindProblemStatement resolves a problem statement inside a domain.
func (d *HackathonDomain) FindProblemStatement(psID string) *ProblemStatement {
	for i := range d.ProblemStatements {
		if d.ProblemStatements[i].PSID == psID {
			return &d.ProblemStatements[i]
		}
	}
	return nil
}
