package model

import (
	"fmt"
	"time"
)

// GatePassStatus represents where a gate pass is in the approval workflow.
type GatePassStatus string

const (
	GatePassStatusPending  GatePassStatus = "Pending"
	GatePassStatusAccepted GatePassStatus = "Accepted"
	GatePassStatusRejected GatePassStatus = "Rejected"
)

// Valid reports whether s is a known status.
func (s GatePassStatus) Valid() bool {
	switch s {
	case GatePassStatusPending, GatePassStatusAccepted, GatePassStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s GatePassStatus) Terminal() bool {
	return s == GatePassStatusAccepted || s == GatePassStatusRejected
}

// ParseDecision accepts only the two terminal statuses a faculty member may choose.
// Matching is exact, as the value is taken literally from the request path.
func ParseDecision(s string) (GatePassStatus, error) {
	st := GatePassStatus(s)
	if !st.Terminal() {
		return "", fmt.Errorf("decision must be %q or %q, got %q", GatePassStatusAccepted, GatePassStatusRejected, s)
	}
	return st, nil
}

// Column limits shared by validation and the schema.
const (
	MaxRollNoLen       = 20
	MaxDateOfBirthLen  = 20
	MaxParentNameLen   = 100
	MaxParentNumberLen = 15
	MaxReasonLen       = 255
)

// GatePass is a student's request to leave campus.
type GatePass struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	StudentID    uint           `json:"student_id" gorm:"not null;index"`
	RollNo       string         `json:"roll_no" gorm:"size:20;not null"`
	DateOfBirth  string         `json:"dob" gorm:"column:dob;size:20;not null"`
	RequestedAt  time.Time      `json:"request_date" gorm:"column:request_date;not null;index"`
	ParentName   string         `json:"parent_name" gorm:"size:100;not null"`
	ParentNumber string         `json:"parent_number" gorm:"size:15;not null"`
	Reason       string         `json:"reason" gorm:"size:255;not null"`
	Status       GatePassStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relations
	Student User `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT"`
}

// ResolvedStatuses are the statuses visible to security staff.
var ResolvedStatuses = []GatePassStatus{GatePassStatusAccepted, GatePassStatusRejected}
