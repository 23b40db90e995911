// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Defaults for the profile record created on first read.
const (
	DefaultProfileName     = "Ashin Krishna"
	DefaultProfileEmail    = "ashin.krishna@example.com"
	DefaultProfileLinkedIn = "https://linkedin.com/in/ashin-krishna"
	DefaultProfileBehance  = "https://behance.net/ashin-krishna"
	DefaultProfileBio      = "Passionate visual designer specializing in creating modern, professional designs that make an impact. With expertise in CV design, brand identity, and social media templates."

	defaultTotalProjects = 150
	defaultHappyClients  = 50
	defaultAwards        = 5
)

// CVDownloadCountField is the document field incremented on each CV download.
const CVDownloadCountField = "cv_download_count"

// ProfileInfo is the site owner's profile. At most one exists.
type ProfileInfo struct {
	ID              string    `json:"id,omitempty"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	Email           string    `json:"email"`
	LinkedIn        string    `json:"linkedin"`
	Behance         string    `json:"behance"`
	CVDownloadCount int64     `json:"cv_download_count"`
	TotalProjects   int64     `json:"total_projects"`
	HappyClients    int64     `json:"happy_clients"`
	Awards          int64     `json:"awards"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultProfile returns the record created when the profile is first read.
func DefaultProfile(now time.Time) ProfileInfo {
	return ProfileInfo{
		ID:            uuid.NewString(),
		Name:          DefaultProfileName,
		Bio:           DefaultProfileBio,
		Email:         DefaultProfileEmail,
		LinkedIn:      DefaultProfileLinkedIn,
		Behance:       DefaultProfileBehance,
		TotalProjects: defaultTotalProjects,
		HappyClients:  defaultHappyClients,
		Awards:        defaultAwards,
		UpdatedAt:     now.UTC(),
	}
}

// ProfileUpdate is a partial update. Nil fields are left untouched.
type ProfileUpdate struct {
	Bio             *string `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Email           *string `json:"email,omitempty" validate:"omitempty,max=320"`
	LinkedIn        *string `json:"linkedin,omitempty" validate:"omitempty,max=2048"`
	Behance         *string `json:"behance,omitempty" validate:"omitempty,max=2048"`
	CVDownloadCount *int64  `json:"cv_download_count,omitempty" validate:"omitempty,min=0"`
	TotalProjects   *int64  `json:"total_projects,omitempty" validate:"omitempty,min=0"`
	HappyClients    *int64  `json:"happy_clients,omitempty" validate:"omitempty,min=0"`
	Awards          *int64  `json:"awards,omitempty" validate:"omitempty,min=0"`
}

// Fields returns the set fields keyed by their document name.
func (u ProfileUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	setInt := func(key string, v *int64) {
		if v != nil {
			fields[key] = *v
		}
	}

	setString("bio", u.Bio)
	setString("email", u.Email)
	setString("linkedin", u.LinkedIn)
	setString("behance", u.Behance)
	setInt(CVDownloadCountField, u.CVDownloadCount)
	setInt("total_projects", u.TotalProjects)
	setInt("happy_clients", u.HappyClients)
	setInt("awards", u.Awards)
	return fields
}

// IsEmpty reports whether the update sets no fields.
func (u ProfileUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}
