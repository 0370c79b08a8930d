// Package session implements the in-memory editing sessions of the CV
// builder. A session owns the single authoritative copy of one CVData; all
// writes are serialized through it, so a read that follows a write always
// observes the written value.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/types"
)

// Session holds one CV document for the lifetime of an editing session.
//
// Mutations go through the Mutate*/Replace* methods, which swap whole slices
// produced by the editor package; slices already handed out via Snapshot are
// never written to in place.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu         sync.Mutex
	data       *types.CVData
	lastAccess time.Time

	// assistGens has its own lock so staleness checks can run inside a
	// Mutate* callback without deadlocking on mu.
	gensMu     sync.Mutex
	assistGens map[AssistKey]uint64
}

// New creates an empty session with a fresh id.
func New() *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.New(),
		CreatedAt:  now,
		data:       types.NewCVData(),
		lastAccess: now,
		assistGens: make(map[AssistKey]uint64),
	}
}

// Snapshot returns the current document value.
func (s *Session) Snapshot() types.CVData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.data
}

// SetPersonalInfo replaces the personal-info record wholesale.
func (s *Session) SetPersonalInfo(info types.PersonalInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.PersonalInfo = info
}

// SetProfileImage sets only the profile-image data URI, keeping the other
// personal fields as they are.
func (s *Session) SetProfileImage(dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.PersonalInfo.ProfileImage = dataURI
}

// MutateExperience applies fn to the work-experience slice under the session
// lock and installs the result. The returned slice is the installed value.
func (s *Session) MutateExperience(fn func([]types.WorkExperience) ([]types.WorkExperience, error)) ([]types.WorkExperience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := fn(s.data.WorkExperience)
	if err != nil {
		return nil, err
	}
	s.data.WorkExperience = out
	return out, nil
}

// MutateSkills applies fn to the skill list under the session lock.
func (s *Session) MutateSkills(fn func([]string) ([]string, error)) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := fn(s.data.Skills)
	if err != nil {
		return nil, err
	}
	s.data.Skills = out
	return out, nil
}

// MutateEducation applies fn to the education slice under the session lock.
func (s *Session) MutateEducation(fn func([]types.Education) ([]types.Education, error)) ([]types.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := fn(s.data.Education)
	if err != nil {
		return nil, err
	}
	s.data.Education = out
	return out, nil
}

// MutateCertifications applies fn to the certification slice under the session lock.
func (s *Session) MutateCertifications(fn func([]types.Certification) ([]types.Certification, error)) ([]types.Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := fn(s.data.Certifications)
	if err != nil {
		return nil, err
	}
	s.data.Certifications = out
	return out, nil
}

// MutateLanguages applies fn to the language slice under the session lock.
func (s *Session) MutateLanguages(fn func([]types.Language) ([]types.Language, error)) ([]types.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := fn(s.data.Languages)
	if err != nil {
		return nil, err
	}
	s.data.Languages = out
	return out, nil
}

// MutateProjects applies fn to the project slice under the session lock.
func (s *Session) MutateProjects(fn func([]types.Project) ([]types.Project, error)) ([]types.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := fn(s.data.Projects)
	if err != nil {
		return nil, err
	}
	s.data.Projects = out
	return out, nil
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastAccess = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess.Before(cutoff)
}
