package user

import (
	"context"
	"sync"

	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
)

// Score awarded per action.
const (
	RegistrationPoints = 10
	BadgePoints        = 50
)

// ErrNotFound is returned when no user matches.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "user not found")

// Directory is the in-memory user registry. Reads return copies.
type Directory struct {
	mu    sync.RWMutex
	users map[id.UserID]*User
	order []id.UserID
}

func NewDirectory(users ...User) *Directory {
	d := &Directory{users: make(map[id.UserID]*User, len(users))}
	for i := range users {
		d.put(users[i])
	}
	return d
}

func (d *Directory) put(u User) {
	if _, exists := d.users[u.ID]; !exists {
		d.order = append(d.order, u.ID)
	}
	d.users[u.ID] = (&u).clone()
}

// Add inserts or replaces a user.
func (d *Directory) Add(_ context.Context, u User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.put(u)
}

func (d *Directory) Get(_ context.Context, userID id.UserID) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return u.clone(), nil
}

// ByRole returns the first user registered with role.
func (d *Directory) ByRole(_ context.Context, role Role) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, uid := range d.order {
		if u := d.users[uid]; u.Role == role {
			return u.clone(), nil
		}
	}
	return nil, ErrNotFound
}

// List returns users in insertion order.
func (d *Directory) List(_ context.Context) []User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]User, 0, len(d.order))
	for _, uid := range d.order {
		out = append(out, *d.users[uid].clone())
	}
	return out
}

// RecordRegistration credits a user for registering a document.
func (d *Directory) RecordRegistration(_ context.Context, userID id.UserID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.TotalDocuments++
	u.Score += RegistrationPoints
	return nil
}

// AwardBadge appends badge to the user's collection and credits the score.
func (d *Directory) AwardBadge(_ context.Context, userID id.UserID, badge Badge) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.Badges = append(u.Badges, badge)
	u.Score += BadgePoints
	return nil
}

// SeedUsers returns the fixed demo participants, one per role.
func SeedUsers() []User {
	return []User{
		{ID: "user-001", Name: "Carlos Mendoza", Email: "carlos@exportperu.com", Role: RoleExporter, Company: "Export Perú S.A.C."},
		{ID: "user-002", Name: "María García", Email: "maria@importchile.cl", Role: RoleImporter, Company: "Import Chile Ltda."},
		{ID: "user-003", Name: "Roberto Sánchez", Email: "roberto@aduanas.com", Role: RoleCustomsAgent, Company: "Agencia Aduanera Continental"},
		{ID: "user-004", Name: "Ana Torres", Email: "ana.torres@sunat.gob.pe", Role: RoleAuthority, Company: "SUNAT - Aduanas"},
	}
}
