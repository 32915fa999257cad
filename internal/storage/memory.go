package storage

import (
	"sync"
	"time"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
)

// NewMemoryStores builds the in-memory variant of all four stores. Each
// store keeps a map keyed by ID plus an insertion-order slice, guarded by
// its own RWMutex. Every read hands out a copy so callers can iterate a
// snapshot while the store keeps mutating.
func NewMemoryStores() *Stores {
	return &Stores{
		Users:     NewMemoryUserStore(),
		Places:    NewMemoryPlaceStore(),
		Amenities: NewMemoryAmenityStore(),
		Reviews:   NewMemoryReviewStore(),
	}
}

func copyPlace(p *model.Place) *model.Place {
	cp := *p
	cp.Amenities = append([]model.Amenity(nil), p.Amenities...)
	return &cp
}

// MemoryUserStore keeps users in memory with a unique email index.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string
	order   []string
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

func (s *MemoryUserStore) Add(u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[u.ID]; ok {
		return ErrDuplicateID
	}
	if _, ok := s.byEmail[u.Email]; ok {
		return ErrDuplicateEmail
	}
	cp := *u
	s.byID[u.ID] = &cp
	s.byEmail[u.Email] = u.ID
	s.order = append(s.order, u.ID)
	return nil
}

func (s *MemoryUserStore) Get(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryUserStore) GetByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[model.NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *MemoryUserStore) List() ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out, nil
}

func (s *MemoryUserStore) Update(id string, patch UserPatch) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil && *patch.Email != u.Email {
		if _, taken := s.byEmail[*patch.Email]; taken {
			return nil, ErrDuplicateEmail
		}
		delete(s.byEmail, u.Email)
		u.Email = *patch.Email
		s.byEmail[u.Email] = id
	}
	if patch.PasswordHash != nil {
		u.Password = *patch.PasswordHash
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.IsAdmin != nil {
		u.IsAdmin = *patch.IsAdmin
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (s *MemoryUserStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return false, nil
	}
	delete(s.byID, id)
	delete(s.byEmail, u.Email)
	s.order = removeID(s.order, id)
	return true, nil
}

// MemoryPlaceStore keeps places in memory with an owner index.
type MemoryPlaceStore struct {
	mu    sync.RWMutex
	byID  map[string]*model.Place
	order []string
}

func NewMemoryPlaceStore() *MemoryPlaceStore {
	return &MemoryPlaceStore{byID: make(map[string]*model.Place)}
}

func (s *MemoryPlaceStore) Add(p *model.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[p.ID]; ok {
		return ErrDuplicateID
	}
	s.byID[p.ID] = copyPlace(p)
	s.order = append(s.order, p.ID)
	return nil
}

func (s *MemoryPlaceStore) Get(id string) (*model.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyPlace(p), nil
}

func (s *MemoryPlaceStore) List() ([]model.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Place, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *copyPlace(s.byID[id]))
	}
	return out, nil
}

func (s *MemoryPlaceStore) ListByOwner(ownerID string) ([]model.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Place
	for _, id := range s.order {
		if p := s.byID[id]; p.OwnerID == ownerID {
			out = append(out, *copyPlace(p))
		}
	}
	return out, nil
}

func (s *MemoryPlaceStore) Update(id string, patch PlacePatch) (*model.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Latitude != nil {
		p.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		p.Longitude = *patch.Longitude
	}
	if patch.Amenities != nil {
		p.Amenities = append([]model.Amenity(nil), *patch.Amenities...)
	}
	p.UpdatedAt = time.Now().UTC()
	return copyPlace(p), nil
}

func (s *MemoryPlaceStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	s.order = removeID(s.order, id)
	return true, nil
}

func (s *MemoryPlaceStore) DeleteByOwner(ownerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []string
	removed := 0
	for _, id := range s.order {
		if s.byID[id].OwnerID == ownerID {
			delete(s.byID, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed, nil
}

// MemoryAmenityStore keeps amenities in memory with a unique name index.
type MemoryAmenityStore struct {
	mu     sync.RWMutex
	byID   map[string]*model.Amenity
	byName map[string]string
	order  []string
}

func NewMemoryAmenityStore() *MemoryAmenityStore {
	return &MemoryAmenityStore{
		byID:   make(map[string]*model.Amenity),
		byName: make(map[string]string),
	}
}

func (s *MemoryAmenityStore) Add(a *model.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[a.ID]; ok {
		return ErrDuplicateID
	}
	if _, ok := s.byName[a.Name]; ok {
		return ErrDuplicateName
	}
	cp := *a
	s.byID[a.ID] = &cp
	s.byName[a.Name] = a.ID
	s.order = append(s.order, a.ID)
	return nil
}

func (s *MemoryAmenityStore) Get(id string) (*model.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *MemoryAmenityStore) GetByName(name string) (*model.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *MemoryAmenityStore) List() ([]model.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Amenity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out, nil
}

func (s *MemoryAmenityStore) Update(id string, patch AmenityPatch) (*model.Amenity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil && *patch.Name != a.Name {
		if _, taken := s.byName[*patch.Name]; taken {
			return nil, ErrDuplicateName
		}
		delete(s.byName, a.Name)
		a.Name = *patch.Name
		s.byName[a.Name] = id
	}
	a.UpdatedAt = time.Now().UTC()
	cp := *a
	return &cp, nil
}

func (s *MemoryAmenityStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return false, nil
	}
	delete(s.byID, id)
	delete(s.byName, a.Name)
	s.order = removeID(s.order, id)
	return true, nil
}

// MemoryReviewStore keeps reviews in memory with a unique (user, place)
// pair index.
type MemoryReviewStore struct {
	mu     sync.RWMutex
	byID   map[string]*model.Review
	byPair map[string]string
	order  []string
}

func NewMemoryReviewStore() *MemoryReviewStore {
	return &MemoryReviewStore{
		byID:   make(map[string]*model.Review),
		byPair: make(map[string]string),
	}
}

func pairKey(userID, placeID string) string {
	return userID + "|" + placeID
}

func (s *MemoryReviewStore) Add(r *model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[r.ID]; ok {
		return ErrDuplicateID
	}
	key := pairKey(r.UserID, r.PlaceID)
	if _, ok := s.byPair[key]; ok {
		return ErrDuplicateReview
	}
	cp := *r
	s.byID[r.ID] = &cp
	s.byPair[key] = r.ID
	s.order = append(s.order, r.ID)
	return nil
}

func (s *MemoryReviewStore) Get(id string) (*model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *MemoryReviewStore) List() ([]model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Review, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out, nil
}

func (s *MemoryReviewStore) ListByPlace(placeID string) ([]model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Review
	for _, id := range s.order {
		if r := s.byID[id]; r.PlaceID == placeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *MemoryReviewStore) ListByUser(userID string) ([]model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Review
	for _, id := range s.order {
		if r := s.byID[id]; r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *MemoryReviewStore) Update(id string, patch ReviewPatch) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Text != nil {
		r.Text = *patch.Text
	}
	if patch.Rating != nil {
		r.Rating = *patch.Rating
	}
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	return &cp, nil
}

func (s *MemoryReviewStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return false, nil
	}
	delete(s.byID, id)
	delete(s.byPair, pairKey(r.UserID, r.PlaceID))
	s.order = removeID(s.order, id)
	return true, nil
}

func (s *MemoryReviewStore) DeleteByPlace(placeID string) (int, error) {
	return s.deleteWhere(func(r *model.Review) bool { return r.PlaceID == placeID })
}

func (s *MemoryReviewStore) DeleteByUser(userID string) (int, error) {
	return s.deleteWhere(func(r *model.Review) bool { return r.UserID == userID })
}

func (s *MemoryReviewStore) deleteWhere(match func(*model.Review) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []string
	removed := 0
	for _, id := range s.order {
		r := s.byID[id]
		if match(r) {
			delete(s.byID, id)
			delete(s.byPair, pairKey(r.UserID, r.PlaceID))
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed, nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
