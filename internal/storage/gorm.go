package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
	"github.com/OWNALGARNI/holbertonschool-hbnb/prometheus"
)

// NewGormStores builds the postgres variant of all four stores on top of a
// single gorm connection. The connection must be opened with TranslateError
// so duplicate-key violations surface as gorm.ErrDuplicatedKey; each store
// maps that onto the sentinel matching its one unique constraint.
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:     &GormUserStore{db: db},
		Places:    &GormPlaceStore{db: db},
		Amenities: &GormAmenityStore{db: db},
		Reviews:   &GormReviewStore{db: db},
	}
}

func translate(err, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	default:
		return err
	}
}

// GormUserStore persists users in postgres.
type GormUserStore struct {
	db *gorm.DB
}

func (s *GormUserStore) Add(u *model.User) error {
	defer prometheus.TrackStoreOperation("insert")(time.Now())
	return translate(s.db.Create(u).Error, ErrDuplicateEmail)
}

func (s *GormUserStore) Get(id string) (*model.User, error) {
	var u model.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrDuplicateEmail)
	}
	return &u, nil
}

func (s *GormUserStore) GetByEmail(email string) (*model.User, error) {
	var u model.User
	err := s.db.First(&u, "email = ?", model.NormalizeEmail(email)).Error
	if err != nil {
		return nil, translate(err, ErrDuplicateEmail)
	}
	return &u, nil
}

func (s *GormUserStore) List() ([]model.User, error) {
	var users []model.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserStore) Update(id string, patch UserPatch) (*model.User, error) {
	defer prometheus.TrackStoreOperation("update")(time.Now())
	var u model.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrDuplicateEmail)
	}
	if patch.Email != nil {
		u.Email = *patch.Email
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
	if err := s.db.Save(&u).Error; err != nil {
		return nil, translate(err, ErrDuplicateEmail)
	}
	return &u, nil
}

func (s *GormUserStore) Delete(id string) (bool, error) {
	defer prometheus.TrackStoreOperation("delete")(time.Now())
	res := s.db.Delete(&model.User{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// GormPlaceStore persists places in postgres.
type GormPlaceStore struct {
	db *gorm.DB
}

func (s *GormPlaceStore) Add(p *model.Place) error {
	defer prometheus.TrackStoreOperation("insert")(time.Now())
	// Amenity rows already exist; only join rows should be written.
	return translate(s.db.Omit("Amenities.*").Create(p).Error, ErrDuplicateID)
}

func (s *GormPlaceStore) Get(id string) (*model.Place, error) {
	var p model.Place
	err := s.db.Preload("Amenities").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, ErrDuplicateID)
	}
	return &p, nil
}

func (s *GormPlaceStore) List() ([]model.Place, error) {
	var places []model.Place
	err := s.db.Preload("Amenities").Order("created_at").Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (s *GormPlaceStore) ListByOwner(ownerID string) ([]model.Place, error) {
	var places []model.Place
	err := s.db.Preload("Amenities").Order("created_at").
		Find(&places, "owner_id = ?", ownerID).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (s *GormPlaceStore) Update(id string, patch PlacePatch) (*model.Place, error) {
	defer prometheus.TrackStoreOperation("update")(time.Now())
	var p model.Place
	if err := s.db.Preload("Amenities").First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrDuplicateID)
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
	p.UpdatedAt = time.Now().UTC()
	if patch.Amenities != nil {
		amenities := *patch.Amenities
		err := s.db.Model(&p).Association("Amenities").Replace(&amenities)
		if err != nil {
			return nil, err
		}
		p.Amenities = amenities
	}
	if err := s.db.Omit("Amenities").Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormPlaceStore) Delete(id string) (bool, error) {
	defer prometheus.TrackStoreOperation("delete")(time.Now())
	// clause.Associations clears the place_amenities join rows as well.
	res := s.db.Select(clause.Associations).Delete(&model.Place{ID: id})
	return res.RowsAffected > 0, res.Error
}

func (s *GormPlaceStore) DeleteByOwner(ownerID string) (int, error) {
	places, err := s.ListByOwner(ownerID)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, p := range places {
		ok, err := s.Delete(p.ID)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// GormAmenityStore persists amenities in postgres.
type GormAmenityStore struct {
	db *gorm.DB
}

func (s *GormAmenityStore) Add(a *model.Amenity) error {
	defer prometheus.TrackStoreOperation("insert")(time.Now())
	return translate(s.db.Create(a).Error, ErrDuplicateName)
}

func (s *GormAmenityStore) Get(id string) (*model.Amenity, error) {
	var a model.Amenity
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrDuplicateName)
	}
	return &a, nil
}

func (s *GormAmenityStore) GetByName(name string) (*model.Amenity, error) {
	var a model.Amenity
	if err := s.db.First(&a, "name = ?", name).Error; err != nil {
		return nil, translate(err, ErrDuplicateName)
	}
	return &a, nil
}

func (s *GormAmenityStore) List() ([]model.Amenity, error) {
	var amenities []model.Amenity
	if err := s.db.Order("created_at").Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

func (s *GormAmenityStore) Update(id string, patch AmenityPatch) (*model.Amenity, error) {
	defer prometheus.TrackStoreOperation("update")(time.Now())
	var a model.Amenity
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrDuplicateName)
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	a.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&a).Error; err != nil {
		return nil, translate(err, ErrDuplicateName)
	}
	return &a, nil
}

func (s *GormAmenityStore) Delete(id string) (bool, error) {
	defer prometheus.TrackStoreOperation("delete")(time.Now())
	res := s.db.Select(clause.Associations).Delete(&model.Amenity{ID: id})
	return res.RowsAffected > 0, res.Error
}

// GormReviewStore persists reviews in postgres.
type GormReviewStore struct {
	db *gorm.DB
}

func (s *GormReviewStore) Add(r *model.Review) error {
	defer prometheus.TrackStoreOperation("insert")(time.Now())
	return translate(s.db.Create(r).Error, ErrDuplicateReview)
}

func (s *GormReviewStore) Get(id string) (*model.Review, error) {
	var r model.Review
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrDuplicateReview)
	}
	return &r, nil
}

func (s *GormReviewStore) List() ([]model.Review, error) {
	var reviews []model.Review
	if err := s.db.Order("created_at").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormReviewStore) ListByPlace(placeID string) ([]model.Review, error) {
	var reviews []model.Review
	err := s.db.Order("created_at").Find(&reviews, "place_id = ?", placeID).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormReviewStore) ListByUser(userID string) ([]model.Review, error) {
	var reviews []model.Review
	err := s.db.Order("created_at").Find(&reviews, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormReviewStore) Update(id string, patch ReviewPatch) (*model.Review, error) {
	defer prometheus.TrackStoreOperation("update")(time.Now())
	var r model.Review
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrDuplicateReview)
	}
	if patch.Text != nil {
		r.Text = *patch.Text
	}
	if patch.Rating != nil {
		r.Rating = *patch.Rating
	}
	r.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&r).Error; err != nil {
		return nil, translate(err, ErrDuplicateReview)
	}
	return &r, nil
}

func (s *GormReviewStore) Delete(id string) (bool, error) {
	defer prometheus.TrackStoreOperation("delete")(time.Now())
	res := s.db.Delete(&model.Review{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (s *GormReviewStore) DeleteByPlace(placeID string) (int, error) {
	res := s.db.Delete(&model.Review{}, "place_id = ?", placeID)
	return int(res.RowsAffected), res.Error
}

func (s *GormReviewStore) DeleteByUser(userID string) (int, error) {
	res := s.db.Delete(&model.Review{}, "user_id = ?", userID)
	return int(res.RowsAffected), res.Error
}
