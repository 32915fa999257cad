package service

import (
	"fmt"
	"strings"

	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/model"
	"github.com/OWNALGARNI/holbertonschool-hbnb/internal/storage"
)

// CreateUserInput carries the fields accepted when registering a user.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// UpdateUserInput carries the fields a user may change on their own
// profile. Email and password are deliberately absent; they go through the
// admin path or the password-change path.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
}

// AdminUpdateUserInput carries the fields an administrator may change on
// any account. A present email is re-validated and re-normalized.
type AdminUpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	IsAdmin   *bool
}

// CreateUser validates and stores a new user. The email is normalized and
// must be well-formed and unused; the password must meet the minimum length
// and is hashed before anything touches the store.
func (f *Facade) CreateUser(in CreateUserInput) (*model.User, error) {
	email := model.NormalizeEmail(in.Email)
	if email == "" {
		return nil, invalid("email", "is required")
	}
	if !validEmail(email) {
		return nil, invalid("email", "is not a valid email address")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	u, err := model.NewUser(email, in.Password, strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName), in.IsAdmin)
	if err != nil {
		return nil, err
	}
	if err := f.users.Add(u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser fetches a user by ID.
func (f *Facade) GetUser(id string) (*model.User, error) {
	u, err := f.users.Get(id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	return u, nil
}

// GetUserByEmail fetches a user by normalized email.
func (f *Facade) GetUserByEmail(email string) (*model.User, error) {
	u, err := f.users.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", email, err)
	}
	return u, nil
}

// ListUsers returns all users in insertion order.
func (f *Facade) ListUsers() ([]model.User, error) {
	return f.users.List()
}

// UpdateUser applies a self-service profile update.
func (f *Facade) UpdateUser(id string, in UpdateUserInput) (*model.User, error) {
	u, err := f.users.Update(id, storage.UserPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	return u, nil
}

// AdminUpdateUser applies an administrative update, re-validating a changed
// email and re-hashing a changed password.
func (f *Facade) AdminUpdateUser(id string, in AdminUpdateUserInput) (*model.User, error) {
	patch := storage.UserPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsAdmin:   in.IsAdmin,
	}
	if in.Email != nil {
		email := model.NormalizeEmail(*in.Email)
		if !validEmail(email) {
			return nil, invalid("email", "is not a valid email address")
		}
		patch.Email = &email
	}
	if in.Password != nil {
		if len(*in.Password) < MinPasswordLength {
			return nil, invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
		}
		var tmp model.User
		if err := tmp.SetPassword(*in.Password); err != nil {
			return nil, err
		}
		patch.PasswordHash = &tmp.Password
	}
	u, err := f.users.Update(id, patch)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	return u, nil
}

// ChangePassword verifies the current password then stores a new hash.
func (f *Facade) ChangePassword(id, current, next string) error {
	u, err := f.users.Get(id)
	if err != nil {
		return fmt.Errorf("user %s: %w", id, err)
	}
	if !u.CheckPassword(current) {
		return ErrInvalidCredentials
	}
	if len(next) < MinPasswordLength {
		return invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	var tmp model.User
	if err := tmp.SetPassword(next); err != nil {
		return err
	}
	_, err = f.users.Update(id, storage.UserPatch{PasswordHash: &tmp.Password})
	return err
}

// DeleteUser removes a user and cascades: reviews on the user's places, the
// places themselves, and the user's own reviews all go with the account.
func (f *Facade) DeleteUser(id string) (bool, error) {
	owned, err := f.places.ListByOwner(id)
	if err != nil {
		return false, err
	}
	for _, p := range owned {
		if _, err := f.reviews.DeleteByPlace(p.ID); err != nil {
			return false, err
		}
	}
	if _, err := f.places.DeleteByOwner(id); err != nil {
		return false, err
	}
	if _, err := f.reviews.DeleteByUser(id); err != nil {
		return false, err
	}
	return f.users.Delete(id)
}

// Authenticate resolves the email and verifies the password. Both failure
// modes collapse into ErrInvalidCredentials so callers cannot probe which
// emails are registered.
func (f *Facade) Authenticate(email, password string) (*model.User, error) {
	u, err := f.users.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
