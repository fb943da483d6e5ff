package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"gin-shareit/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Mark(errs.New("invalid email format"), errs.ErrValidation)
	ErrInvalidName     = errs.Mark(errs.New("name must be 1 to 255 characters"), errs.ErrValidation)
	ErrPasswordTooWeak = errs.Mark(errs.New("password must be at least 8 characters long"), errs.ErrValidation)

	ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrEmailTaken   = errs.Mark(errs.New("email is already registered"), errs.ErrConflict)
	ErrNotSelf      = errs.Mark(errs.New("users can only change their own profile"), errs.ErrNotOwner)
	ErrHasBookings  = errs.Mark(errs.New("user has bookings and cannot be deleted"), errs.ErrConflict)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const maxNameLength = 255

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
