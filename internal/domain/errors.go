package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoRecipeMatch  = errors.New("no recipe available")
)
