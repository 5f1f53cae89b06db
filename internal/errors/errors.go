package errors

import "errors"

var (
	// ErrDuplicateEmail is returned when registering with an email that is taken.
	ErrDuplicateEmail = errors.New("email address already exists")
	// ErrDuplicateUsername is returned when registering with a username that is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned on login failure. Unknown username and
	// wrong password intentionally map to the same error so callers cannot
	// enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrDestinationNotFound is returned for an unknown destination slug.
	ErrDestinationNotFound = errors.New("destination not found")
)

// FlashText maps a domain error to the message flashed to the user on the
// next rendered page.
func FlashText(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return "Email address already exists. Please use a different email."
	case errors.Is(err, ErrDuplicateUsername):
		return "Username already exists. Please choose a different username."
	case errors.Is(err, ErrInvalidCredentials):
		return "Please check your login details and try again."
	default:
		return "Something went wrong. Please try again."
	}
}
