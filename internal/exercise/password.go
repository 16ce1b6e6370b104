package exercise

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"drills/internal/console"
	errs "drills/internal/errors"
	"drills/internal/prompt"
	"drills/internal/session"
)

// Roles understood by the password exercise.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Credential is one accepted password, stored as a bcrypt hash.
type Credential struct {
	Role string
	Hash []byte
}

// DefaultCredentials returns the built-in passwords: "secret" for the
// user role and "admin" for the admin role.  The hashes are computed
// once per process.
var DefaultCredentials = sync.OnceValues(func() ([]Credential, error) {
	plain := []struct{ role, pass string }{
		{RoleUser, "secret"},
		{RoleAdmin, "admin"},
	}
	out := make([]Credential, 0, len(plain))
	for _, p := range plain {
		// The plaintext ships in the binary, so cost buys nothing here.
		h, err := bcrypt.GenerateFromPassword([]byte(p.pass), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("hashing default %s password: %w", p.role, err)
		}
		out = append(out, Credential{Role: p.role, Hash: h})
	}
	return out, nil
})

type password struct {
	opts Options
}

func newPassword(o Options) *password {
	return &password{opts: o}
}

func (e *password) credentials() ([]Credential, error) {
	if len(e.opts.Credentials) > 0 {
		return e.opts.Credentials, nil
	}
	return DefaultCredentials()
}

func (e *password) Run(ctx context.Context, sess *session.Session) error {
	creds, err := e.credentials()
	if err != nil {
		return err
	}

	c := sess.Console
	c.Println("Hi, Welcome!")

	role, err := prompt.Ask(ctx, sess, prompt.Question[string]{
		Prompt:   "Enter your password :",
		Validate: matchCredential(creds),
		Budget:   e.opts.bounded(),
		Secret:   true,
		OnReject: denied,
	})
	if errs.Is(err, errs.ErrTooManyAttempts) {
		c.Println("Too many attempts!")
		if werr := c.Err(); werr != nil {
			return werr
		}
		return err
	}
	if err != nil {
		return err
	}

	sess.Logger.Verbose("password: accepted role %q", role)
	if role == RoleAdmin {
		c.Println("Admin access granted!")
	} else {
		c.Println("Access granted!")
	}
	return c.Err()
}

// matchCredential returns the role of the first credential whose hash
// matches the input.
func matchCredential(creds []Credential) prompt.Validator[string] {
	return func(input string) (string, error) {
		if input == "" {
			return "", errs.Invalid(input, "Password cannot be empty!", nil)
		}
		for _, cr := range creds {
			if bcrypt.CompareHashAndPassword(cr.Hash, []byte(input)) == nil {
				return cr.Role, nil
			}
		}
		return "", errs.Invalid(input, "Access denied!", nil)
	}
}

// denied prints the rejection.  The final attempt prints nothing here;
// Run follows up with "Too many attempts!".
func denied(c *console.Console, r prompt.Rejection) {
	if r.Input == "" {
		c.Println("Password cannot be empty!")
	}
	if r.Last {
		return
	}
	c.Println("Access denied!")
	c.Printf("remaining attempts %d\n", r.Remaining)
}
