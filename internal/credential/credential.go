// Package credential resolves the AI service API key. The key is looked up in
// the environment first, then in the OS keyring; callers fall back to asking
// the user. The keyring is only ever read.
package credential

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	// EnvVar holds the API key. It may also be set through a .env file.
	EnvVar = "GROQ_API_KEY"

	// ServiceName and User address the keyring entry.
	ServiceName = "proposal-assistant"
	User        = "groq"
)

// ErrEmpty is returned when an interactively entered key is blank.
var ErrEmpty = errors.New("api key cannot be empty")

// Source says where a credential came from.
type Source int

const (
	SourceNone Source = iota
	SourceEnv
	SourceKeyring
	SourcePrompt
)

func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "env"
	case SourceKeyring:
		return "keyring"
	case SourcePrompt:
		return "prompt"
	default:
		return "none"
	}
}

// Provider reads a secret for a user.
type Provider interface {
	Get(user string) (string, error)
}

// KeyringProvider reads secrets from the OS keyring.
type KeyringProvider struct {
	service string
}

// NewKeyringProvider returns a provider for ServiceName.
func NewKeyringProvider() *KeyringProvider {
	return &KeyringProvider{service: ServiceName}
}

// Get returns the stored secret. A missing entry yields "" and no error.
func (k *KeyringProvider) Get(user string) (string, error) {
	secret, err := keyring.Get(k.service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading keyring entry %s/%s: %w", k.service, user, err)
	}
	return secret, nil
}

var _ Provider = (*KeyringProvider)(nil)

// Resolver looks up the credential without user interaction.
type Resolver struct {
	Getenv  func(string) string
	Keyring Provider
}

// Default returns a resolver over the process environment and the OS keyring.
func Default() Resolver {
	return Resolver{Getenv: os.Getenv, Keyring: NewKeyringProvider()}
}

// Resolve returns the first non-blank credential and its source. Keyring
// errors (no secret service, locked keychain) are treated as a miss and
// reported through err so the caller can log them.
func (r Resolver) Resolve() (secret string, src Source, err error) {
	if r.Getenv != nil {
		if v := strings.TrimSpace(r.Getenv(EnvVar)); v != "" {
			return v, SourceEnv, nil
		}
	}
	if r.Keyring != nil {
		v, kerr := r.Keyring.Get(User)
		if v = strings.TrimSpace(v); v != "" && kerr == nil {
			return v, SourceKeyring, nil
		}
		err = kerr
	}
	return "", SourceNone, err
}

// ReadMasked prompts on w and reads a key from the terminal fd without echo.
func ReadMasked(fd int, w io.Writer, prompt string) (string, error) {
	_, _ = fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	return Normalize(string(b))
}

// Normalize trims an entered key and rejects a blank one.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}

// Mask renders a key for display, keeping only its last four characters.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return strings.Repeat("•", len(secret))
	}
	return strings.Repeat("•", 8) + secret[len(secret)-4:]
}
