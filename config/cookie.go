package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/duneanalytics/blockchain-headers/models"
	"github.com/go-errors/errors"
)

var ErrBadCookie = errors.New("bad cookie file")

// DefaultCookiePath is where bitcoind writes its cookie for the main network.
func DefaultCookiePath() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("HOME is not set, can't locate the bitcoin cookie")
	}
	return filepath.Join(home, ".bitcoin", ".cookie"), nil
}

// LoadCookie reads the credential from path, or from DefaultCookiePath when path is empty.
func LoadCookie(path string) (models.Credential, error) {
	if path == "" {
		var err error
		path, err = DefaultCookiePath()
		if err != nil {
			return models.Credential{}, err
		}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Credential{}, errors.Errorf("can't find bitcoin cookie at %s: %w", path, err)
		}
		return models.Credential{}, errors.Errorf("failed to read bitcoin cookie: %w", err)
	}
	return ParseCookie(string(content))
}

// ParseCookie parses a single "username:password" line.
func ParseCookie(content string) (models.Credential, error) {
	fields := strings.Split(strings.TrimSpace(content), ":")
	if len(fields) != 2 {
		return models.Credential{}, errors.Errorf("%w: expected username:password, got %d field(s)",
			ErrBadCookie, len(fields))
	}
	return models.Credential{
		Username: fields[0],
		Password: fields[1],
	}, nil
}
