package types

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
)

// Paths resolves filesystem locations owned by a prefix.
type Paths struct {
	sshIdentity string
}

// NewPaths returns a Paths provider for the given SSH identity location.
// A leading ~ is expanded against the current user's home directory.
func NewPaths(sshIdentity string) *Paths {
	expanded, err := homedir.Expand(sshIdentity)
	if err != nil {
		expanded = sshIdentity
	}
	return &Paths{
		sshIdentity: filepath.Clean(expanded),
	}
}

// SSHIdentity returns the path to the prefix SSH private key. The path is
// embedded verbatim in generated host entries.
func (p *Paths) SSHIdentity() string {
	return p.sshIdentity
}

// ValidateSSHIdentity checks that the identity file exists and parses as an
// SSH private key.
func (p *Paths) ValidateSSHIdentity() error {
	pemBytes, err := os.ReadFile(p.sshIdentity)
	if err != nil {
		return errors.Wrapf(err, "ssh identity '%s' not readable", p.sshIdentity)
	}
	if _, err := ssh.ParsePrivateKey(pemBytes); err != nil {
		return errors.Wrapf(err, "ssh identity '%s' is not a valid private key", p.sshIdentity)
	}
	return nil
}
