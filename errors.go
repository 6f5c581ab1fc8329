package vercompat

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNoVersions    = errors.New("no versions specified")
	ErrDimensionName = errors.New("illegal dimension name")
)

var dimensionName = regexp.MustCompile(`^[a-zA-Z0-9.-]+$`)

func noVersions(what, name string) error {
	if name == "" {
		return fmt.Errorf("%w for default %s", ErrNoVersions, what)
	}
	return fmt.Errorf("%w for %s", ErrNoVersions, name)
}

func checkDimensionName(name string) error {
	if !dimensionName.MatchString(name) {
		return fmt.Errorf("%w '%s': only letters, digits, '.' and '-' allowed",
			ErrDimensionName,
			name,
		)
	}
	return nil
}
