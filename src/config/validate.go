package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Permission bits only; setuid, setgid and sticky are not accepted.
var octalMode = regexp.MustCompile(`^(0o?)?[0-7]{3}$`)

// Validate checks structural invariants of a loaded Config.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Output),
		validation.Field(&c.Kernel),
		validation.Field(&c.Log),
	)
}

var outputPathRules = []validation.Rule{validation.Required, validation.By(hasExtension(".ipynb"))}

func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Path, outputPathRules...),
		validation.Field(&o.Mode, validation.Required, validation.Match(octalMode), validation.By(nonZeroMode)),
	)
}

// ValidateOutputPath applies the output.path rules to a path given on the
// command line.
func ValidateOutputPath(path string) error {
	if err := validation.Validate(path, outputPathRules...); err != nil {
		return fmt.Errorf("output path %q: %w", path, err)
	}
	return nil
}

func (k KernelConfig) Validate() error {
	return validation.ValidateStruct(&k,
		validation.Field(&k.Name, validation.Required),
		validation.Field(&k.Language, validation.Required),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Mode, validation.Required, validation.In("dev", "prod")),
	)
}

// nonZeroMode rejects "000", which Write would otherwise treat as unset.
func nonZeroMode(value interface{}) error {
	s, _ := value.(string)
	if !octalMode.MatchString(s) {
		return nil
	}
	if strings.Trim(strings.TrimPrefix(s, "0o"), "0") == "" {
		return fmt.Errorf("must grant at least one permission")
	}
	return nil
}

func hasExtension(ext string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(s), ext) {
			return fmt.Errorf("must end in %s", ext)
		}
		return nil
	}
}
