package flatdir

import (
	"strings"

	"github.com/replicatedhq/treeship/pkg/constants"
	"github.com/spf13/viper"
)

// ExcludePolicy names the entries of a source directory that are not downloaded files
type ExcludePolicy struct {
	Prefixes []string
	Names    []string
}

// DefaultPolicy leaves out saved manifests and platform metadata files
func DefaultPolicy() ExcludePolicy {
	return ExcludePolicy{
		Prefixes: []string{constants.DefaultManifestPrefix},
		Names:    append([]string(nil), constants.DefaultExcludedNames...),
	}
}

// PolicyFromViper reads the exclude flags, falling back to DefaultPolicy for unset keys.
// An explicitly empty list disables that half of the policy.
func PolicyFromViper(v *viper.Viper) ExcludePolicy {
	policy := DefaultPolicy()
	if v.IsSet(constants.ExcludePrefixFlag) {
		policy.Prefixes = nonEmpty(v.GetStringSlice(constants.ExcludePrefixFlag))
	}
	if v.IsSet(constants.ExcludeNameFlag) {
		policy.Names = nonEmpty(v.GetStringSlice(constants.ExcludeNameFlag))
	}
	return policy
}

func (p ExcludePolicy) Excludes(name string) bool {
	for _, prefix := range p.Prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	for _, excluded := range p.Names {
		if name == excluded {
			return true
		}
	}
	return false
}

// ManifestPrefix is the prefix manifest discovery looks for
func (p ExcludePolicy) ManifestPrefix() string {
	if len(p.Prefixes) == 0 {
		return constants.DefaultManifestPrefix
	}
	return p.Prefixes[0]
}

// nonEmpty also splits comma separated values, since a list read from the
// environment arrives as one string
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
