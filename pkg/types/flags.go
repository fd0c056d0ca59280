package types

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"
)

// RegexFlags is a bitset of matching-engine behavior flags applied to
// pattern recognizers. The bit values map directly onto
// regexp2.RegexOptions so a flag set can be handed to the matching engine
// without translation.
type RegexFlags int32

const (
	FlagIgnoreCase = RegexFlags(regexp2.IgnoreCase)
	FlagMultiline  = RegexFlags(regexp2.Multiline)
	FlagDotAll     = RegexFlags(regexp2.Singleline)
)

// DefaultRegexFlags is the flag set used when a configuration does not
// specify global_regex_flags.
const DefaultRegexFlags = FlagIgnoreCase | FlagMultiline | FlagDotAll

// Options converts the flag set to the matching engine's option type.
func (f RegexFlags) Options() regexp2.RegexOptions {
	return regexp2.RegexOptions(f)
}

func (f RegexFlags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	if f&FlagIgnoreCase != 0 {
		names = append(names, "ignorecase")
	}
	if f&FlagMultiline != 0 {
		names = append(names, "multiline")
	}
	if f&FlagDotAll != 0 {
		names = append(names, "dotall")
	}
	if rest := f &^ (FlagIgnoreCase | FlagMultiline | FlagDotAll); rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", int32(rest)))
	}
	return strings.Join(names, "|")
}

// ParseRegexFlag resolves a single flag name.
func ParseRegexFlag(name string) (RegexFlags, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ignorecase", "i":
		return FlagIgnoreCase, nil
	case "multiline", "m":
		return FlagMultiline, nil
	case "dotall", "singleline", "s":
		return FlagDotAll, nil
	default:
		return 0, fmt.Errorf("unknown regex flag %q", name)
	}
}

// UnmarshalYAML accepts either an integer bitset or a sequence of flag
// names. Names are the documented form; the integer form exists for
// configurations that carry raw flag values.
func (f *RegexFlags) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw int32
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("global_regex_flags: %w", err)
		}
		*f = RegexFlags(raw)
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return fmt.Errorf("global_regex_flags: %w", err)
		}
		var flags RegexFlags
		for _, name := range names {
			flag, err := ParseRegexFlag(name)
			if err != nil {
				return fmt.Errorf("global_regex_flags: %w", err)
			}
			flags |= flag
		}
		*f = flags
		return nil
	default:
		return fmt.Errorf("global_regex_flags must be an integer or a list of flag names (line %d)", node.Line)
	}
}
