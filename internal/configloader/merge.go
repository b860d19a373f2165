package configloader

import "github.com/yaklabco/mdtidy/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Strings: override overwrites base if non-empty
//   - Booleans: override overwrites base if set (non-nil), so an explicit
//     false in a higher layer turns off a lower layer's true
//   - Neither argument is modified
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	mergeBool(&result.Verify, override.Verify)
	mergeBool(&result.Backups.Enabled, override.Backups.Enabled)
	mergeBool(&result.DryRun, override.DryRun)

	mergeString(&result.Spacer.Suffix, override.Spacer.Suffix)
	mergeString(&result.Spacer.Fences, override.Spacer.Fences)

	mergeString(&result.Numberer.Suffix, override.Numberer.Suffix)
	mergeString(&result.Numberer.Fences, override.Numberer.Fences)
	mergeString(&result.Numberer.Newline, override.Numberer.Newline)

	mergeString(&result.Output, override.Output)
	mergeString(&result.Color, override.Color)

	return result
}

func mergeBool(dst **bool, override *bool) {
	if override != nil {
		*dst = config.Bool(*override)
	}
}

func mergeString[T ~string](dst *T, override T) {
	if override != "" {
		*dst = override
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0].Clone()
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
