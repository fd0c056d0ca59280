package registry

import "embed"

// defaultConfigFS embeds the packaged default registry configuration,
// used whenever no usable configuration source is supplied.
//
//go:embed conf/default_recognizers.yaml
var defaultConfigFS embed.FS

const defaultConfigPath = "conf/default_recognizers.yaml"
