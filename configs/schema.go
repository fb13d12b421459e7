package configs

// Schema validates funcmap configuration files.
const Schema = `
log_level?: "debug" | "info" | "warn" | "error"
aliases?: [string]: string
`

// Aliases merges the aliases of all files. Earlier files take precedence.
func Aliases(loader Loader) map[string]string {
	ret := make(map[string]string)
	for aliases := range All[map[string]string](loader, "aliases") {
		for alias, target := range aliases {
			if _, ok := ret[alias]; ok {
				continue
			}
			ret[alias] = target
		}
	}
	return ret
}

func LogLevel(loader Loader) string {
	return First[string](loader, "log_level")
}
