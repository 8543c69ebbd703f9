package engine

// Extensions that are binary by definition; files carrying them are skipped
// without reading any content.
var binaryExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
	".ico": true, ".svg": true,
	".pdf": true, ".zip": true, ".tar": true, ".gz": true, ".bz2": true,
	".xz": true, ".7z": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true,
	".pyc": true, ".pyo": true, ".class": true, ".o": true, ".a": true,
	".jar": true, ".wasm": true, ".woff": true, ".woff2": true, ".ttf": true,
}

// Directory names never worth descending into.
var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"coverage":     true,
}

// Exact filenames never worth scanning, including our own scan cache when it
// lives outside .git.
var defaultExcludeFileNames = map[string]bool{
	".DS_Store":                  true,
	".secret-scanner-cache.json": true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

func isDefaultFileExcluded(name string) bool {
	return defaultExcludeFileNames[name]
}
