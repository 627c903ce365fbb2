package concat

// DefaultOutputFile is the snapshot destination used when the caller does not
// supply one, resolved against the current working directory.
const DefaultOutputFile = "compiled_files.txt"

// SourceExtensions lists the file suffixes collected during traversal.
// Matching is case-sensitive.
var SourceExtensions = []string{".cpp", ".h"}

// IgnoredDirs lists directory names pruned entirely from the walk. The match
// is against the directory's own name at each level, never the full path.
var IgnoredDirs = map[string]bool{
	"build": true,
}

// Arguments holds the inputs for a snapshot run.
type Arguments struct {
	Directory string // Root directory to scan.
	Output    string // Destination path for the combined snapshot.
}
