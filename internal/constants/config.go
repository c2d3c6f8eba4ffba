package constants

import "os"

// Repository directory and file names define the minigit metadata structure.
const (
	// MiniGit is the repository metadata directory.
	MiniGit = ".minigit"

	// Objects stores content-addressable records (blobs and commits).
	Objects = "objects"

	// Refs contains one record file per branch.
	Refs = "refs"

	// Head holds the current commit hash.
	Head = "HEAD"

	// ConfigFile is the optional repository configuration file read by
	// the config package.
	ConfigFile = "config.yaml"
)

// Default repository values.
const (
	// DefaultBranch is the branch created at init and the branch a fresh
	// process starts on (the current-branch name is not persisted).
	DefaultBranch = "main"

	// DefaultAuthor is recorded on commits when no author is configured.
	DefaultAuthor = "user"
)

// File system permissions for created files and directories.
const (
	// DirPerms grants read/write/execute to owner, read/execute to others (rwxr-xr-x).
	DirPerms os.FileMode = 0755

	// FilePerms grants read/write to owner, read-only to others (rw-r--r--).
	FilePerms os.FileMode = 0644
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40

	// ShortHashLength is the abbreviated hash length used in user output.
	ShortHashLength = 8
)

// Record field prefixes of the on-disk text format. Records in the object
// space start with BlobPrefix or CommitPrefix; the leading tag is the only
// discriminator between the two kinds.
const (
	BlobPrefix      = "blob "
	CommitPrefix    = "commit "
	BranchPrefix    = "branch "
	FilenamePrefix  = "filename "
	ContentPrefix   = "content "
	MessagePrefix   = "message "
	AuthorPrefix    = "author "
	TimestampPrefix = "timestamp "
	ParentsPrefix   = "parents "
	ParentPrefix    = "parent "
	FilesPrefix     = "files "
	FilePrefix      = "file "
)

// Conflict markers emitted by the per-file three-way merge.
const (
	ConflictMarkerOurs   = "<<<<<<< HEAD"
	ConflictMarkerSep    = "======="
	ConflictMarkerTheirs = ">>>>>>> MERGE"
)

// Traversal and cache limits.
const (
	// MaxHistoryDepth bounds first-parent walks so a corrupted parent
	// chain cannot loop them forever.
	MaxHistoryDepth = 10000

	// ObjectCacheSize is the number of decoded objects the store keeps
	// in its LRU read cache.
	ObjectCacheSize = 512
)
