package repository

import (
	"sort"

	"github.com/minigit-vcs/minigit/internal/diff"
)

// FileStatus classifies how a file differs between two commits.
type FileStatus int

const (
	FileAdded FileStatus = iota
	FileRemoved
	FileModified
)

// FileDiff is one file's difference between two commits: its status by
// table membership and the line-level diff of its contents.
type FileDiff struct {
	Filename string
	Status   FileStatus
	Lines    []diff.Line
}

// Diff compares the file tables of two commits. Files only in the
// second commit are Added (every line added), files only in the first
// are Removed (every line removed), and files with differing blob
// hashes are Modified with a positional line diff. Files with equal
// hashes are omitted. Results are sorted by filename.
func (r *Repository) Diff(hash1, hash2 string) ([]FileDiff, error) {
	commit1, err := r.store.ReadCommit(hash1)
	if err != nil {
		return nil, err
	}
	commit2, err := r.store.ReadCommit(hash2)
	if err != nil {
		return nil, err
	}

	files1 := commit1.Files()
	files2 := commit2.Files()

	union := make(map[string]bool, len(files1)+len(files2))
	for filename := range files1 {
		union[filename] = true
	}
	for filename := range files2 {
		union[filename] = true
	}
	filenames := make([]string, 0, len(union))
	for filename := range union {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	var result []FileDiff
	for _, filename := range filenames {
		hash1, ok1 := files1[filename]
		hash2, ok2 := files2[filename]

		switch {
		case !ok1:
			content, err := r.blobContent(hash2)
			if err != nil {
				return nil, err
			}
			result = append(result, FileDiff{
				Filename: filename,
				Status:   FileAdded,
				Lines:    diff.Lines("", content),
			})
		case !ok2:
			content, err := r.blobContent(hash1)
			if err != nil {
				return nil, err
			}
			result = append(result, FileDiff{
				Filename: filename,
				Status:   FileRemoved,
				Lines:    diff.Lines(content, ""),
			})
		case hash1 != hash2:
			content1, err := r.blobContent(hash1)
			if err != nil {
				return nil, err
			}
			content2, err := r.blobContent(hash2)
			if err != nil {
				return nil, err
			}
			result = append(result, FileDiff{
				Filename: filename,
				Status:   FileModified,
				Lines:    diff.Lines(content1, content2),
			})
		}
	}
	return result, nil
}

func (r *Repository) blobContent(hash string) (string, error) {
	blob, err := r.store.ReadBlob(hash)
	if err != nil {
		return "", err
	}
	return string(blob.Content()), nil
}
