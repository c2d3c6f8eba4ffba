package objects

import (
	"errors"
	"testing"
)

// TestDecodeObject_Dispatch verifies the tag line routes records to the
// right decoder.
func TestDecodeObject_Dispatch(t *testing.T) {
	blob := createTestBlob(t, []byte("content"), "a.txt")
	commit := createTestCommit(t, "msg", nil, nil)

	decodedBlob, err := DecodeObject(blob.Data())
	if err != nil {
		t.Fatalf("Failed to decode blob record: %v", err)
	}
	if _, ok := decodedBlob.(*Blob); !ok {
		t.Errorf("Expected *Blob, got %T", decodedBlob)
	}

	decodedCommit, err := DecodeObject(commit.Data())
	if err != nil {
		t.Fatalf("Failed to decode commit record: %v", err)
	}
	if _, ok := decodedCommit.(*Commit); !ok {
		t.Errorf("Expected *Commit, got %T", decodedCommit)
	}
}

// TestDecodeObject_UnknownTag verifies unrecognized records are rejected.
func TestDecodeObject_UnknownTag(t *testing.T) {
	_, err := DecodeObject([]byte("tag v1.0\nsomething\n"))

	if !errors.Is(err, ErrCorruptObject) {
		t.Errorf("Expected ErrCorruptObject for unknown tag, got: %v", err)
	}
}
