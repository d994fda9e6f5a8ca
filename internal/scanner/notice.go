package scanner

import "fmt"

// NoticeKind classifies non-fatal conditions reported to the operator.
type NoticeKind int

const (
	// FolderFromFile: the scan path was a file; its folder was used.
	FolderFromFile NoticeKind = iota
	// AlreadyPresent: a model with the same name is already in the scene;
	// the import was skipped and the existing object reused.
	AlreadyPresent
	// ImportFailed: a model file could not be read and was skipped.
	ImportFailed
)

func (k NoticeKind) String() string {
	switch k {
	case FolderFromFile:
		return "folder_from_file"
	case AlreadyPresent:
		return "already_present"
	case ImportFailed:
		return "import_failed"
	}
	return fmt.Sprintf("NoticeKind(%d)", int(k))
}

func (k NoticeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Notice is a non-fatal condition the operator should see.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Subject string     `json:"subject"`
	Message string     `json:"message"`
}

func (n Notice) String() string {
	return n.Message
}
