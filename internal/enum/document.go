package enum

type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusSubmitted DocumentStatus = "submitted"
	DocumentStatusCancelled DocumentStatus = "cancelled"
)

func (t DocumentStatus) String() string {
	return string(t)
}
