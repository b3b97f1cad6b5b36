package models

import "time"

// Asset is a media file managed on the CDN.
// PublicID is the storage zone path; URL is the public CDN address.
type Asset struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	PublicID    string    `gorm:"column:public_id;size:512" json:"public_id"`
	URL         string    `gorm:"column:url;size:1024" json:"url"`
	Folder      string    `gorm:"column:folder;size:255" json:"folder"`
	ContentType string    `gorm:"column:content_type;size:100" json:"content_type"`
	Size        int64     `gorm:"column:size" json:"size"`
	ArchiveKey  string    `gorm:"column:archive_key;size:512" json:"archive_key,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Asset) TableName() string {
	return "assets"
}

// MediaPair identifies a stored object and its public URL for bulk operations.
type MediaPair struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// BulkDeleteReport contains the results of a bulk delete.
type BulkDeleteReport struct {
	Success []string `json:"success"`
	Failed  []string `json:"failed"`
}

// VerifyReport contains the results of an archive verification run.
type VerifyReport struct {
	TotalRecords  int      `json:"total_records"`
	TotalArchived int      `json:"total_archived"`
	Missing       []string `json:"missing"`
	GeneratedAt   string   `json:"generated_at"`
	ExecutionTime string   `json:"execution_time"`
}
