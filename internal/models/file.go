package models

// FileRelationKind tags the entity a file is attached to. The empty
// value means the file is not attached to anything.
type FileRelationKind string

const (
	RelationAppointment   FileRelationKind = "appointment"
	RelationPrescription  FileRelationKind = "prescription"
	RelationMedicalRecord FileRelationKind = "medical-record"
)

// ValidFileRelationKind reports whether kind names a known entity.
func ValidFileRelationKind(kind FileRelationKind) bool {
	switch kind {
	case RelationAppointment, RelationPrescription, RelationMedicalRecord:
		return true
	}
	return false
}

// File represents an uploaded file stored on disk. Access control is
// keyed solely on OwnerID; the relation fields are a lookup hint, not
// an ownership link.
type File struct {
	BaseModel
	OwnerID       string           `gorm:"size:36;index;not null" json:"ownerId"`
	RelatedToKind FileRelationKind `gorm:"size:20;index:idx_files_relation" json:"relatedToKind,omitempty"`
	RelatedToID   string           `gorm:"size:36;index:idx_files_relation" json:"relatedToId,omitempty"`
	FileName      string           `gorm:"size:255;not null" json:"fileName"`
	OriginalName  string           `gorm:"size:255;not null" json:"originalName"`
	MimeType      string           `gorm:"size:100;not null" json:"mimeType"`
	Size          int64            `gorm:"not null" json:"size"`
	Path          string           `gorm:"size:512;not null" json:"-"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
