package models

// WriterProvider links a writer to a provider it handles. The pair carries no
// payload; the set for a writer is replaced wholesale on every save.
type WriterProvider struct {
	WriterID   uint `gorm:"column:id_user_writer;primaryKey" json:"id_user_writer"`
	ProviderID uint `gorm:"column:id_user_provider;primaryKey" json:"id_user_provider"`
}

func (WriterProvider) TableName() string { return "writer_providers" }
