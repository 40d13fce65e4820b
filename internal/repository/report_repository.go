package repository

import "gorm.io/gorm"

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// DumpTable returns the full contents of one table as generic rows. The
// table name comes from the query service's closed enumeration, never from a
// caller-supplied string.
func (r *GormReportRepository) DumpTable(table string) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := r.db.Table(table).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
