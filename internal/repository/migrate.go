package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the repositories use. Called by
// the seed command and the test suites; production deployments run it once
// at startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roleModel{},
		&userModel{},
		&userRoleModel{},
		&apartmentModel{},
		&taskTypeModel{},
		&reservationModel{},
		&assignmentModel{},
		&assignmentWorkerModel{},
		&assignmentTaskModel{},
		&workOrderModel{},
		&logbookEntryModel{},
		&postItModel{},
		&postItCommentModel{},
		&settingModel{},
	)
}
