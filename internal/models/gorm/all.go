package gorm

// All lists every model in dependency order, for AutoMigrate in tests.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Territory{},
		&Block{},
		&PreachingDay{},
		&Participation{},
		&WorkSession{},
		&Notification{},
		&UserNotification{},
	}
}
