package constants

// BlockStatus mirrors the CHECK constraint on blocks.status
type BlockStatus string

const (
	BlockPending    BlockStatus = "PENDING"
	BlockInProgress BlockStatus = "IN_PROGRESS"
	BlockCompleted  BlockStatus = "COMPLETED"
	BlockRevisit    BlockStatus = "REVISIT"
)

// DayStatus mirrors the CHECK constraint on preaching_days.status
type DayStatus string

const (
	DayScheduled  DayStatus = "SCHEDULED"
	DayConfirmed  DayStatus = "CONFIRMED"
	DayInProgress DayStatus = "IN_PROGRESS"
	DayCompleted  DayStatus = "COMPLETED"
	DayCancelled  DayStatus = "CANCELLED"
)

// NotificationType mirrors the CHECK constraint on notifications.type
type NotificationType string

const (
	NotificationInfo     NotificationType = "INFO"
	NotificationWarning  NotificationType = "WARNING"
	NotificationSuccess  NotificationType = "SUCCESS"
	NotificationError    NotificationType = "ERROR"
	NotificationReminder NotificationType = "REMINDER"
)
