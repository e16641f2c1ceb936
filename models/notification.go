package models

// Notification severities.
const (
	NotifInfo    = "INFO"
	NotifSuccess = "SUCCESS"
	NotifWarning = "WARNING"
	NotifError   = "ERROR"
)

// Notification targets.
const (
	TargetUser  = "USER"
	TargetAdmin = "ADMIN"
	TargetAll   = "ALL"
)

// Notification is an in-app message delivered to a role audience.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date"`
	IsRead  bool   `json:"isRead"`
	Type    string `json:"type"`
	Target  string `json:"target"`
}

// VisibleTo reports whether the notification is addressed to the given role.
func (n *Notification) VisibleTo(role string) bool {
	return n.Target == TargetAll || n.Target == role
}
