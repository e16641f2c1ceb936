package models

// Snapshot is the backup document produced by export and consumed by import.
// On import, only the keys present in the document are overwritten; absent
// keys leave the current data untouched, which is why every field is a
// pointer.
type Snapshot struct {
	Members       *[]Member       `json:"members,omitempty"`
	Transactions  *[]Transaction  `json:"transactions,omitempty"`
	Products      *[]Product      `json:"products,omitempty"`
	Settings      *Settings       `json:"settings,omitempty"`
	News          *[]News         `json:"news,omitempty"`
	SHUConfig     *SHUConfig      `json:"shuConfig,omitempty"`
	Journal       *[]JournalEntry `json:"journal,omitempty"`
	Notifications *[]Notification `json:"notifications,omitempty"`
}
