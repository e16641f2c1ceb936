package store

import "github.com/anwarkhairul/Usaha-Bersama/models"

// Export copies the full entity sets into one snapshot document.
func (s *Store) Export() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := append([]models.Member{}, s.members...)
	transactions := append([]models.Transaction{}, s.transactions...)
	products := append([]models.Product{}, s.products...)
	news := append([]models.News{}, s.news...)
	journal := append([]models.JournalEntry{}, s.journal...)
	notifications := append([]models.Notification{}, s.notifications...)
	settings := s.settings
	shuConfig := s.shuConfig

	return models.Snapshot{
		Members:       &members,
		Transactions:  &transactions,
		Products:      &products,
		Settings:      &settings,
		News:          &news,
		SHUConfig:     &shuConfig,
		Journal:       &journal,
		Notifications: &notifications,
	}
}

// Import overwrites every entity set present in the snapshot and leaves
// absent keys untouched. Also used to seed the store from the durable
// database at startup.
func (s *Store) Import(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Members != nil {
		s.members = append([]models.Member{}, *snap.Members...)
		s.memberSeq = 0
		for _, m := range s.members {
			s.bumpMemberSeq(m.ID)
		}
	}
	if snap.Transactions != nil {
		s.transactions = append([]models.Transaction{}, *snap.Transactions...)
	}
	if snap.Products != nil {
		s.products = append([]models.Product{}, *snap.Products...)
	}
	if snap.Settings != nil {
		s.settings = *snap.Settings
	}
	if snap.News != nil {
		s.news = append([]models.News{}, *snap.News...)
	}
	if snap.SHUConfig != nil {
		s.shuConfig = *snap.SHUConfig
	}
	if snap.Journal != nil {
		s.journal = append([]models.JournalEntry{}, *snap.Journal...)
	}
	if snap.Notifications != nil {
		s.notifications = append([]models.Notification{}, *snap.Notifications...)
	}
}
